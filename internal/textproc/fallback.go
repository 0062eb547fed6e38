// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import (
	"regexp"
	"strings"
)

// minSentenceLength is the trimmed-length threshold below which the
// fallback splitter discards a segment.
const minSentenceLength = 10

// sentenceBoundary matches one or more consecutive sentence terminators.
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// FallbackEngine is the degraded segmentation path: punctuation-based
// sentence splitting with no stopword flags and no entity spans. It is
// used when the lexicon engine fails to load, or when fallback mode is
// forced by configuration.
type FallbackEngine struct{}

// NewFallbackEngine returns the regex-based fallback engine.
func NewFallbackEngine() *FallbackEngine {
	return &FallbackEngine{}
}

func (e *FallbackEngine) Mode() Mode {
	return ModeFallback
}

// Segment splits text on runs of '.', '!', '?', trims whitespace, and
// discards segments of 10 characters or fewer. Raw and Text are the
// same trimmed string in fallback mode.
func (e *FallbackEngine) Segment(text string) []Sentence {
	parts := sentenceBoundary.Split(text, -1)
	var sentences []Sentence
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) <= minSentenceLength {
			continue
		}
		sentences = append(sentences, Sentence{
			Raw:    trimmed,
			Text:   trimmed,
			Tokens: e.WordTokens(trimmed),
		})
	}
	return sentences
}

// WordTokens tokenizes without stopword filtering: every token is
// treated as alphabetic-eligible and no stopword flags are set.
func (e *FallbackEngine) WordTokens(text string) []Token {
	words := splitWords(text)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{
			Text:       w,
			Lower:      strings.ToLower(w),
			Alphabetic: true,
		})
	}
	return tokens
}

// Entities always returns nil: the fallback engine has no span
// detection. Callers fall back to regex/keyword extraction instead.
func (e *FallbackEngine) Entities(text string) []Span {
	return nil
}
