// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import "unicode"

// Mode identifies which segmentation engine is active for the process.
type Mode int

const (
	// ModeFallback is the degraded regex/keyword path used when the
	// lexicon engine could not be loaded.
	ModeFallback Mode = iota

	// ModeLexicon is the full path backed by the embedded lexicons:
	// stopword-aware tokens, abbreviation-aware sentence boundaries,
	// and typed entity spans.
	ModeLexicon
)

func (m Mode) String() string {
	if m == ModeLexicon {
		return "lexicon"
	}
	return "fallback"
}

// Token is a word-level unit of a sentence.
type Token struct {
	Text       string // surface form as it appears in the text
	Lower      string // lowercased form used for frequency lookups
	Alphabetic bool   // all runes are letters
	Stopword   bool   // common word excluded from frequency scoring (lexicon mode only)
}

// Sentence is a contiguous span of document text.
//
// Raw is the span as segmented, before whitespace trimming; Text is the
// trimmed form. The clause extractor depends on the distinction: lexicon
// mode measures Raw, fallback mode measures Text.
type Sentence struct {
	Raw    string
	Text   string
	Tokens []Token
}

// Span is a typed entity span detected in the document text. Labels
// follow the PERSON / ORG / DATE / MONEY convention; the recognizer
// drops spans with any other label.
type Span struct {
	Text  string
	Label string
}

// Entity span labels emitted by the lexicon engine.
const (
	LabelPerson = "PERSON"
	LabelOrg    = "ORG"
	LabelDate   = "DATE"
	LabelMoney  = "MONEY"
)

// Engine provides sentence segmentation, word tokenization, and entity
// span detection over raw document text. Implementations are selected
// once at process start and are safe for concurrent use: they hold only
// read-only state.
type Engine interface {
	// Mode reports which processing path this engine implements.
	Mode() Mode

	// Segment splits text into ordered sentences.
	Segment(text string) []Sentence

	// WordTokens tokenizes text without sentence segmentation.
	WordTokens(text string) []Token

	// Entities returns typed entity spans found in text. The fallback
	// engine returns nil: it has no span detection.
	Entities(text string) []Span
}

// isAlphabetic reports whether every rune in s is a letter.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// splitWords breaks text into word-level surface forms. A word is a run
// of letters or digits, optionally joined by internal apostrophes or
// hyphens ("don't", "non-compliance" stay single words).
func splitWords(text string) []string {
	var words []string
	runes := []rune(text)
	start := -1
	isWordRune := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && isWordRune(runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		// Allow a single joiner between word runes.
		if i < len(runes) && start >= 0 && (runes[i] == '\'' || runes[i] == '-') &&
			i+1 < len(runes) && isWordRune(runes[i+1]) {
			continue
		}
		if start >= 0 {
			words = append(words, string(runes[start:i]))
			start = -1
		}
	}
	return words
}
