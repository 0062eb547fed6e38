// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// LexiconEngine is the full segmentation path. It is backed by read-only
// word lists (stopwords, given names, organization suffixes) and provides
// abbreviation-aware sentence boundaries, stopword-flagged tokens, and
// typed entity spans.
type LexiconEngine struct {
	lexicon     *Lexicon
	foldAccents bool
}

// LexiconOption is a functional option for LexiconEngine construction.
type LexiconOption func(*LexiconEngine)

// WithAccentFolding enables or disables accent folding on token
// lowercase forms. Enabled by default.
func WithAccentFolding(v bool) LexiconOption {
	return func(e *LexiconEngine) { e.foldAccents = v }
}

// NewLexiconEngine creates a lexicon engine from the given word lists.
func NewLexiconEngine(lex *Lexicon, opts ...LexiconOption) *LexiconEngine {
	e := &LexiconEngine{
		lexicon:     lex,
		foldAccents: true,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *LexiconEngine) Mode() Mode {
	return ModeLexicon
}

// abbreviations that end with a period without terminating a sentence
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"jr": true, "sr": true, "st": true, "no": true, "vs": true,
	"inc": true, "ltd": true, "corp": true, "co": true,
	"e.g": true, "i.e": true, "etc": true, "u.s": true,
}

// honorifics that introduce a person name
var honorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"judge": true, "justice": true, "attorney": true,
}

// Segment splits text into sentences at runs of '.', '!', '?' that are
// followed by whitespace and an uppercase or digit start, guarding
// against common abbreviations and initials. Raw keeps the original
// span including terminal punctuation; Text is the trimmed form.
func (e *LexiconEngine) Segment(text string) []Sentence {
	var sentences []Sentence
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			i++
			continue
		}
		j := i
		for j < len(runes) && (runes[j] == '.' || runes[j] == '!' || runes[j] == '?') {
			j++
		}
		if runes[i] == '.' && j == i+1 && e.isAbbreviationBefore(runes, start, i) {
			i = j
			continue
		}
		if !boundaryFollows(runes, j) {
			i = j
			continue
		}
		if s, ok := e.makeSentence(string(runes[start:j])); ok {
			sentences = append(sentences, s)
		}
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j
	}
	if start < len(runes) {
		if s, ok := e.makeSentence(string(runes[start:])); ok {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// boundaryFollows reports whether the text after a terminator run at j
// looks like a sentence start: end of text, or whitespace followed by an
// uppercase letter, digit, or opening quote.
func boundaryFollows(runes []rune, j int) bool {
	if j >= len(runes) {
		return true
	}
	if !unicode.IsSpace(runes[j]) {
		return false
	}
	k := j
	for k < len(runes) && unicode.IsSpace(runes[k]) {
		k++
	}
	if k >= len(runes) {
		return true
	}
	r := runes[k]
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '\'' || r == '(' || r == '“'
}

// isAbbreviationBefore reports whether the word ending at the period at
// pos is a known abbreviation or a single-letter initial.
func (e *LexiconEngine) isAbbreviationBefore(runes []rune, start, pos int) bool {
	end := pos
	wordStart := end
	for wordStart > start {
		r := runes[wordStart-1]
		if unicode.IsLetter(r) || r == '.' {
			wordStart--
			continue
		}
		break
	}
	if wordStart == end {
		return false
	}
	word := strings.ToLower(strings.Trim(string(runes[wordStart:end]), "."))
	if word == "" {
		return false
	}
	if len([]rune(word)) == 1 {
		// Single-letter initial, e.g. "John Q. Adams".
		return true
	}
	return abbreviations[word]
}

func (e *LexiconEngine) makeSentence(raw string) (Sentence, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Sentence{}, false
	}
	return Sentence{
		Raw:    raw,
		Text:   text,
		Tokens: e.WordTokens(text),
	}, true
}

// WordTokens tokenizes text with alphabetic and stopword flags. Lower
// forms are accent-folded so "café" and "cafe" share one frequency
// entry.
func (e *LexiconEngine) WordTokens(text string) []Token {
	words := splitWords(text)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		lower := strings.ToLower(w)
		if e.foldAccents {
			lower = foldAccents(lower)
		}
		tokens = append(tokens, Token{
			Text:       w,
			Lower:      lower,
			Alphabetic: isAlphabetic(w),
			Stopword:   e.lexicon.Stopwords[lower],
		})
	}
	return tokens
}

// foldAccents strips combining marks after NFD decomposition.
func foldAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// Date and monetary span patterns. The alternation order matters: full
// numeric dates must win over the bare-year alternative so "01/02/2020"
// is one DATE span, not a date plus a year.
var (
	lexiconDatePattern = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|` +
		`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b|` +
		`\b\d{4}\b`)
	lexiconMoneyPattern = regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d{2})?|(?i)\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:USD|dollars?|cents?)\b`)
)

// wordSpan is a word with its byte offsets in the source text.
type wordSpan struct {
	text       string
	start, end int
}

// Entities detects typed spans. Organizations are matched first so a
// name like "John Smith Inc" yields one ORG span rather than a PERSON
// plus an ORG; persons are matched from the remaining capitalized runs;
// dates and monetary amounts come from the patterns above.
func (e *LexiconEngine) Entities(text string) []Span {
	var spans []Span
	words := scanWordSpans(text)
	consumed := make([]bool, len(words))

	// ORG: run of 2+ capitalized words ending in an org suffix.
	for i := 0; i < len(words); i++ {
		if consumed[i] || !isCapitalized(words[i].text) {
			continue
		}
		j := i
		for j < len(words) && !consumed[j] && isCapitalized(words[j].text) && adjacentWords(text, words, j, i) {
			j++
		}
		if j-i >= 2 && e.lexicon.OrgSuffixes[strings.ToLower(words[j-1].text)] {
			spans = append(spans, Span{
				Text:  text[words[i].start:words[j-1].end],
				Label: LabelOrg,
			})
			for k := i; k < j; k++ {
				consumed[k] = true
			}
			i = j - 1
		}
	}

	// PERSON: honorific followed by capitalized words, or a known given
	// name followed by further capitalized words.
	for i := 0; i < len(words); i++ {
		if consumed[i] {
			continue
		}
		lower := strings.ToLower(words[i].text)
		if honorifics[lower] {
			j := i + 1
			for j < len(words) && j-i <= 3 && !consumed[j] && isCapitalized(words[j].text) {
				j++
			}
			if j > i+1 {
				spans = append(spans, Span{
					Text:  text[words[i+1].start:words[j-1].end],
					Label: LabelPerson,
				})
				for k := i; k < j; k++ {
					consumed[k] = true
				}
				i = j - 1
			}
			continue
		}
		if isCapitalized(words[i].text) && e.lexicon.GivenNames[lower] {
			j := i + 1
			for j < len(words) && j-i < 3 && !consumed[j] && isCapitalized(words[j].text) &&
				!e.lexicon.OrgSuffixes[strings.ToLower(words[j].text)] {
				j++
			}
			if j > i+1 {
				spans = append(spans, Span{
					Text:  text[words[i].start:words[j-1].end],
					Label: LabelPerson,
				})
				for k := i; k < j; k++ {
					consumed[k] = true
				}
				i = j - 1
			}
		}
	}

	for _, m := range lexiconDatePattern.FindAllString(text, -1) {
		spans = append(spans, Span{Text: m, Label: LabelDate})
	}
	for _, m := range lexiconMoneyPattern.FindAllString(text, -1) {
		spans = append(spans, Span{Text: strings.TrimSpace(m), Label: LabelMoney})
	}
	return spans
}

// isCapitalized reports whether the word starts with an uppercase letter.
func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// adjacentWords reports whether word j directly continues the run that
// began at word first: separated from its predecessor by at most two
// bytes (a space, or comma-space before a suffix like "Acme, Inc").
func adjacentWords(text string, words []wordSpan, j, first int) bool {
	if j == first {
		return true
	}
	gap := text[words[j-1].end:words[j].start]
	return len(gap) <= 2 && !strings.ContainsAny(gap, ".\n")
}

// scanWordSpans is splitWords with byte offsets.
func scanWordSpans(text string) []wordSpan {
	var words []wordSpan
	start := -1
	isWordRune := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	runes := []rune(text)
	// Track byte offsets alongside rune positions.
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = off

	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && isWordRune(runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if i < len(runes) && start >= 0 && (runes[i] == '\'' || runes[i] == '-') &&
			i+1 < len(runes) && isWordRune(runes[i+1]) {
			continue
		}
		if start >= 0 {
			words = append(words, wordSpan{
				text:  string(runes[start:i]),
				start: offsets[start],
				end:   offsets[i],
			})
			start = -1
		}
	}
	return words
}
