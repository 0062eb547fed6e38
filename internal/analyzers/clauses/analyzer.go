// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clauses

import (
	"lexiscan/internal/observability"
	"lexiscan/internal/textproc"
)

// MaxClauses caps how many key clauses one document yields
const MaxClauses = 10

// minClauseLength is the sentence-length threshold in characters
const minClauseLength = 10

// Analyzer selects "key clauses": the first sentences of a document
// that exceed a minimum length. Selection is positional, not scored.
type Analyzer struct {
	engine   textproc.Engine
	observer *observability.StandardObserver
}

// NewAnalyzer creates a clause extractor backed by the given text engine
func NewAnalyzer(engine textproc.Engine) *Analyzer {
	return &Analyzer{engine: engine}
}

// SetObserver sets the observability component
func (a *Analyzer) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// Extract returns up to MaxClauses qualifying sentences in document
// order. The length threshold is measured against the untrimmed
// sentence span under the lexicon engine and against the trimmed text
// under the basic splitter; the two modes deliberately disagree on
// sentences that only clear the bar with surrounding whitespace.
func (a *Analyzer) Extract(text string) []string {
	var finishTiming func(bool, map[string]interface{})
	if a.observer != nil {
		finishTiming = a.observer.StartTiming("clause_analyzer", "extract", "")
	}

	var clauses []string
	for _, s := range a.engine.Segment(text) {
		length := len(s.Text)
		if a.engine.Mode() == textproc.ModeLexicon {
			length = len(s.Raw)
		}
		if length > minClauseLength {
			clauses = append(clauses, s.Text)
		}
		if len(clauses) == MaxClauses {
			break
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"text_length":  len(text),
			"clause_count": len(clauses),
		})
	}
	return clauses
}

// Frequencies counts occurrences per distinct clause. Downstream
// rendering uses it to show how often repeated boilerplate appears.
func Frequencies(clauses []string) map[string]int {
	freq := make(map[string]int, len(clauses))
	for _, c := range clauses {
		freq[c]++
	}
	return freq
}
