// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"sort"
	"strings"

	"lexiscan/internal/observability"
	"lexiscan/internal/textproc"
)

// DefaultRiskTerms is the vocabulary scanned for by default. All
// entries are lowercase; matching is case-insensitive.
var DefaultRiskTerms = []string{
	"fraud", "penalty", "violation", "risk", "lawsuit", "breach",
	"noncompliance", "litigation", "regulatory", "fine",
}

// Analyzer scans a document for a fixed risk-term vocabulary.
type Analyzer struct {
	engine   textproc.Engine
	terms    []string
	observer *observability.StandardObserver
}

// NewAnalyzer creates a risk detector with the default vocabulary
func NewAnalyzer(engine textproc.Engine) *Analyzer {
	return &Analyzer{engine: engine, terms: DefaultRiskTerms}
}

// SetTerms replaces the risk vocabulary. Terms are lowercased; empty
// entries are dropped. An empty replacement list keeps the default.
func (a *Analyzer) SetTerms(terms []string) {
	var cleaned []string
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) > 0 {
		a.terms = cleaned
	}
}

// SetObserver sets the observability component
func (a *Analyzer) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// Detect returns the vocabulary terms present in the text as a sorted,
// deduplicated list. The lexicon engine requires an exact token match,
// so "risky" does not trigger "risk"; the basic engine matches plain
// substrings and would.
func (a *Analyzer) Detect(text string) []string {
	var finishTiming func(bool, map[string]interface{})
	if a.observer != nil {
		finishTiming = a.observer.StartTiming("risk_analyzer", "detect", "")
	}

	lower := strings.ToLower(text)
	found := make(map[string]bool)

	if a.engine.Mode() == textproc.ModeLexicon {
		vocabulary := make(map[string]bool, len(a.terms))
		for _, term := range a.terms {
			vocabulary[term] = true
		}
		for _, tok := range a.engine.WordTokens(lower) {
			if vocabulary[tok.Text] {
				found[tok.Text] = true
			}
		}
	} else {
		for _, term := range a.terms {
			if strings.Contains(lower, term) {
				found[term] = true
			}
		}
	}

	risks := make([]string, 0, len(found))
	for term := range found {
		risks = append(risks, term)
	}
	sort.Strings(risks)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"text_length": len(text),
			"risk_count":  len(risks),
		})
	}
	return risks
}
