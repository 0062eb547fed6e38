// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compliance

import (
	"strings"

	"lexiscan/internal/observability"
)

// complianceRule flags an issue when none of its keywords appear in
// the lowercased document text.
type complianceRule struct {
	keywords []string
	issue    string
}

// rules are evaluated in this fixed order; the issue list preserves it.
var rules = []complianceRule{
	{
		keywords: []string{"governing law", "jurisdiction"},
		issue:    "Missing governing law or jurisdiction clause",
	},
	{
		keywords: []string{"termination"},
		issue:    "No termination clause found",
	},
	{
		keywords: []string{"confidential", "proprietary"},
		issue:    "No confidentiality or proprietary information clause",
	},
	{
		keywords: []string{"liability"},
		issue:    "Liability terms not clearly defined",
	},
	{
		keywords: []string{"signature", "signed"},
		issue:    "Document may lack proper signature requirements",
	},
}

// Analyzer runs presence checks for clauses a well-formed legal
// document is expected to carry.
type Analyzer struct {
	observer *observability.StandardObserver
}

// NewAnalyzer creates a compliance checker
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// SetObserver sets the observability component
func (a *Analyzer) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// Check evaluates all five rules against the lowercased text and
// returns the issues in rule order. An empty result means the
// document passes every check. Matching is substring containment;
// there is no scoring or partial credit.
func (a *Analyzer) Check(text string) []string {
	var finishTiming func(bool, map[string]interface{})
	if a.observer != nil {
		finishTiming = a.observer.StartTiming("compliance_analyzer", "check", "")
	}

	lower := strings.ToLower(text)
	var issues []string
	for _, rule := range rules {
		found := false
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, rule.issue)
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"text_length": len(text),
			"issue_count": len(issues),
		})
	}
	return issues
}

// RuleCount reports how many compliance rules run per document.
func RuleCount() int {
	return len(rules)
}
