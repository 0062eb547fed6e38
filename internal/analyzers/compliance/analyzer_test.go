// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compliance

import (
	"reflect"
	"testing"
)

func TestCheck_AllClausesPresent(t *testing.T) {
	a := NewAnalyzer()
	text := "Governing law of Delaware applies. Termination requires notice. " +
		"Confidential material stays protected. Liability is capped. " +
		"A signature page follows."

	if issues := a.Check(text); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestCheck_EmptyTextFailsEveryRule(t *testing.T) {
	a := NewAnalyzer()

	issues := a.Check("")
	want := []string{
		"Missing governing law or jurisdiction clause",
		"No termination clause found",
		"No confidentiality or proprietary information clause",
		"Liability terms not clearly defined",
		"Document may lack proper signature requirements",
	}
	if !reflect.DeepEqual(issues, want) {
		t.Errorf("unexpected issues:\n got %v\nwant %v", issues, want)
	}
	if len(issues) != RuleCount() {
		t.Errorf("expected %d issues, got %d", RuleCount(), len(issues))
	}
}

func TestCheck_AlternateKeywordsSatisfyRules(t *testing.T) {
	a := NewAnalyzer()

	// jurisdiction instead of governing law, proprietary instead of
	// confidential, signed instead of signature.
	text := "The courts of this jurisdiction decide disputes over proprietary data. " +
		"Termination and liability are addressed. Signed by both parties."

	if issues := a.Check(text); len(issues) != 0 {
		t.Errorf("expected no issues with alternate keywords, got %v", issues)
	}
}

func TestCheck_SingleMissingClause(t *testing.T) {
	a := NewAnalyzer()

	text := "Jurisdiction, confidential handling, liability and signature terms all appear."
	issues := a.Check(text)
	if !reflect.DeepEqual(issues, []string{"No termination clause found"}) {
		t.Errorf("expected only the termination issue, got %v", issues)
	}
}

func TestCheck_CaseInsensitive(t *testing.T) {
	a := NewAnalyzer()

	issues := a.Check("GOVERNING LAW. TERMINATION. CONFIDENTIAL. LIABILITY. SIGNED.")
	if len(issues) != 0 {
		t.Errorf("matching should be case-insensitive, got %v", issues)
	}
}
