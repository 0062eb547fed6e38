// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import (
	"strings"
	"testing"
)

func newTestLexiconEngine(t *testing.T) *LexiconEngine {
	t.Helper()
	lex, err := LoadEmbeddedLexicon()
	if err != nil {
		t.Fatalf("failed to load embedded lexicon: %v", err)
	}
	return NewLexiconEngine(lex)
}

func TestLexiconSegment_BasicBoundaries(t *testing.T) {
	e := newTestLexiconEngine(t)
	text := "The party of the first part shall pay. Mr. Smith agreed to the terms. The amount was $5.00 exactly."

	sentences := e.Segment(text)
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[1].Text != "Mr. Smith agreed to the terms." {
		t.Errorf("abbreviation should not split a sentence, got %q", sentences[1].Text)
	}
	if sentences[2].Text != "The amount was $5.00 exactly." {
		t.Errorf("decimal point should not split a sentence, got %q", sentences[2].Text)
	}
}

func TestLexiconSegment_InitialsAndNoLengthFilter(t *testing.T) {
	e := newTestLexiconEngine(t)
	text := "John Q. Adams signed. Yes."

	sentences := e.Segment(text)
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[0].Text != "John Q. Adams signed." {
		t.Errorf("initial should not split a sentence, got %q", sentences[0].Text)
	}
	// Unlike the fallback splitter, the lexicon engine applies no
	// minimum length; short sentences survive segmentation.
	if sentences[1].Text != "Yes." {
		t.Errorf("expected short sentence to survive, got %q", sentences[1].Text)
	}
}

func TestLexiconSegment_RawKeepsUntrimmedSpan(t *testing.T) {
	e := newTestLexiconEngine(t)
	sentences := e.Segment("First sentence here. Second sentence here.")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	for _, s := range sentences {
		if !strings.HasSuffix(s.Raw, ".") {
			t.Errorf("Raw should keep terminal punctuation: %q", s.Raw)
		}
		if s.Text != strings.TrimSpace(s.Raw) {
			t.Errorf("Text should be the trimmed Raw: raw=%q text=%q", s.Raw, s.Text)
		}
	}
}

func TestLexiconWordTokens_Flags(t *testing.T) {
	e := newTestLexiconEngine(t)
	tokens := e.WordTokens("The contract imposes 3 obligations")

	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(tokens))
	}
	if !tokens[0].Stopword {
		t.Error("'The' should be flagged as a stopword")
	}
	if tokens[1].Stopword {
		t.Error("'contract' should not be a stopword")
	}
	if tokens[3].Alphabetic {
		t.Error("'3' should not be alphabetic")
	}
	if !tokens[4].Alphabetic {
		t.Error("'obligations' should be alphabetic")
	}
}

func TestLexiconWordTokens_AccentFolding(t *testing.T) {
	e := newTestLexiconEngine(t)
	tokens := e.WordTokens("Café")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Lower != "cafe" {
		t.Errorf("expected accent-folded lower form 'cafe', got %q", tokens[0].Lower)
	}
}

func TestLexiconEntities_PersonOrgDateMoney(t *testing.T) {
	e := newTestLexiconEngine(t)
	text := "Dr. Jane Doe of Acme Widgets Inc signed on 01/02/2020 for $500.00. " +
		"The year 1999 was cited. Payment of 500 dollars is due to Michael Johnson."

	byLabel := make(map[string][]string)
	for _, sp := range e.Entities(text) {
		byLabel[sp.Label] = append(byLabel[sp.Label], sp.Text)
	}

	wantContains := map[string]string{
		LabelPerson: "Jane Doe",
		LabelOrg:    "Acme Widgets Inc",
		LabelDate:   "01/02/2020",
		LabelMoney:  "$500.00",
	}
	for label, want := range wantContains {
		if !containsString(byLabel[label], want) {
			t.Errorf("expected %s span %q, got %v", label, want, byLabel[label])
		}
	}
	if !containsString(byLabel[LabelPerson], "Michael Johnson") {
		t.Errorf("expected given-name person span, got %v", byLabel[LabelPerson])
	}
	if !containsString(byLabel[LabelDate], "1999") {
		t.Errorf("expected bare year span, got %v", byLabel[LabelDate])
	}
	if !containsString(byLabel[LabelMoney], "500 dollars") {
		t.Errorf("expected currency-word span, got %v", byLabel[LabelMoney])
	}
}

func TestLexiconEntities_DateAlternationOrder(t *testing.T) {
	e := newTestLexiconEngine(t)
	var dates []string
	for _, sp := range e.Entities("Signed on 01/02/2020 in witness thereof.") {
		if sp.Label == LabelDate {
			dates = append(dates, sp.Text)
		}
	}
	if len(dates) != 1 || dates[0] != "01/02/2020" {
		t.Errorf("full date should suppress the embedded bare year, got %v", dates)
	}
}

func TestLexiconEntities_OrgConsumesPersonRun(t *testing.T) {
	e := newTestLexiconEngine(t)
	spans := e.Entities("John Smith Inc delivered the goods.")

	var persons, orgs []string
	for _, sp := range spans {
		switch sp.Label {
		case LabelPerson:
			persons = append(persons, sp.Text)
		case LabelOrg:
			orgs = append(orgs, sp.Text)
		}
	}
	if !containsString(orgs, "John Smith Inc") {
		t.Errorf("expected ORG span, got %v", orgs)
	}
	if len(persons) != 0 {
		t.Errorf("ORG run should not also yield a PERSON span, got %v", persons)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
