// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clauses

import (
	"strings"
	"testing"

	"lexiscan/internal/textproc"
)

func lexiconEngine(t *testing.T) textproc.Engine {
	t.Helper()
	lex, err := textproc.LoadEmbeddedLexicon()
	if err != nil {
		t.Fatalf("failed to load embedded lexicon: %v", err)
	}
	return textproc.NewLexiconEngine(lex)
}

func TestExtract_DocumentOrderAndCap(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("This is qualifying clause number ")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString(". ")
	}

	clauses := a.Extract(b.String())
	if len(clauses) != MaxClauses {
		t.Fatalf("expected %d clauses, got %d", MaxClauses, len(clauses))
	}
	if !strings.HasSuffix(clauses[0], "x") {
		t.Errorf("expected first clause first, got %q", clauses[0])
	}
	if !strings.HasSuffix(clauses[9], strings.Repeat("x", 10)) {
		t.Errorf("expected tenth clause last, got %q", clauses[9])
	}
}

func TestExtract_FiltersShortSentences(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	clauses := a.Extract("Short. The governing law of this agreement is California law. No.")
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d: %v", len(clauses), clauses)
	}
	if clauses[0] != "The governing law of this agreement is California law" {
		t.Errorf("unexpected clause: %q", clauses[0])
	}
}

func TestExtract_LexiconMeasuresRawSpan(t *testing.T) {
	a := NewAnalyzer(lexiconEngine(t))

	// "Agreed so." is 10 characters trimmed, but the preceding space
	// in the raw span pushes it over the threshold.
	clauses := a.Extract("The parties reviewed every schedule. Agreed so.")
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d: %v", len(clauses), clauses)
	}
	if clauses[1] != "Agreed so." {
		t.Errorf("unexpected second clause: %q", clauses[1])
	}
}

func TestExtract_FallbackMeasuresTrimmedText(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	// Trimmed, "Agreed so" is 9 characters and must be dropped.
	clauses := a.Extract("The parties reviewed every schedule. Agreed so.")
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d: %v", len(clauses), clauses)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())
	if clauses := a.Extract(""); len(clauses) != 0 {
		t.Errorf("expected no clauses for empty input, got %v", clauses)
	}
}

func TestFrequencies_CountsDuplicates(t *testing.T) {
	freq := Frequencies([]string{"Payment is due", "Payment is due", "Notice required"})
	if freq["Payment is due"] != 2 {
		t.Errorf("expected count 2, got %d", freq["Payment is due"])
	}
	if freq["Notice required"] != 1 {
		t.Errorf("expected count 1, got %d", freq["Notice required"])
	}
	if len(freq) != 2 {
		t.Errorf("expected 2 distinct clauses, got %d", len(freq))
	}
}
