// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entities

import (
	"reflect"
	"testing"

	"lexiscan/internal/analysis"
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

func TestExtract_FallbackBuckets(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	text := "This is a test contract. It was signed on 01/02/2020 for $500.00. " +
		"Governing law is California. Termination occurs in jurisdiction X. " +
		"Liability is limited. Confidential information is protected."

	buckets := a.Extract(text)

	if !reflect.DeepEqual(buckets[analysis.BucketDates], []string{"01/02/2020"}) {
		t.Errorf("unexpected DATES: %v", buckets[analysis.BucketDates])
	}
	if !reflect.DeepEqual(buckets[analysis.BucketMonetary], []string{"$500.00"}) {
		t.Errorf("unexpected MONETARY: %v", buckets[analysis.BucketMonetary])
	}

	wantTerms := []string{"contract", "liability", "termination", "jurisdiction", "governing law"}
	if !reflect.DeepEqual(buckets[analysis.BucketLegalTerms], wantTerms) {
		t.Errorf("unexpected LEGAL_TERMS:\n got %v\nwant %v", buckets[analysis.BucketLegalTerms], wantTerms)
	}

	// "confidential" matters to the compliance rules but is not part
	// of the legal term vocabulary.
	for _, term := range buckets[analysis.BucketLegalTerms] {
		if term == "confidential" {
			t.Error("LEGAL_TERMS should not contain 'confidential'")
		}
	}

	if len(buckets[analysis.BucketPersons]) != 0 || len(buckets[analysis.BucketOrganizations]) != 0 {
		t.Errorf("fallback mode should leave PERSONS and ORGANIZATIONS empty: %v / %v",
			buckets[analysis.BucketPersons], buckets[analysis.BucketOrganizations])
	}
}

func TestExtract_FallbackMoneyForms(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	buckets := a.Extract("Pay $1,250 plus 99 cents and 10 USD on top of $3.50 today.")
	want := []string{"$1,250", "99 cents", "10 USD", "$3.50"}
	if !reflect.DeepEqual(buckets[analysis.BucketMonetary], want) {
		t.Errorf("unexpected MONETARY:\n got %v\nwant %v", buckets[analysis.BucketMonetary], want)
	}
}

func TestExtract_FallbackBareYearSuppressedInsideFullDate(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	buckets := a.Extract("Executed 12/31/2021, effective 1999.")
	want := []string{"12/31/2021", "1999"}
	if !reflect.DeepEqual(buckets[analysis.BucketDates], want) {
		t.Errorf("unexpected DATES:\n got %v\nwant %v", buckets[analysis.BucketDates], want)
	}
}

func TestExtract_LexiconRoutesSpansAndSkipsLegalTerms(t *testing.T) {
	a := NewAnalyzer(lexiconEngine(t))

	text := "Dr. Jane Doe of Acme Widgets Inc signed this contract on 01/02/2020 for $500.00."
	buckets := a.Extract(text)

	if !containsValue(buckets[analysis.BucketPersons], "Jane Doe") {
		t.Errorf("expected person, got %v", buckets[analysis.BucketPersons])
	}
	if !containsValue(buckets[analysis.BucketOrganizations], "Acme Widgets Inc") {
		t.Errorf("expected organization, got %v", buckets[analysis.BucketOrganizations])
	}
	if !containsValue(buckets[analysis.BucketDates], "01/02/2020") {
		t.Errorf("expected date, got %v", buckets[analysis.BucketDates])
	}
	if !containsValue(buckets[analysis.BucketMonetary], "$500.00") {
		t.Errorf("expected amount, got %v", buckets[analysis.BucketMonetary])
	}
	if len(buckets[analysis.BucketLegalTerms]) != 0 {
		t.Errorf("LEGAL_TERMS must stay empty with the lexicon engine, got %v",
			buckets[analysis.BucketLegalTerms])
	}
}

func TestExtract_DedupeAndCap(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	text := "1999 1999 2000 2001 2002 2003 2004 2005 2006 2007 2008 2009 2010 2011"

	buckets := a.Extract(text)
	dates := buckets[analysis.BucketDates]
	if len(dates) != MaxPerBucket {
		t.Fatalf("expected bucket capped at %d, got %d: %v", MaxPerBucket, len(dates), dates)
	}
	if dates[0] != "1999" || dates[1] != "2000" {
		t.Errorf("expected first-occurrence dedupe order, got %v", dates)
	}
}

func TestExtract_AllBucketsPresent(t *testing.T) {
	a := NewAnalyzer(textproc.NewFallbackEngine())

	buckets := a.Extract("")
	for _, key := range analysis.BucketKeys() {
		if _, ok := buckets[key]; !ok {
			t.Errorf("bucket %s missing from result", key)
		}
	}
}

func containsValue(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
