// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"lexiscan/internal/analysis"
	"lexiscan/internal/formatters"
)

func TestFormat_RoundTripsReportFields(t *testing.T) {
	report := &analysis.Report{
		DocumentName: "contract.pdf",
		AnalyzedAt:   "2026-08-30 10:00",
		EngineMode:   "lexicon",
		Summary:      "The parties agree.",
		Risks:        []string{"breach"},
		Entities: analysis.EntityBuckets{
			analysis.BucketDates: {"01/02/2020"},
		},
		ComplianceIssues: []string{"No termination clause found"},
	}

	out, err := NewFormatter().Format(report, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["document_name"] != "contract.pdf" {
		t.Errorf("unexpected document_name: %v", decoded["document_name"])
	}
	if decoded["engine_mode"] != "lexicon" {
		t.Errorf("unexpected engine_mode: %v", decoded["engine_mode"])
	}
	if _, ok := decoded["entities"]; !ok {
		t.Error("expected entities key in JSON output")
	}
}

func TestFormat_OmitsEmptyOptionalFields(t *testing.T) {
	report := &analysis.Report{DocumentName: "doc.txt"}

	out, err := NewFormatter().Format(report, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["summary"]; ok {
		t.Error("empty summary should be omitted")
	}
	if _, ok := decoded["degraded_notice"]; ok {
		t.Error("empty degraded_notice should be omitted")
	}
}

func TestRegistry_HasJSONFormatter(t *testing.T) {
	f, ok := formatters.Get("json")
	if !ok {
		t.Fatal("json formatter not registered")
	}
	if f.FileExtension() != ".json" {
		t.Errorf("unexpected extension: %s", f.FileExtension())
	}
}
