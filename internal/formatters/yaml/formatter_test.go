// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	goyaml "gopkg.in/yaml.v3"

	"lexiscan/internal/analysis"
	"lexiscan/internal/formatters"
)

func TestFormat_ProducesValidYAML(t *testing.T) {
	report := &analysis.Report{
		DocumentName:     "contract.pdf",
		EngineMode:       "fallback",
		DegradedNotice:   "using basic text processing",
		Risks:            []string{"fraud", "penalty"},
		ComplianceIssues: []string{"Liability terms not clearly defined"},
	}

	out, err := NewFormatter().Format(report, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := goyaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["document_name"] != "contract.pdf" {
		t.Errorf("unexpected document_name: %v", decoded["document_name"])
	}
	if decoded["degraded_notice"] != "using basic text processing" {
		t.Errorf("unexpected degraded_notice: %v", decoded["degraded_notice"])
	}
}

func TestRegistry_HasYAMLFormatter(t *testing.T) {
	if _, ok := formatters.Get("yaml"); !ok {
		t.Fatal("yaml formatter not registered")
	}
}
