// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestExtract_PlainTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.txt")
	content := "This agreement is governed by the laws of Delaware."
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	text, err := NewExtractor().Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != content {
		t.Errorf("expected verbatim content, got %q", text)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	if _, err := NewExtractor().Extract("/nonexistent/contract.txt"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestExtract_CorruptPDFFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := NewExtractor().Extract(path); err == nil {
		t.Error("expected an error for a corrupt PDF")
	}
}

func TestJoinRowText_InsertsSpacesAtGaps(t *testing.T) {
	row := []pdf.Text{
		{S: "Liability", X: 0, W: 50, FontSize: 10},
		{S: "is", X: 60, W: 10, FontSize: 10},
		{S: "limited.", X: 75, W: 40, FontSize: 10},
	}

	got := joinRowText(row)
	if got != "Liability is limited." {
		t.Errorf("expected spaced row text, got %q", got)
	}
}

func TestJoinRowText_NoSpaceWithinTightKerning(t *testing.T) {
	row := []pdf.Text{
		{S: "Ter", X: 0, W: 20, FontSize: 12},
		{S: "mination", X: 20.5, W: 40, FontSize: 12},
	}

	if got := joinRowText(row); got != "Termination" {
		t.Errorf("tight fragments should join without a space, got %q", got)
	}
}

func TestJoinRowText_OrdersByXCoordinate(t *testing.T) {
	row := []pdf.Text{
		{S: "clause", X: 100, W: 30, FontSize: 10},
		{S: "Termination", X: 0, W: 60, FontSize: 10},
	}

	if got := joinRowText(row); got != "Termination clause" {
		t.Errorf("fragments should sort left to right, got %q", got)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  Clause one.  \n\n\tClause   two.\n   \nClause three."
	want := "Clause one.\nClause two.\nClause three."
	if got := normalizeWhitespace(in); got != want {
		t.Errorf("unexpected normalization:\n got %q\nwant %q", got, want)
	}
}

func TestAverageY(t *testing.T) {
	elements := []pdf.Text{{Y: 10}, {Y: 20}, {Y: 30}}
	if got := averageY(elements); got != 20 {
		t.Errorf("expected average 20, got %v", got)
	}
	if got := averageY(nil); got != 0 {
		t.Errorf("expected 0 for empty row, got %v", got)
	}
}
