// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lexiscan/internal/analysis"
	"lexiscan/internal/formatters"
)

// Formatter implements human-readable text output
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable report with colors and sections"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(report *analysis.Report, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	b.WriteString(f.colors["title"].Sprint("Legal Document Analysis Report"))
	b.WriteString("\n==============================\n\n")

	fmt.Fprintf(&b, "Document: %s\n", report.DocumentName)
	fmt.Fprintf(&b, "Analyzed: %s\n", report.AnalyzedAt)
	fmt.Fprintf(&b, "Engine:   %s\n", report.EngineMode)
	if report.DegradedNotice != "" {
		b.WriteString(f.colors["yellow"].Sprintf("Notice:   %s", report.DegradedNotice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if options.Verbose {
		b.WriteString(f.colors["header"].Sprint("Document Statistics"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Words:      %d\n", report.Stats.Words)
		fmt.Fprintf(&b, "  Characters: %d\n", report.Stats.Characters)
		fmt.Fprintf(&b, "  Sentences:  %d\n", report.Stats.Sentences)
		fmt.Fprintf(&b, "  Paragraphs: %d\n", report.Stats.Paragraphs)
		b.WriteString("\n")
	}

	if report.Summary != "" {
		b.WriteString(f.colors["header"].Sprint("Document Summary"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n\n", report.Summary)
	}

	if len(report.Clauses) > 0 {
		b.WriteString(f.colors["header"].Sprint("Key Legal Clauses"))
		b.WriteString("\n")
		for i, clause := range report.Clauses {
			fmt.Fprintf(&b, "  %d. %s", i+1, clause)
			if count := report.ClauseFrequency[clause]; count > 1 {
				b.WriteString(f.colors["cyan"].Sprintf(" (x%d)", count))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(f.colors["header"].Sprint("Risk Assessment"))
	b.WriteString("\n")
	if len(report.Risks) > 0 {
		b.WriteString(f.colors["red"].Sprintf("  ⚠ Potential risks detected: %s", strings.Join(report.Risks, ", ")))
		b.WriteString("\n\n")
	} else {
		b.WriteString(f.colors["green"].Sprint("  ✓ No significant legal risks detected"))
		b.WriteString("\n\n")
	}

	if report.Entities != nil {
		b.WriteString(f.colors["header"].Sprint("Entity Recognition"))
		b.WriteString("\n")
		found := false
		for _, key := range analysis.BucketKeys() {
			values := report.Entities[key]
			if len(values) == 0 {
				continue
			}
			found = true
			fmt.Fprintf(&b, "  %s: ", key)
			b.WriteString(f.colors["magenta"].Sprint(strings.Join(values, ", ")))
			b.WriteString("\n")
		}
		if !found {
			b.WriteString("  No specific legal entities identified\n")
		}
		b.WriteString("\n")
	}

	if report.RanCompliance {
		b.WriteString(f.colors["header"].Sprint("Compliance Check"))
		b.WriteString("\n")
		if len(report.ComplianceIssues) > 0 {
			for _, issue := range report.ComplianceIssues {
				b.WriteString(f.colors["yellow"].Sprintf("  ⚠ %s", issue))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(f.colors["green"].Sprint("  ✓ Document appears compliant with standard legal requirements"))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

func init() {
	formatters.Register(NewFormatter())
}
