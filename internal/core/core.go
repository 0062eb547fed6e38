// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"lexiscan/internal/analysis"
	"lexiscan/internal/analyzers/clauses"
	"lexiscan/internal/analyzers/compliance"
	"lexiscan/internal/analyzers/entities"
	"lexiscan/internal/analyzers/risk"
	"lexiscan/internal/analyzers/summary"
	"lexiscan/internal/help"
	"lexiscan/internal/observability"
	"lexiscan/internal/textproc"
)

// AnalysisConfig controls one document analysis run.
type AnalysisConfig struct {
	// Analyses maps analysis names to whether they run. A nil map
	// runs everything.
	Analyses map[string]bool

	// SummarySentences is the sentence count for SUMMARY; values
	// below 1 use the summarizer default.
	SummarySentences int

	// RiskTerms optionally replaces the risk vocabulary.
	RiskTerms []string
}

// Orchestrator wires the text engine into the five analyzers and
// assembles their results into a single report.
type Orchestrator struct {
	engine textproc.Engine
	notice string

	summarizer *summary.Analyzer
	clauses    *clauses.Analyzer
	risks      *risk.Analyzer
	entities   *entities.Analyzer
	compliance *compliance.Analyzer

	observer *observability.StandardObserver
}

// NewOrchestrator builds an orchestrator on the provider's engine.
// The provider's degraded-mode notice, if any, is carried into every
// report so callers see it exactly once per document.
func NewOrchestrator(provider *textproc.Provider) *Orchestrator {
	engine := provider.Engine()
	return &Orchestrator{
		engine:     engine,
		notice:     provider.Notice(),
		summarizer: summary.NewAnalyzer(engine),
		clauses:    clauses.NewAnalyzer(engine),
		risks:      risk.NewAnalyzer(engine),
		entities:   entities.NewAnalyzer(engine),
		compliance: compliance.NewAnalyzer(),
	}
}

// SetObserver sets the observability component on the orchestrator
// and all analyzers.
func (o *Orchestrator) SetObserver(observer *observability.StandardObserver) {
	o.observer = observer
	o.summarizer.SetObserver(observer)
	o.clauses.SetObserver(observer)
	o.risks.SetObserver(observer)
	o.entities.SetObserver(observer)
	o.compliance.SetObserver(observer)
}

// HelpProviders returns the analyzers that contribute help pages.
func (o *Orchestrator) HelpProviders() []help.Provider {
	return []help.Provider{o.summarizer, o.clauses, o.risks, o.entities, o.compliance}
}

// AnalyzeText runs the enabled analyses over already-extracted
// document text. The analyses are independent of each other; a
// disabled analysis leaves its report fields at zero values.
func (o *Orchestrator) AnalyzeText(text, documentName string, cfg AnalysisConfig) *analysis.Report {
	var finishTiming func(bool, map[string]interface{})
	var finishStep func(bool, string)
	if o.observer != nil {
		finishTiming = o.observer.StartTiming("orchestrator", "analyze_text", documentName)
		if o.observer.DebugObserver != nil {
			finishStep = o.observer.DebugObserver.StartStep("orchestrator", "analyze_text", documentName)
		}
	}

	if len(cfg.RiskTerms) > 0 {
		o.risks.SetTerms(cfg.RiskTerms)
	}

	report := &analysis.Report{
		DocumentName:   documentName,
		AnalyzedAt:     time.Now().Format("2006-01-02 15:04"),
		EngineMode:     o.engine.Mode().String(),
		DegradedNotice: o.notice,
		Stats:          ComputeStats(text, o.engine),
	}

	enabled := func(name string) bool {
		if cfg.Analyses == nil {
			return true
		}
		return cfg.Analyses[name]
	}

	if enabled(analysis.AnalysisSummary) {
		report.Summary = o.summarizer.Summarize(text, cfg.SummarySentences)
	}
	if enabled(analysis.AnalysisClauses) {
		report.Clauses = o.clauses.Extract(text)
		report.ClauseFrequency = clauses.Frequencies(report.Clauses)
	}
	if enabled(analysis.AnalysisRisks) {
		report.Risks = o.risks.Detect(text)
	}
	if enabled(analysis.AnalysisEntities) {
		report.Entities = o.entities.Extract(text)
	}
	if enabled(analysis.AnalysisCompliance) {
		report.ComplianceIssues = o.compliance.Check(text)
		report.RanCompliance = true
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"text_length": len(text),
			"engine_mode": report.EngineMode,
		})
	}
	if finishStep != nil {
		finishStep(true, fmt.Sprintf("%d clauses, %d risks", len(report.Clauses), len(report.Risks)))
	}
	return report
}

// ParseAnalysesToRun converts a comma-separated string of analysis
// names into a map of enabled analyses. "all" enables everything.
func ParseAnalysesToRun(analyses string) (map[string]bool, error) {
	available := []string{
		analysis.AnalysisSummary,
		analysis.AnalysisClauses,
		analysis.AnalysisRisks,
		analysis.AnalysisEntities,
		analysis.AnalysisCompliance,
	}

	result := make(map[string]bool)
	for _, name := range available {
		result[name] = false
	}

	if analyses == "all" || strings.TrimSpace(analyses) == "" {
		for key := range result {
			result[key] = true
		}
		return result, nil
	}

	for _, name := range strings.Split(analyses, ",") {
		nameStr := strings.ToUpper(strings.TrimSpace(name))
		if _, exists := result[nameStr]; exists {
			result[nameStr] = true
		} else if nameStr != "" {
			return nil, fmt.Errorf("unknown analysis type '%s' (available: %s)",
				nameStr, strings.Join(available, ", "))
		}
	}

	return result, nil
}

// ComputeStats derives basic document statistics from the raw text.
func ComputeStats(text string, engine textproc.Engine) analysis.DocumentStats {
	stats := analysis.DocumentStats{
		Words:      len(engine.WordTokens(text)),
		Characters: utf8.RuneCountInString(text),
		Sentences:  len(engine.Segment(text)),
	}
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			stats.Paragraphs++
		}
	}
	return stats
}
