// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analysis

// Analysis names as accepted by --analyses and config files.
const (
	AnalysisSummary    = "SUMMARY"
	AnalysisClauses    = "KEY_CLAUSES"
	AnalysisRisks      = "RISK_TERMS"
	AnalysisEntities   = "ENTITIES"
	AnalysisCompliance = "COMPLIANCE"
)

// Entity bucket keys. Every report carries all five buckets, empty or not.
const (
	BucketPersons       = "PERSONS"
	BucketOrganizations = "ORGANIZATIONS"
	BucketDates         = "DATES"
	BucketMonetary      = "MONETARY"
	BucketLegalTerms    = "LEGAL_TERMS"
)

// BucketKeys returns the entity bucket keys in display order.
func BucketKeys() []string {
	return []string{
		BucketPersons,
		BucketOrganizations,
		BucketDates,
		BucketMonetary,
		BucketLegalTerms,
	}
}

// LegalTerms is the shared legal keyword vocabulary. The entity recognizer
// uses it for the LEGAL_TERMS bucket in fallback mode and the compliance
// checker's clause rules overlap with it. All entries are lowercase.
var LegalTerms = []string{
	"contract",
	"agreement",
	"liability",
	"indemnity",
	"warranty",
	"termination",
	"jurisdiction",
	"governing law",
}

// EntityBuckets maps a bucket key to the deduplicated entities extracted
// for that category, capped at the recognizer's per-bucket limit.
type EntityBuckets map[string][]string

// NewEntityBuckets returns a bucket map with all five keys present.
func NewEntityBuckets() EntityBuckets {
	b := make(EntityBuckets, 5)
	for _, key := range BucketKeys() {
		b[key] = nil
	}
	return b
}

// DocumentStats holds basic counts over the raw document text.
type DocumentStats struct {
	Words      int `json:"words" yaml:"words"`
	Characters int `json:"characters" yaml:"characters"`
	Sentences  int `json:"sentences" yaml:"sentences"`
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`
}

// Report holds the combined results of one document analysis. Analyses
// that were not requested leave their fields at zero values.
type Report struct {
	DocumentName     string         `json:"document_name" yaml:"document_name"`
	AnalyzedAt       string         `json:"analyzed_at" yaml:"analyzed_at"`
	EngineMode       string         `json:"engine_mode" yaml:"engine_mode"`
	DegradedNotice   string         `json:"degraded_notice,omitempty" yaml:"degraded_notice,omitempty"`
	Stats            DocumentStats  `json:"stats" yaml:"stats"`
	Summary          string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Clauses          []string       `json:"key_clauses,omitempty" yaml:"key_clauses,omitempty"`
	ClauseFrequency  map[string]int `json:"clause_frequency,omitempty" yaml:"clause_frequency,omitempty"`
	Risks            []string       `json:"risk_terms,omitempty" yaml:"risk_terms,omitempty"`
	Entities         EntityBuckets  `json:"entities,omitempty" yaml:"entities,omitempty"`
	ComplianceIssues []string       `json:"compliance_issues" yaml:"compliance_issues"`
	RanCompliance    bool           `json:"-" yaml:"-"`
}
