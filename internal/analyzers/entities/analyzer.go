// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entities

import (
	"regexp"
	"strings"

	"lexiscan/internal/analysis"
	"lexiscan/internal/observability"
	"lexiscan/internal/textproc"
)

// MaxPerBucket caps each entity bucket after deduplication
const MaxPerBucket = 10

// Fallback extraction patterns. The date pattern is a single
// alternation so a full date consumes its embedded year before the
// bare-year branch can match it.
var (
	fallbackDatePattern  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}\b`)
	fallbackMoneyPattern = regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d{2})?|(?i)\b\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:USD|dollars?|cents?)\b`)
)

// Analyzer extracts typed entities into the five report buckets.
type Analyzer struct {
	engine   textproc.Engine
	observer *observability.StandardObserver
}

// NewAnalyzer creates an entity recognizer backed by the given text engine
func NewAnalyzer(engine textproc.Engine) *Analyzer {
	return &Analyzer{engine: engine}
}

// SetObserver sets the observability component
func (a *Analyzer) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// Extract returns the entity buckets for the document. The lexicon
// engine routes its detected spans by label and leaves LEGAL_TERMS
// empty; the basic engine has no person or organization detection and
// fills DATES, MONETARY and LEGAL_TERMS from patterns and the shared
// legal vocabulary. Every bucket is deduplicated (first occurrence
// wins) and capped at MaxPerBucket.
func (a *Analyzer) Extract(text string) analysis.EntityBuckets {
	var finishTiming func(bool, map[string]interface{})
	if a.observer != nil {
		finishTiming = a.observer.StartTiming("entity_analyzer", "extract", "")
	}

	buckets := analysis.NewEntityBuckets()
	if a.engine.Mode() == textproc.ModeLexicon {
		a.extractFromSpans(text, buckets)
	} else {
		a.extractFallback(text, buckets)
	}

	total := 0
	for key, values := range buckets {
		buckets[key] = dedupeAndCap(values)
		total += len(buckets[key])
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"text_length":  len(text),
			"entity_count": total,
		})
	}
	return buckets
}

func (a *Analyzer) extractFromSpans(text string, buckets analysis.EntityBuckets) {
	for _, span := range a.engine.Entities(text) {
		switch span.Label {
		case textproc.LabelPerson:
			buckets[analysis.BucketPersons] = append(buckets[analysis.BucketPersons], span.Text)
		case textproc.LabelOrg:
			buckets[analysis.BucketOrganizations] = append(buckets[analysis.BucketOrganizations], span.Text)
		case textproc.LabelDate:
			buckets[analysis.BucketDates] = append(buckets[analysis.BucketDates], span.Text)
		case textproc.LabelMoney:
			buckets[analysis.BucketMonetary] = append(buckets[analysis.BucketMonetary], span.Text)
		}
		// Other labels are dropped; LEGAL_TERMS stays empty here.
	}
}

func (a *Analyzer) extractFallback(text string, buckets analysis.EntityBuckets) {
	buckets[analysis.BucketDates] = fallbackDatePattern.FindAllString(text, -1)
	buckets[analysis.BucketMonetary] = fallbackMoneyPattern.FindAllString(text, -1)

	lower := strings.ToLower(text)
	for _, term := range analysis.LegalTerms {
		if strings.Contains(lower, term) {
			buckets[analysis.BucketLegalTerms] = append(buckets[analysis.BucketLegalTerms], term)
		}
	}
}

// dedupeAndCap keeps the first occurrence of each value, up to the
// bucket limit.
func dedupeAndCap(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == MaxPerBucket {
			break
		}
	}
	return out
}
