// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import "lexiscan/internal/help"

// GetAnalysisInfo returns standardized information about the risk-term analysis
func (a *Analyzer) GetAnalysisInfo() help.AnalysisInfo {
	return help.AnalysisInfo{
		Name:             "RISK_TERMS",
		ShortDescription: "Flags occurrences of a fixed risk-term vocabulary",
		DetailedDescription: `The Risk Terms analysis scans the document for a fixed vocabulary of risk-related words and reports which ones appear.

Matching is case-insensitive and the result is a deduplicated, sorted list of the terms found. The analysis reports presence only; it does not count occurrences or locate them.`,

		Vocabulary: []string{
			"fraud", "penalty", "violation", "risk", "lawsuit",
			"breach", "noncompliance", "litigation", "regulatory", "fine",
		},

		FallbackBehavior: `The lexicon engine requires an exact word match, so "risky" does not trigger "risk". The basic engine uses substring containment and matches terms embedded in longer words.`,

		ConfigurationInfo: `The vocabulary can be replaced per profile with the 'risk_terms' option list in the configuration file.`,

		Examples: []string{
			"lexiscan --file contract.pdf --analyses RISK_TERMS",
			"lexiscan --file contract.pdf --analyses RISK_TERMS,COMPLIANCE",
		},
	}
}
