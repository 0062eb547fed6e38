// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entities

import "lexiscan/internal/help"

// GetAnalysisInfo returns standardized information about the entity analysis
func (a *Analyzer) GetAnalysisInfo() help.AnalysisInfo {
	return help.AnalysisInfo{
		Name:             "ENTITIES",
		ShortDescription: "Extracts persons, organizations, dates, monetary amounts, and legal terms",
		DetailedDescription: `The Entities analysis routes detected spans into five buckets: PERSONS, ORGANIZATIONS, DATES, MONETARY, and LEGAL_TERMS.

With the lexicon engine, persons are found via honorifics and a given-name list, organizations via corporate-suffix runs, and dates and amounts via patterns. The LEGAL_TERMS bucket is not populated in this mode.

Each bucket is deduplicated, keeping the first occurrence, and capped at 10 entries.`,

		Vocabulary: []string{
			"Dates: 01/02/2020, 1-2-20, bare four-digit years",
			"Monetary: $500.00, $1,250, 500 dollars, 99 cents, 10 USD",
			"Legal terms: contract, agreement, liability, indemnity, warranty, termination, jurisdiction, governing law",
		},

		FallbackBehavior: `The basic engine has no person or organization detection, leaving those buckets empty. It fills DATES and MONETARY from the patterns above and LEGAL_TERMS by substring containment against the legal vocabulary.`,

		ConfigurationInfo: `Pass --lexicon-dir to replace the built-in name and suffix lists with your own word files.`,

		Examples: []string{
			"lexiscan --file contract.pdf --analyses ENTITIES",
			"lexiscan --file contract.pdf --analyses ENTITIES --lexicon-dir ./lexicons",
		},
	}
}
