// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clauses

import "lexiscan/internal/help"

// GetAnalysisInfo returns standardized information about the key-clause analysis
func (a *Analyzer) GetAnalysisInfo() help.AnalysisInfo {
	return help.AnalysisInfo{
		Name:             "KEY_CLAUSES",
		ShortDescription: "Selects up to 10 substantive sentences as key clauses",
		DetailedDescription: `The Key Clauses analysis surfaces the first 10 sentences of the document that are long enough to carry substantive content.

A sentence qualifies when its length exceeds 10 characters. Clauses are returned in document order and truncated at 10; they are not ranked or scored. The report also shows a frequency count per distinct clause so repeated boilerplate stands out.`,

		FallbackBehavior: `The basic splitter segments on '.', '!' and '?' runs and measures the length threshold after trimming whitespace, while the lexicon engine measures the raw sentence span. Border-length sentences can therefore qualify under one engine and not the other.`,

		Examples: []string{
			"lexiscan --file contract.pdf --analyses KEY_CLAUSES",
			"lexiscan --file contract.pdf --analyses KEY_CLAUSES --format json",
		},
	}
}
