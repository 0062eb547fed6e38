// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package summary

import "lexiscan/internal/help"

// GetAnalysisInfo returns standardized information about the summary analysis
func (a *Analyzer) GetAnalysisInfo() help.AnalysisInfo {
	return help.AnalysisInfo{
		Name:             "SUMMARY",
		ShortDescription: "Extracts the most representative sentences of the document",
		DetailedDescription: `The Summary analysis produces an extractive summary: it selects whole sentences from the document rather than generating new text.

Each sentence is scored by the document-wide frequency of its alphabetic, non-stopword words. The highest-scoring sentences are selected with a partial top-K pass, so frequent-topic sentences surface first. Output order follows selection order, not document order.

The number of sentences defaults to 5 and can be changed per run or per profile.`,

		FallbackBehavior: `Without the lexicon engine the analysis takes the first N sentences in document order (after the basic splitter's minimum-length filter) and joins them with ". ". No frequency scoring is applied.`,

		ConfigurationInfo: `Set 'summary_sentences' in the configuration file or pass --summary-sentences on the command line to change the number of sentences kept.`,

		Examples: []string{
			"lexiscan --file contract.pdf --analyses SUMMARY",
			"lexiscan --file contract.pdf --analyses SUMMARY --summary-sentences 3",
		},
	}
}
