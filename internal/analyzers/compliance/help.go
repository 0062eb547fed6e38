// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compliance

import "lexiscan/internal/help"

// GetAnalysisInfo returns standardized information about the compliance analysis
func (a *Analyzer) GetAnalysisInfo() help.AnalysisInfo {
	return help.AnalysisInfo{
		Name:             "COMPLIANCE",
		ShortDescription: "Checks for required clauses every legal document should carry",
		DetailedDescription: `The Compliance analysis runs five boolean presence checks against the document text, each looking for the keywords of one required clause group.

The checks run unconditionally and in a fixed order: governing law, termination, confidentiality, liability, signature. A check that finds none of its keywords appends a fixed issue message. An empty issue list means the document passed all five checks.

These are triage heuristics over keywords, not a legal review.`,

		Vocabulary: []string{
			`"governing law" or "jurisdiction"`,
			`"termination"`,
			`"confidential" or "proprietary"`,
			`"liability"`,
			`"signature" or "signed"`,
		},

		FallbackBehavior: `Identical in both engine modes; the checks use substring containment over the lowercased text and never consult the lexicon engine.`,

		Examples: []string{
			"lexiscan --file contract.pdf --analyses COMPLIANCE",
			"lexiscan --file nda.txt --analyses COMPLIANCE --format yaml",
		},
	}
}
