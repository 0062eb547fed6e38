// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// AnalysisInfo contains standardized information about an analysis
type AnalysisInfo struct {
	Name                string   // Name of the analysis (e.g., "RISK_TERMS")
	ShortDescription    string   // Short description for the analyses list
	DetailedDescription string   // Detailed description of what the analysis does
	Vocabulary          []string // Terms or patterns the analysis looks for
	FallbackBehavior    string   // How the analysis behaves in basic (fallback) mode
	ConfigurationInfo   string   // Information about how to configure the analysis
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetAnalysisInfo() AnalysisInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetAnalysisInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("LexiScan - Legal Document Analysis Tool")
	fmt.Println("=======================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  lexiscan --file <path-to-document> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the input document to analyze, PDF or plain text (required)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, yaml (default: text)")
	fmt.Fprintln(w, "  --analyses\t<analyses>\tSpecific analyses to run: SUMMARY,KEY_CLAUSES,RISK_TERMS,ENTITIES,COMPLIANCE,all (default: all)")
	fmt.Fprintln(w, "  --summary-sentences\t<n>\tNumber of sentences in the summary (default: 5)")
	fmt.Fprintln(w, "  --lexicon-dir\t<path>\tDirectory with replacement lexicon files (stopwords.txt, given_names.txt, org_suffixes.txt)")
	fmt.Fprintln(w, "  --fallback\t\tForce basic text processing instead of the lexicon engine")
	fmt.Fprintln(w, "  --verbose\t\tDisplay document statistics alongside the analysis report")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging to show extraction, segmentation, and analysis flow")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help analyses\t\tList all available analyses")
	fmt.Fprintln(w, "  --help <analysis>\t\tShow detailed help for a specific analysis")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    lexiscan --file contract.pdf")
	h.colors["example"].Println("    lexiscan --file nda.txt --analyses RISK_TERMS,COMPLIANCE --verbose")
	fmt.Println("  Configuration and Profiles:")
	h.colors["example"].Println("    lexiscan --file contract.pdf --config lexiscan.yaml --profile review")
	h.colors["example"].Println("    lexiscan --list-profiles --config lexiscan.yaml")
	fmt.Println("  Output Formats:")
	h.colors["example"].Println("    lexiscan --file contract.pdf --format json --output report.json")
	h.colors["example"].Println("    lexiscan --file contract.pdf --format yaml")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.lexiscan/config.yaml")
	fmt.Println("  Project config: lexiscan.yaml or .lexiscan.yaml (in current directory)")
	fmt.Println("  Environment: LEXISCAN_CONFIG_DIR - Override config directory")
}

// ShowAnalysesHelp displays information about all available analyses
func (h *System) ShowAnalysesHelp() {
	h.colors["title"].Println("Available Analyses in LexiScan")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("The following analyses are available for legal documents:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  ANALYSIS\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  --------\t-----------")

	// Get all analysis names and sort them alphabetically
	var analysisNames []string
	for _, provider := range h.providers {
		info := provider.GetAnalysisInfo()
		analysisNames = append(analysisNames, info.Name)
	}

	// Sort alphabetically
	for i := 0; i < len(analysisNames); i++ {
		for j := i + 1; j < len(analysisNames); j++ {
			if analysisNames[i] > analysisNames[j] {
				analysisNames[i], analysisNames[j] = analysisNames[j], analysisNames[i]
			}
		}
	}

	// Display in alphabetical order
	for _, analysisName := range analysisNames {
		for _, provider := range h.providers {
			info := provider.GetAnalysisInfo()
			if info.Name == analysisName {
				fmt.Fprintf(w, "  ")
				h.colors["emphasis"].Fprintf(w, "%s", info.Name)
				fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
				break
			}
		}
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific analysis, use:")
	h.colors["example"].Println("  lexiscan --help <analysis>")
	fmt.Println()

	// Get the first available analysis name for the example
	var exampleAnalysis string
	if len(h.providers) > 0 {
		for _, provider := range h.providers {
			info := provider.GetAnalysisInfo()
			exampleAnalysis = info.Name
			break
		}
	} else {
		exampleAnalysis = "<analysis>"
	}

	fmt.Println("Example:")
	h.colors["example"].Printf("  lexiscan --help %s\n", exampleAnalysis)
}

// ShowAnalysisHelp displays detailed help for a specific analysis
func (h *System) ShowAnalysisHelp(analysisName string) bool {
	provider, exists := h.providers[strings.ToLower(analysisName)]
	if !exists {
		h.colors["negative"].Printf("Error: Analysis '%s' not found.\n", analysisName)
		fmt.Println("Use 'lexiscan --help analyses' to see a list of available analyses.")
		return false
	}

	info := provider.GetAnalysisInfo()

	h.colors["title"].Printf("%s Analysis\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+9))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	// Display vocabulary
	if len(info.Vocabulary) > 0 {
		h.colors["header"].Println("TERMS AND PATTERNS:")
		for _, term := range info.Vocabulary {
			fmt.Print("  - ")
			h.colors["item"].Println(term)
		}
		fmt.Println()
	}

	// Display fallback behavior
	if info.FallbackBehavior != "" {
		h.colors["header"].Println("BASIC MODE BEHAVIOR:")
		fmt.Println(info.FallbackBehavior)
		fmt.Println()
	}

	// Display configuration information if available
	if info.ConfigurationInfo != "" {
		h.colors["header"].Println("CONFIGURATION:")
		fmt.Println(info.ConfigurationInfo)
		fmt.Println()
	}

	// Display examples
	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}
