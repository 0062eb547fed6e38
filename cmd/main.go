// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"lexiscan/internal/config"
	"lexiscan/internal/core"
	"lexiscan/internal/extract"
	"lexiscan/internal/formatters"
	"lexiscan/internal/help"
	"lexiscan/internal/observability"
	"lexiscan/internal/textproc"
	"lexiscan/internal/version"

	// Register output formatters
	_ "lexiscan/internal/formatters/json"
	_ "lexiscan/internal/formatters/text"
	_ "lexiscan/internal/formatters/yaml"
)

// finalConfiguration holds the resolved settings after merging config
// file, profile, and command line flags
type finalConfiguration struct {
	format           string
	analyses         string
	summarySentences int
	lexiconDir       string
	fallback         bool
	verbose          bool
	debug            bool
	noColor          bool
}

func main() {
	filePath := flag.String("file", "", "Path to the document to analyze (PDF or plain text)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	analysesToRun := flag.String("analyses", "", "Specific analyses to run: SUMMARY,KEY_CLAUSES,RISK_TERMS,ENTITIES,COMPLIANCE, or 'all'")
	summarySentences := flag.Int("summary-sentences", 0, "Number of sentences in the summary (default: 5)")
	lexiconDir := flag.String("lexicon-dir", "", "Directory with replacement lexicon files")
	forceFallback := flag.Bool("fallback", false, "Force basic text processing instead of the lexicon engine")
	verbose := flag.Bool("verbose", false, "Display document statistics alongside the report")
	debug := flag.Bool("debug", false, "Enable debug logging")
	outputFile := flag.String("output", "", "Path to output file (default: stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Load configuration and resolve the active profile
	cfg := config.LoadConfigOrDefault(*configFile)

	if *listProfiles {
		printProfiles(cfg)
		os.Exit(0)
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: Profile '%s' not found in config\n", *profileName)
			fmt.Fprintf(os.Stderr, "Available profiles: %s\n", strings.Join(cfg.ListProfiles(), ", "))
			os.Exit(1)
		}
	}

	flags := &finalConfiguration{
		format:           *outputFormat,
		analyses:         *analysesToRun,
		summarySentences: *summarySentences,
		lexiconDir:       *lexiconDir,
		fallback:         *forceFallback,
		verbose:          *verbose,
		debug:            *debug,
		noColor:          *noColor,
	}
	finalConfig := resolveConfiguration(cfg, activeProfile, flags)

	// Disable colors when not writing to a terminal
	if finalConfig.noColor || *outputFile != "" || !isTerminal(os.Stdout) {
		color.NoColor = true
		finalConfig.noColor = true
	}

	// Build the text engine before help so analyzer help pages exist
	var providerOpts []textproc.ProviderOption
	if finalConfig.lexiconDir != "" {
		providerOpts = append(providerOpts, textproc.WithLexiconDir(finalConfig.lexiconDir))
	}
	if finalConfig.fallback {
		providerOpts = append(providerOpts, textproc.WithForcedFallback())
	}
	provider := textproc.NewProvider(providerOpts...)
	orchestrator := core.NewOrchestrator(provider)

	// Handle help commands
	if *showHelp {
		helpSystem := help.NewSystem(finalConfig.noColor)
		for _, p := range orchestrator.HelpProviders() {
			helpSystem.RegisterProvider(p)
		}

		args := flag.Args()
		switch {
		case len(args) == 0:
			helpSystem.ShowGeneralHelp()
		case len(args) == 1 && strings.EqualFold(args[0], "analyses"):
			helpSystem.ShowAnalysesHelp()
		case len(args) == 1:
			if !helpSystem.ShowAnalysisHelp(args[0]) {
				os.Exit(1)
			}
		default:
			fmt.Println("Error: Too many arguments for help command")
			fmt.Println("Use 'lexiscan --help', 'lexiscan --help analyses', or 'lexiscan --help <analysis>'")
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "Use 'lexiscan --help' for usage information")
		os.Exit(1)
	}

	// Set up observability
	level := observability.ObservabilityOff
	if finalConfig.debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)
	if finalConfig.debug {
		observer.DebugObserver = observability.NewDebugObserver(os.Stderr)
	}
	orchestrator.SetObserver(observer)

	enabledAnalyses, err := core.ParseAnalysesToRun(finalConfig.analyses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Extract the document text; extraction failure is fatal
	extractor := extract.NewExtractor()
	extractor.SetObserver(observer)
	text, err := extractor.Extract(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if notice := provider.Notice(); notice != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", notice)
	}

	report := orchestrator.AnalyzeText(text, *filePath, core.AnalysisConfig{
		Analyses:         enabledAnalyses,
		SummarySentences: finalConfig.summarySentences,
		RiskTerms:        cfg.RiskTerms(activeProfile),
	})

	output, err := formatters.Export(finalConfig.format, report, formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", *outputFile)
	} else {
		fmt.Print(output)
	}
}

// resolveConfiguration resolves final configuration values from config
// file, profile, and command line flags
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *finalConfiguration) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.format != "" {
		final.format = flags.format
	}

	// Analyses to run
	final.analyses = "all" // default fallback
	if cfg != nil && cfg.Defaults.Analyses != "" {
		final.analyses = cfg.Defaults.Analyses
	}
	if activeProfile != nil && activeProfile.Analyses != "" {
		final.analyses = activeProfile.Analyses
	}
	if isFlagSet("analyses") && flags.analyses != "" {
		final.analyses = flags.analyses
	}

	// Summary sentence count
	final.summarySentences = 5 // default fallback
	if cfg != nil && cfg.Defaults.SummarySentences > 0 {
		final.summarySentences = cfg.Defaults.SummarySentences
	}
	if activeProfile != nil && activeProfile.SummarySentences > 0 {
		final.summarySentences = activeProfile.SummarySentences
	}
	if isFlagSet("summary-sentences") && flags.summarySentences > 0 {
		final.summarySentences = flags.summarySentences
	}

	// Lexicon directory
	if cfg != nil && cfg.Defaults.LexiconDir != "" {
		final.lexiconDir = cfg.Defaults.LexiconDir
	}
	if activeProfile != nil && activeProfile.LexiconDir != "" {
		final.lexiconDir = activeProfile.LexiconDir
	}
	if isFlagSet("lexicon-dir") && flags.lexiconDir != "" {
		final.lexiconDir = flags.lexiconDir
	}

	// Forced fallback
	if cfg != nil {
		final.fallback = cfg.Defaults.Fallback
	}
	if activeProfile != nil {
		final.fallback = activeProfile.Fallback
	}
	if isFlagSet("fallback") {
		final.fallback = flags.fallback
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	return final
}

// isFlagSet checks whether a flag was explicitly provided on the
// command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// printProfiles lists the profiles available in the active config
func printProfiles(cfg *config.Config) {
	profiles := cfg.ListProfiles()
	if len(profiles) == 0 {
		fmt.Println("No profiles defined.")
		return
	}
	fmt.Println("Available profiles:")
	for _, name := range profiles {
		profile := cfg.GetProfile(name)
		if profile != nil && profile.Description != "" {
			fmt.Printf("  %s - %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
