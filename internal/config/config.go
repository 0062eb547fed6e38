// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string `yaml:"format"`
		Analyses         string `yaml:"analyses"`
		SummarySentences int    `yaml:"summary_sentences"`
		LexiconDir       string `yaml:"lexicon_dir"`
		Fallback         bool   `yaml:"fallback"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Per-analysis option maps, e.g. analyses.risk_terms.terms
	Analyses map[string]map[string]interface{} `yaml:"analyses"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an analysis profile with specific settings
type Profile struct {
	Format           string                            `yaml:"format"`
	Analyses         string                            `yaml:"analyses"`
	SummarySentences int                               `yaml:"summary_sentences"`
	LexiconDir       string                            `yaml:"lexicon_dir"`
	Fallback         bool                              `yaml:"fallback"`
	Verbose          bool                              `yaml:"verbose"`
	Debug            bool                              `yaml:"debug"`
	NoColor          bool                              `yaml:"no_color"`
	Description      string                            `yaml:"description"`
	AnalysisOptions  map[string]map[string]interface{} `yaml:"analysis_options"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
		Analyses: make(map[string]map[string]interface{}),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Analyses = "all"
	config.Defaults.SummarySentences = 5

	// Default profile for quick risk triage
	config.Profiles["triage"] = Profile{
		Format:      "text",
		Analyses:    "RISK_TERMS,COMPLIANCE",
		NoColor:     true,
		Description: "Fast risk and compliance pass with concise output",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to
// defaults when the path is empty and no file is found in the
// standard locations.
func LoadConfigOrDefault(configFile string) *Config {
	if configFile == "" {
		configFile = FindConfigFile()
	}
	config, err := LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		config, _ = LoadConfig("")
	}
	return config
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	for _, name := range []string{"lexiscan.yaml", "lexiscan.yml", ".lexiscan.yaml", ".lexiscan.yml"} {
		if fileExists(name) {
			return name
		}
	}

	// Environment override for the config directory
	if configDir := os.Getenv("LEXISCAN_CONFIG_DIR"); configDir != "" {
		configFile := filepath.Join(configDir, "config.yaml")
		if fileExists(configFile) {
			return configFile
		}
	}

	// User-level config directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range []string{"config.yaml", "config.yml"} {
			configFile := filepath.Join(home, ".lexiscan", name)
			if fileExists(configFile) {
				return configFile
			}
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the names of all available profiles
func (c *Config) ListProfiles() []string {
	var profiles []string
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a specific profile by name
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// RiskTerms returns the configured risk vocabulary override, if any.
// The profile's analysis options win over the global ones.
func (c *Config) RiskTerms(profile *Profile) []string {
	if profile != nil {
		if terms := riskTermsFrom(profile.AnalysisOptions); terms != nil {
			return terms
		}
	}
	return riskTermsFrom(c.Analyses)
}

func riskTermsFrom(options map[string]map[string]interface{}) []string {
	opts, ok := options["risk_terms"]
	if !ok {
		return nil
	}
	raw, ok := opts["terms"].([]interface{})
	if !ok {
		return nil
	}
	var terms []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			terms = append(terms, s)
		}
	}
	return terms
}

// ValidateConfig performs validation on the loaded configuration
func ValidateConfig(config *Config) error {
	validFormats := map[string]bool{"": true, "text": true, "json": true, "yaml": true}
	if !validFormats[config.Defaults.Format] {
		return fmt.Errorf("invalid default format '%s'", config.Defaults.Format)
	}
	for name, profile := range config.Profiles {
		if !validFormats[profile.Format] {
			return fmt.Errorf("invalid format '%s' in profile '%s'", profile.Format, name)
		}
	}
	if config.Defaults.SummarySentences < 0 {
		return fmt.Errorf("summary_sentences must not be negative")
	}
	return nil
}
