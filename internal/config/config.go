// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	MappingsFile     string `json:"mappings_file,omitempty"`     // Path to the placeholder mapping store
	TemplatesDir     string `json:"templates_dir,omitempty"`     // Directory holding .docx templates
	ProfileOverrides string `json:"profile_overrides,omitempty"` // Optional YAML file with extra module profiles

	// Behavior
	MinScore float64 `json:"min_score,omitempty"` // Compatibility threshold for ranking (0-100)
	Verbose  bool    `json:"verbose,omitempty"`   // Print detailed debug information
}

// DefaultMappingsFile is used when neither flag, config file nor environment
// names a store location.
const DefaultMappingsFile = "template_mappings.json"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from TEMPLATE_MAPPER_* environment variables.
// Unset variables leave their fields zero; a malformed TEMPLATE_MAPPER_MIN_SCORE
// is an error rather than a silent default.
func FromEnv() (Config, error) {
	cfg := Config{
		MappingsFile:     os.Getenv("TEMPLATE_MAPPER_MAPPINGS_FILE"),
		TemplatesDir:     os.Getenv("TEMPLATE_MAPPER_TEMPLATES_DIR"),
		ProfileOverrides: os.Getenv("TEMPLATE_MAPPER_PROFILES"),
	}

	if raw := os.Getenv("TEMPLATE_MAPPER_MIN_SCORE"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse TEMPLATE_MAPPER_MIN_SCORE %q: %w", raw, err)
		}
		cfg.MinScore = score
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}

	if c.TemplatesDir != "" {
		info, err := os.Stat(c.TemplatesDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: templates directory not found: %s", c.TemplatesDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: templates path is not a directory: %s", c.TemplatesDir)
		}
	}

	if c.ProfileOverrides != "" {
		if _, err := os.Stat(c.ProfileOverrides); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile overrides file not found: %s", c.ProfileOverrides)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file and environment values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.MappingsFile == "" {
		result.MappingsFile = defaults.MappingsFile
	}
	if result.MappingsFile == "" {
		result.MappingsFile = DefaultMappingsFile
	}
	if result.TemplatesDir == "" {
		result.TemplatesDir = defaults.TemplatesDir
	}
	if result.ProfileOverrides == "" {
		result.ProfileOverrides = defaults.ProfileOverrides
	}

	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
