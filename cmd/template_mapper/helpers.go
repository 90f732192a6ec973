package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/khairulnizam/template-mapper/internal/config"
	"github.com/khairulnizam/template-mapper/internal/profiles"
	"github.com/khairulnizam/template-mapper/internal/store"
)

// resolveConfig merges the optional JSON config file with TEMPLATE_MAPPER_*
// environment defaults and validates the result. Flags still win: callers
// apply their own flag values on top of what comes back.
func resolveConfig(configPath string) (config.Config, error) {
	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	merged := cfg.MergeWithDefaults(envCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openStore loads the mapping store, downgrading a corrupt file to a warning:
// the store API guarantees an empty usable store in that case and read
// commands should keep working.
func openStore(path string) *store.Store {
	st := store.NewStore(path)
	if err := st.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return st
}

// loadRegistry returns the built-in module profiles, extended by the
// overrides file when one is configured.
func loadRegistry(overridesPath string) (*profiles.Registry, error) {
	registry := profiles.Default()
	if overridesPath != "" {
		if err := registry.LoadOverrides(overridesPath); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// marshalIndent renders v as indented JSON for file output.
func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// moduleNotFound builds the error for an unknown module name, listing what is
// available so the operator does not have to guess.
func moduleNotFound(name string, available []string) error {
	return fmt.Errorf("unknown module %q (available: %s)", name, strings.Join(available, ", "))
}
