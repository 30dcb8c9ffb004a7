// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads strkit configuration from TOML and YAML
//              files with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Reduced to loading, discovery and typed access

/*
Package config provides configuration management for strkit programs.

# Loading

	cfg, err := config.Load("strkit.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.GetString("log.level", "warn")
	length := cfg.GetInt("random.length", 16)

Keys use dot notation; nested TOML tables and YAML mappings are walked one
segment at a time.

# Discovery

Discover searches a list of directories for strkit.toml, strkit.yaml or
strkit.yml and, unless Required is set, falls back to the defaults when none
exists:

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{"."},
		Filenames: []string{"strkit"},
		EnvPrefix: "STRKIT",
		Defaults:  map[string]interface{}{"log": map[string]interface{}{"level": "warn"}},
	})

# Environment overrides

With the prefix STRKIT, the key log.level is overridden by STRKIT_LOG_LEVEL.
Overrides apply to GetString, GetInt, GetBool and GetStringSlice (comma
separated) but not to Has or GetAll, which only see loaded data.

# Errors

	blank path       VALIDATION_FAILED
	missing file     NOT_FOUND
	unreadable file  CONFIG_ERROR
	parse failure    INVALID_CONFIG
*/
package config
