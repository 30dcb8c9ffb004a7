// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first configuration file
//              matching the known base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: Optional discovery falls back to defaults and env

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	strerr "github.com/msto63/strkit/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	Required   bool
}

// DefaultDiscoveryOptions returns the search options of the strkit CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "strkit"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"strkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "STRKIT",
	}
}

// Discover finds and loads the first matching configuration file. When no
// file exists and the file is not required, a configuration holding only the
// defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if loadErr != nil {
			return nil, strerr.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return cfg, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, strerr.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(strerr.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	cfg := New(options.EnvPrefix)
	if options.Defaults != nil {
		cfg.data = mergeDefaults(cfg.data, options.Defaults)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", strerr.New("configuration file not found").
		WithCode(strerr.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}
