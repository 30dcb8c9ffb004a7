// File: config.go
// Title: CLI Configuration
// Description: Defaults and loading of the strkit configuration. An explicit
//              --config file must exist; otherwise ./strkit.toml (or .yaml)
//              and the user config directory are searched. STRKIT_* variables
//              override file values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"github.com/msto63/strkit/foundation/core/config"
)

const envPrefix = "STRKIT"

func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "console",
		},
		"case": map[string]interface{}{
			"separator": "_",
		},
		"random": map[string]interface{}{
			"length": 16,
		},
		"markdown": map[string]interface{}{
			"trim_headings": true,
		},
		"output": map[string]interface{}{
			"color": true,
		},
	}
}

func loadConfig(cfgFile string) (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults(),
		})
	}

	options := config.DefaultDiscoveryOptions()
	options.EnvPrefix = envPrefix
	options.Defaults = configDefaults()
	return config.Discover(options)
}
