// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for the
//              scenelang toolkit with support for TOML and YAML formats,
//              automatic file discovery, environment variable injection,
//              validation, and hot-reloading.
// Version: v0.1.1
// Created: 2025-11-11
// Modified: 2025-11-17
//
// Change History:
// - 2025-11-11 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-11-17 v0.1.1: fsnotify-based hot-reloading

/*
Package config provides configuration management for the scenelang toolkit.

Package: config
Title: Core Configuration Management
Description: Provides configuration management capabilities for the scenelang
             parser and command-line tools with support for TOML and YAML
             formats, environment variable injection, hot-reloading, and
             type-safe access patterns.
Version: v0.1.1
Created: 2025-11-11
Modified: 2025-11-17

Change History:
- 2025-11-11 v0.1.0: Initial implementation with TOML/YAML support
- 2025-11-17 v0.1.1: fsnotify-based hot-reloading

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable injection and override capabilities
  • Configuration validation with structured rules
  • Hot-reloading via fsnotify with change notification callbacks
  • Thread-safe concurrent access patterns
  • Performance-optimized with path and environment caching
  • Structured error codes shared with the rest of the toolkit
  • Automatic file discovery for flag-less tool startup

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := slconfig.Load("scenelang.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	maxDepth := cfg.GetInt("includes.max_depth", 16)
	searchPaths := cfg.GetStringSlice("includes.search_paths")
	logLevel := cfg.GetString("log.level", "info")
	keepComments := cfg.GetBool("parser.keep_comments", true)

# Advanced Configuration Options

Load with custom options and defaults:

	cfg, err := slconfig.LoadWithOptions("scenelang.toml", slconfig.LoadOptions{
		Format:    slconfig.FormatAuto,
		EnvPrefix: "SCENELANG",
		Defaults: map[string]interface{}{
			"includes.max_depth":     16,
			"parser.max_input_bytes": 16 * 1024 * 1024,
			"log.level":              "info",
		},
		Watch: true, // Enable hot-reloading
	})

# Environment Variable Integration

Configuration values are automatically overridden by environment variables
following a consistent naming convention:

	# scenelang.toml
	[includes]
	max_depth = 16
	search_paths = ["scenes", "shared"]

	[log]
	level = "info"

	# Environment variables (with optional prefix)
	export SCENELANG_INCLUDES_MAX_DEPTH="8"
	export SCENELANG_INCLUDES_SEARCH_PATHS="scenes,shared,assets"
	export SCENELANG_LOG_LEVEL="debug"

	cfg, _ := slconfig.LoadWithOptions("scenelang.toml", slconfig.LoadOptions{
		EnvPrefix: "SCENELANG",
	})

	// Environment variables take precedence
	depth := cfg.GetInt("includes.max_depth")          // Returns 8
	paths := cfg.GetStringSlice("includes.search_paths") // Returns [scenes shared assets]

# Configuration Validation

Validate configuration structure and constraints:

	rules := slconfig.ValidationRules{
		"includes.max_depth": {
			Required: true,
			Type:     "int",
			Min:      1,
			Max:      64,
		},
		"log.level": {
			Type:    "string",
			Pattern: `^(trace|debug|info|warn|error)$`,
			Default: "info",
		},
		"includes.search_paths": {
			Type: "[]string",
		},
	}

	result := cfg.Validate(rules)
	if !result.Valid {
		for _, msg := range result.Errors {
			log.Warn(msg)
		}
	}

# Struct Binding

Bind configuration sections to typed structs:

	type IncludeSettings struct {
		MaxDepth    int      `config:"max_depth"`
		SearchPaths []string `config:"search_paths"`
	}

	var settings IncludeSettings
	if err := cfg.BindToStruct("includes", &settings); err != nil {
		return err
	}

# Automatic Discovery

Tools locate their configuration without an explicit flag:

	cfg, err := slconfig.Discover(slconfig.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}

The default search covers ., ./config, /etc/scenelang and
/usr/local/etc/scenelang for scenelang.{toml,yaml,yml} and the hidden
.scenelang variants. When no file exists and discovery is not marked
required, an empty configuration backed by SCENELANG_* environment
variables is returned.

# Hot-Reloading

Watch the configuration file for changes:

	cfg, err := slconfig.LoadWithWatch("scenelang.toml")
	if err != nil {
		return err
	}
	defer cfg.StopWatching()

	cfg.OnChange(func(oldCfg, newCfg *slconfig.Config) {
		log.Info("configuration reloaded")
	})

Change handlers run on their own goroutines and receive deep copies, so
they may inspect both configurations without additional locking.

# Thread Safety

All Config methods are safe for concurrent use. Reads share an RWMutex
while environment and key-path lookups go through dedicated caches with
their own locks, keeping hot read paths contention-free.
*/
package config
