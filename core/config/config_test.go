// File: config_test.go
// Title: Configuration Module Tests
// Description: Comprehensive tests for the config module covering TOML/YAML
//              parsing, environment variable injection, validation, discovery,
//              and all core configuration management functionality.
// Version: v0.1.1
// Created: 2025-11-11
// Modified: 2025-11-17
//
// Change History:
// - 2025-11-11 v0.1.0: Initial test implementation
// - 2025-11-17 v0.1.1: Watch lifecycle tests for fsnotify switch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	slerror "github.com/candela-render/scenelang/core/error"
)

func TestLoad(t *testing.T) {
	// Create temporary directory for test files
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.toml")
		configContent := `
[includes]
max_depth = 8
search_paths = ["scenes", "shared", "assets"]

[parser]
keep_comments = true
timeout = "30s"

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// Test string values
		if level := cfg.GetString("log.level"); level != "debug" {
			t.Errorf("Expected level 'debug', got '%s'", level)
		}

		// Test integer values
		if depth := cfg.GetInt("includes.max_depth"); depth != 8 {
			t.Errorf("Expected max_depth 8, got %d", depth)
		}

		// Test boolean values
		if keep := cfg.GetBool("parser.keep_comments"); !keep {
			t.Errorf("Expected keep_comments true, got %v", keep)
		}

		// Test duration values
		if timeout := cfg.GetDuration("parser.timeout"); timeout != 30*time.Second {
			t.Errorf("Expected timeout 30s, got %v", timeout)
		}

		// Test string slice values
		paths := cfg.GetStringSlice("includes.search_paths")
		expectedPaths := []string{"scenes", "shared", "assets"}
		if len(paths) != len(expectedPaths) {
			t.Errorf("Expected %d search paths, got %d", len(expectedPaths), len(paths))
		}
		for i, path := range paths {
			if path != expectedPaths[i] {
				t.Errorf("Expected path '%s', got '%s'", expectedPaths[i], path)
			}
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.yaml")
		configContent := `
includes:
  max_depth: 8
  search_paths:
    - scenes
    - shared
    - assets

log:
  level: debug
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// Test values same as TOML test
		if level := cfg.GetString("log.level"); level != "debug" {
			t.Errorf("Expected level 'debug', got '%s'", level)
		}

		if depth := cfg.GetInt("includes.max_depth"); depth != 8 {
			t.Errorf("Expected max_depth 8, got %d", depth)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load("nonexistent.toml")
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
		if !slerror.HasCode(err, slerror.CodeMissingConfig) {
			t.Errorf("Expected code %s, got %s", slerror.CodeMissingConfig, slerror.GetCode(err))
		}
	})

	t.Run("malformed TOML", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.toml")
		if err := os.WriteFile(configPath, []byte("[includes\nmax_depth = "), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		_, err := Load(configPath)
		if err == nil {
			t.Fatal("Expected error for malformed TOML")
		}
		if !slerror.HasCode(err, slerror.CodeInvalidConfig) {
			t.Errorf("Expected code %s, got %s", slerror.CodeInvalidConfig, slerror.GetCode(err))
		}
	})
}

func TestEnvironmentVariables(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `
[includes]
max_depth = 16
search_paths = ["scenes"]
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Set environment variables
	os.Setenv("SCENELANG_INCLUDES_MAX_DEPTH", "4")
	os.Setenv("SCENELANG_INCLUDES_SEARCH_PATHS", "scenes, shared ,assets")
	defer func() {
		os.Unsetenv("SCENELANG_INCLUDES_MAX_DEPTH")
		os.Unsetenv("SCENELANG_INCLUDES_SEARCH_PATHS")
	}()

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		EnvPrefix: "SCENELANG",
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Environment variables should override config values
	if depth := cfg.GetInt("includes.max_depth"); depth != 4 {
		t.Errorf("Expected max_depth 4 from env var, got %d", depth)
	}

	// Comma-separated env values override string slices
	paths := cfg.GetStringSlice("includes.search_paths")
	expected := []string{"scenes", "shared", "assets"}
	if len(paths) != len(expected) {
		t.Fatalf("Expected %d search paths from env var, got %d: %v", len(expected), len(paths), paths)
	}
	for i, path := range paths {
		if path != expected[i] {
			t.Errorf("Expected path '%s', got '%s'", expected[i], path)
		}
	}
}

func TestDefaults(t *testing.T) {
	t.Run("getter defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.toml")
		configContent := `
[log]
level = "info"
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// Test default values for missing keys
		if depth := cfg.GetInt("includes.max_depth", 16); depth != 16 {
			t.Errorf("Expected default max_depth 16, got %d", depth)
		}

		if keep := cfg.GetBool("parser.keep_comments", true); !keep {
			t.Errorf("Expected default keep_comments true, got %v", keep)
		}

		if timeout := cfg.GetDuration("parser.timeout", 30*time.Second); timeout != 30*time.Second {
			t.Errorf("Expected default timeout 30s, got %v", timeout)
		}
	})

	t.Run("load options defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.toml")
		configContent := `
[log]
level = "warn"
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadWithOptions(configPath, LoadOptions{
			Defaults: map[string]interface{}{
				"output": map[string]interface{}{
					"color": true,
				},
			},
		})
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if !cfg.GetBool("output.color") {
			t.Error("Expected merged default output.color true")
		}

		// File values win over defaults
		if level := cfg.GetString("log.level"); level != "warn" {
			t.Errorf("Expected level 'warn' from file, got '%s'", level)
		}
	})
}

func TestHasAndSet(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `
[log]
level = "info"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Test Has method
	if !cfg.Has("log.level") {
		t.Error("Expected log.level to exist")
	}

	if cfg.Has("includes.max_depth") {
		t.Error("Expected includes.max_depth to not exist")
	}

	// Test Set method
	cfg.Set("includes.max_depth", 16)
	if !cfg.Has("includes.max_depth") {
		t.Error("Expected includes.max_depth to exist after Set")
	}

	if depth := cfg.GetInt("includes.max_depth"); depth != 16 {
		t.Errorf("Expected max_depth 16 after Set, got %d", depth)
	}

	// Test nested Set
	cfg.Set("parser.limits.nested.value", "test")
	if value := cfg.GetString("parser.limits.nested.value"); value != "test" {
		t.Errorf("Expected nested value 'test', got '%s'", value)
	}
}

func TestGetAll(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `
[includes]
max_depth = 16

[log]
level = "info"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	all := cfg.GetAll()

	// Check that data structure is preserved
	if logSection, ok := all["log"].(map[string]interface{}); ok {
		if level, ok := logSection["level"].(string); !ok || level != "info" {
			t.Errorf("Expected level 'info', got '%v'", logSection["level"])
		}
	} else {
		t.Error("Expected log section to be a map")
	}

	// Mutating the copy must not affect the original
	all["log"].(map[string]interface{})["level"] = "error"
	if level := cfg.GetString("log.level"); level != "info" {
		t.Errorf("Expected original level 'info' after copy mutation, got '%s'", level)
	}
}

func TestLoadFromString(t *testing.T) {
	t.Run("TOML string", func(t *testing.T) {
		configContent := `
[includes]
max_depth = 16
`
		cfg, err := LoadFromString(configContent, FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config from string: %v", err)
		}

		if depth := cfg.GetInt("includes.max_depth"); depth != 16 {
			t.Errorf("Expected max_depth 16, got %d", depth)
		}
	})

	t.Run("YAML string", func(t *testing.T) {
		configContent := `
includes:
  max_depth: 16
`
		cfg, err := LoadFromString(configContent, FormatYAML)
		if err != nil {
			t.Fatalf("Failed to load config from string: %v", err)
		}

		if depth := cfg.GetInt("includes.max_depth"); depth != 16 {
			t.Errorf("Expected max_depth 16, got %d", depth)
		}
	})
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"scenelang.toml", FormatTOML},
		{"scenelang.yaml", FormatYAML},
		{"scenelang.yml", FormatYAML},
		{"scenelang.txt", FormatTOML}, // Default fallback
		{"scenelang", FormatTOML},     // Default fallback
	}

	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			format := detectFormat(test.filename)
			if format != test.expected {
				t.Errorf("Expected format %v for %s, got %v", test.expected, test.filename, format)
			}
		})
	}
}

func TestFilePathAndFormat(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `[test]
value = "test"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.FilePath() != configPath {
		t.Errorf("Expected file path '%s', got '%s'", configPath, cfg.FilePath())
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Expected format TOML, got %v", cfg.Format())
	}
}

func TestValidation(t *testing.T) {
	cfg, err := LoadFromString(`
[includes]
max_depth = 128
search_paths = ["scenes", "shared"]

[log]
level = "verbose"
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	rules := ValidationRules{
		"includes.max_depth": {
			Required: true,
			Type:     "int",
			Min:      1,
			Max:      64,
		},
		"includes.search_paths": {
			Type: "[]string",
			Min:  1,
		},
		"log.level": {
			Type:    "string",
			Pattern: `^(trace|debug|info|warn|error)$`,
		},
		"parser.max_input_bytes": {
			Required: true,
			Type:     "int",
		},
	}

	result := cfg.Validate(rules)
	if result.Valid {
		t.Fatal("Expected validation to fail")
	}

	// max_depth over maximum, log.level pattern mismatch, missing required field
	if len(result.Errors) != 3 {
		t.Errorf("Expected 3 validation errors, got %d: %v", len(result.Errors), result.Errors)
	}

	foundDepth, foundLevel, foundMissing := false, false, false
	for _, msg := range result.Errors {
		switch {
		case strings.Contains(msg, "includes.max_depth"):
			foundDepth = true
		case strings.Contains(msg, "log.level"):
			foundLevel = true
		case strings.Contains(msg, "parser.max_input_bytes"):
			foundMissing = true
		}
	}
	if !foundDepth || !foundLevel || !foundMissing {
		t.Errorf("Missing expected validation errors: %v", result.Errors)
	}
}

func TestValidationDefaults(t *testing.T) {
	cfg, err := LoadFromString(`
[includes]
max_depth = 16
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	rules := ValidationRules{
		"log.level": {
			Type:    "string",
			Default: "info",
		},
	}

	result := cfg.Validate(rules)
	if !result.Valid {
		t.Fatalf("Expected validation to pass, got errors: %v", result.Errors)
	}

	// Default should have been applied for the missing key
	if level := cfg.GetString("log.level"); level != "info" {
		t.Errorf("Expected default level 'info' after validation, got '%s'", level)
	}
}

func TestBindToStruct(t *testing.T) {
	cfg, err := LoadFromString(`
[includes]
max_depth = 8
search_paths = ["scenes", "shared"]
strict = true
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	type IncludeSettings struct {
		MaxDepth    int      `config:"max_depth"`
		SearchPaths []string `config:"search_paths"`
		Strict      bool
	}

	var settings IncludeSettings
	if err := cfg.BindToStruct("includes", &settings); err != nil {
		t.Fatalf("Failed to bind struct: %v", err)
	}

	if settings.MaxDepth != 8 {
		t.Errorf("Expected MaxDepth 8, got %d", settings.MaxDepth)
	}
	if len(settings.SearchPaths) != 2 || settings.SearchPaths[0] != "scenes" {
		t.Errorf("Expected search paths [scenes shared], got %v", settings.SearchPaths)
	}
	if !settings.Strict {
		t.Error("Expected Strict true from lowercase field name binding")
	}

	t.Run("missing section", func(t *testing.T) {
		var settings IncludeSettings
		err := cfg.BindToStruct("missing", &settings)
		if err == nil {
			t.Fatal("Expected error for missing section")
		}
		if !slerror.HasCode(err, slerror.CodeMissingConfig) {
			t.Errorf("Expected code %s, got %s", slerror.CodeMissingConfig, slerror.GetCode(err))
		}
	})

	t.Run("non-pointer target", func(t *testing.T) {
		var settings IncludeSettings
		if err := cfg.BindToStruct("includes", settings); err == nil {
			t.Fatal("Expected error for non-pointer target")
		}
	})
}

func TestDiscover(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "scenelang.toml")
	configContent := `
[includes]
max_depth = 8
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Run("finds config file", func(t *testing.T) {
		cfg, err := Discover(DiscoveryOptions{
			Paths:     []string{tempDir},
			Filenames: []string{"scenelang"},
		})
		if err != nil {
			t.Fatalf("Failed to discover config: %v", err)
		}

		if depth := cfg.GetInt("includes.max_depth"); depth != 8 {
			t.Errorf("Expected max_depth 8, got %d", depth)
		}
		if cfg.FilePath() != configPath {
			t.Errorf("Expected file path '%s', got '%s'", configPath, cfg.FilePath())
		}
	})

	t.Run("not found and required", func(t *testing.T) {
		_, err := Discover(DiscoveryOptions{
			Paths:     []string{filepath.Join(tempDir, "empty")},
			Filenames: []string{"scenelang"},
			Required:  true,
		})
		if err == nil {
			t.Fatal("Expected error when config is required but missing")
		}
		if !slerror.HasCode(err, slerror.CodeMissingConfig) {
			t.Errorf("Expected code %s, got %s", slerror.CodeMissingConfig, slerror.GetCode(err))
		}
	})

	t.Run("not found and optional", func(t *testing.T) {
		cfg, err := Discover(DiscoveryOptions{
			Paths:     []string{filepath.Join(tempDir, "empty")},
			Filenames: []string{"scenelang"},
			Required:  false,
		})
		if err != nil {
			t.Fatalf("Expected empty config, got error: %v", err)
		}
		if cfg.Has("includes.max_depth") {
			t.Error("Expected empty config without keys")
		}
	})

	t.Run("find without loading", func(t *testing.T) {
		found, err := FindConfigFile(DiscoveryOptions{
			Paths:     []string{tempDir},
			Filenames: []string{"scenelang"},
		})
		if err != nil {
			t.Fatalf("Failed to find config file: %v", err)
		}
		if found != configPath {
			t.Errorf("Expected '%s', got '%s'", configPath, found)
		}
	})

	t.Run("list possible files", func(t *testing.T) {
		paths := ListPossibleConfigFiles(DiscoveryOptions{
			Paths:      []string{".", "./config"},
			Filenames:  []string{"scenelang"},
			Extensions: []string{".toml", ".yaml"},
		})
		if len(paths) != 4 {
			t.Errorf("Expected 4 candidate paths, got %d: %v", len(paths), paths)
		}
	})
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("SCENELANG_LOG_LEVEL", "debug")
	os.Setenv("SCENELANG_PARSER_STRICT", "true")
	os.Setenv("SCENELANG_WORKERS", "4")
	defer func() {
		os.Unsetenv("SCENELANG_LOG_LEVEL")
		os.Unsetenv("SCENELANG_PARSER_STRICT")
		os.Unsetenv("SCENELANG_WORKERS")
	}()

	cfg := LoadFromEnv("SCENELANG")

	if level := cfg.GetString("log.level"); level != "debug" {
		t.Errorf("Expected level 'debug' from env, got '%s'", level)
	}
	if !cfg.GetBool("parser.strict") {
		t.Error("Expected parser.strict true from env")
	}
	if workers := cfg.GetInt("workers"); workers != 4 {
		t.Errorf("Expected workers 4 from env, got %d", workers)
	}
}

func TestContextClones(t *testing.T) {
	cfg, err := LoadFromString(`
[log]
level = "info"
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	traced := cfg.WithRunID("run-42").WithDocument("scene.pbrt")

	// Clone carries the data
	if level := traced.GetString("log.level"); level != "info" {
		t.Errorf("Expected level 'info' on clone, got '%s'", level)
	}

	// Context shows in String output
	str := traced.String()
	if !strings.Contains(str, "runID: run-42") {
		t.Errorf("Expected runID in String output, got %s", str)
	}
	if !strings.Contains(str, "document: scene.pbrt") {
		t.Errorf("Expected document in String output, got %s", str)
	}

	// Mutating the clone must not affect the original
	traced.Set("log.level", "error")
	if level := cfg.GetString("log.level"); level != "info" {
		t.Errorf("Expected original level 'info' after clone mutation, got '%s'", level)
	}
}

func TestWatchLifecycle(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `
[log]
level = "info"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadWithWatch(configPath)
	if err != nil {
		t.Fatalf("Failed to load config with watch: %v", err)
	}

	if !cfg.IsWatching() {
		t.Error("Expected IsWatching true after LoadWithWatch")
	}

	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("Expected IsWatching false after StopWatching")
	}

	// Second stop is a no-op
	cfg.StopWatching()
}

func BenchmarkGetString(b *testing.B) {
	tempDir := b.TempDir()
	configPath := filepath.Join(tempDir, "bench.toml")
	configContent := `
[includes]
max_depth = 16

[log]
level = "info"
format = "console"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		b.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetString("log.level")
	}
}

func BenchmarkGetInt(b *testing.B) {
	tempDir := b.TempDir()
	configPath := filepath.Join(tempDir, "bench.toml")
	configContent := `
[includes]
max_depth = 16
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		b.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetInt("includes.max_depth")
	}
}
