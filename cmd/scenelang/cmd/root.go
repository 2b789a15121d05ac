// File: root.go
// Title: scenelang Root Command
// Description: Defines the root command of the scenelang CLI with its
//              persistent flags, configuration discovery, and logger
//              setup shared by all subcommands.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial root command

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	slconfig "github.com/candela-render/scenelang/core/config"
	slerror "github.com/candela-render/scenelang/core/error"
	sllog "github.com/candela-render/scenelang/core/log"
	"github.com/candela-render/scenelang/scene"
	slparser "github.com/candela-render/scenelang/scene/parser"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg *slconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "scenelang",
	Short: "Scene description parser toolkit",
	Long: `scenelang parses, checks, formats, and inspects scene description
files for physically based renderers.

Commands:
  check    - Parse files and report syntax errors
  fmt      - Rewrite a scene in canonical form
  stats    - Show statement and parameter tallies
  browse   - Browse a scene in an interactive viewer
  version  - Show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file (default: discovered scenelang.{toml,yaml,yml})")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Log format: text, json, console, logfmt")
}

// setup loads the configuration and installs the shared default logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = slconfig.Load(cfgFile)
		if err != nil {
			return slerror.Wrap(err, fmt.Sprintf("failed to load config %s", cfgFile)).
				WithCode(slerror.CodeConfigError)
		}
	} else {
		cfg, err = slconfig.Discover(slconfig.DefaultDiscoveryOptions())
		if err != nil {
			return slerror.Wrap(err, "config discovery failed").
				WithCode(slerror.CodeConfigError)
		}
	}

	level := sllog.LevelWarn
	if configured := cfg.GetString("log.level"); configured != "" {
		parsed, err := sllog.ParseLevel(configured)
		if err != nil {
			return slerror.Wrap(err, "invalid log.level in config").
				WithCode(slerror.CodeInvalidConfig)
		}
		level = parsed
	}
	if verbose {
		level = sllog.LevelDebug
	}

	format := sllog.FormatConsole
	name := logFormat
	if name == "" {
		name = cfg.GetString("log.format")
	}
	if name != "" {
		parsed, err := sllog.ParseFormat(name)
		if err != nil {
			return slerror.Wrap(err, "invalid log format").
				WithCode(slerror.CodeInvalidConfig)
		}
		format = parsed
	}

	sllog.SetDefault(sllog.NewWithConfig(sllog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "scenelang",
	}))

	return nil
}

// newEngine builds a scene engine from the configuration and the given
// additional include search paths (flag paths take precedence)
func newEngine(includePaths []string) (*scene.Engine, error) {
	options := scene.Options{
		Logger:          sllog.GetDefault(),
		MaxIncludeDepth: cfg.GetInt("includes.max_depth", scene.DefaultMaxIncludeDepth),
		DiscardComments: !cfg.GetBool("parser.retain_comments", true),
	}

	if maxMB := cfg.GetInt("parser.max_input_mb"); maxMB > 0 {
		options.MaxInputLength = maxMB << 20
	}

	roots := append([]string{}, includePaths...)
	roots = append(roots, cfg.GetStringSlice("includes.search_paths", []string{"."})...)
	options.Resolver = scene.NewDirResolver(roots...)

	return scene.NewEngine(options)
}

// printError reports an error on stderr with position detail when present
func printError(err error) {
	if pe, ok := underlyingParseError(err); ok {
		fmt.Fprintf(os.Stderr, "scenelang: %s\n", pe.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "scenelang: %v\n", err)
}

// underlyingParseError digs a *parser.ParseError out of a wrap chain
func underlyingParseError(err error) (*slparser.ParseError, bool) {
	for err != nil {
		if pe, ok := err.(*slparser.ParseError); ok {
			return pe, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// ExitCode maps an error onto the process exit code: parse defects exit 1,
// usage and configuration mistakes exit 2, file system problems exit 3
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if pe, ok := underlyingParseError(err); ok {
		return pe.Code.ExitCode()
	}
	if code := slerror.GetCode(err); code != slerror.CodeUnknown {
		return code.ExitCode()
	}
	return 1
}
