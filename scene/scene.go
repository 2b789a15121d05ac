// File: scene.go
// Title: Scene Engine Facade
// Description: Provides the main scene engine that coordinates parser,
//              registry, resolver, and formatter components behind one
//              high-level API for parsing, validating, formatting, and
//              inspecting scene description documents.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial scene engine implementation

package scene

import (
	"fmt"

	slerror "github.com/candela-render/scenelang/core/error"
	sllog "github.com/candela-render/scenelang/core/log"
	slast "github.com/candela-render/scenelang/scene/ast"
	slparser "github.com/candela-render/scenelang/scene/parser"
	slregistry "github.com/candela-render/scenelang/scene/registry"
)

// DefaultMaxIncludeDepth bounds include nesting when Options does not
const DefaultMaxIncludeDepth = 16

// Engine coordinates the scene description components: the parser, the
// directive registry, the include resolver, and the canonical formatter.
// An Engine is safe for concurrent use.
type Engine struct {
	parser   *slparser.Parser
	registry *slregistry.Registry
	resolver IncludeResolver
	logger   *sllog.Logger
	options  Options
}

// Options configures the scene engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *sllog.Logger

	// Registry supplies the directive vocabulary (optional, builtin when nil)
	Registry *slregistry.Registry

	// Resolver loads included files by name. Expansion of documents that
	// contain Include directives fails without one.
	Resolver IncludeResolver

	// MaxIncludeDepth limits include nesting during expansion (default: 16)
	MaxIncludeDepth int

	// MaxInputLength limits scene input size in bytes (default: 16 MiB)
	MaxInputLength int

	// DiscardComments drops comment statements instead of retaining them
	DiscardComments bool
}

// NewEngine creates a new scene engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:          sllog.GetDefault(),
		MaxIncludeDepth: DefaultMaxIncludeDepth,
		MaxInputLength:  slparser.DefaultMaxInputLength,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.Registry != nil {
			options.Registry = provided.Registry
		}
		if provided.MaxIncludeDepth > 0 {
			options.MaxIncludeDepth = provided.MaxIncludeDepth
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		options.Resolver = provided.Resolver
		options.DiscardComments = provided.DiscardComments
	}

	logger := options.Logger.WithField("component", "scene-engine")

	if options.Registry == nil {
		reg, err := slregistry.New(slregistry.Options{Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize scene registry: %w", err)
		}
		options.Registry = reg
	}

	p, err := slparser.New(slparser.Options{
		Logger:          logger,
		Registry:        options.Registry,
		MaxInputLength:  options.MaxInputLength,
		DiscardComments: options.DiscardComments,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scene parser: %w", err)
	}

	engine := &Engine{
		parser:   p,
		registry: options.Registry,
		resolver: options.Resolver,
		logger:   logger,
		options:  options,
	}

	logger.Debug("scene engine initialized", sllog.Fields{
		"maxIncludeDepth": options.MaxIncludeDepth,
		"maxInputLength":  options.MaxInputLength,
		"discardComments": options.DiscardComments,
		"hasResolver":     options.Resolver != nil,
	})

	return engine, nil
}

// ParseScene parses a full scene: an option preamble followed by exactly
// one world block
func (e *Engine) ParseScene(input string) (*slast.Document, error) {
	return e.parser.Parse(input, slparser.ModeMain)
}

// ParseFragment parses an includable fragment: a flat sequence of scene
// statements with no world block
func (e *Engine) ParseFragment(input string) (*slast.Document, error) {
	return e.parser.Parse(input, slparser.ModeFragment)
}

// CheckScene reports whether scene text is syntactically valid without
// keeping the document
func (e *Engine) CheckScene(input string) error {
	_, err := e.ParseScene(input)
	return err
}

// CheckFragment reports whether fragment text is syntactically valid
// without keeping the document
func (e *Engine) CheckFragment(input string) error {
	_, err := e.ParseFragment(input)
	return err
}

// Format serializes a document back to canonical surface text. Parsing the
// result yields a structurally equal document.
func (e *Engine) Format(doc *slast.Document) string {
	return slast.FormatAST(doc)
}

// Validate runs structural validation over a document tree
func (e *Engine) Validate(doc *slast.Document) error {
	errs := slast.ValidateAST(doc)
	if len(errs) == 0 {
		return nil
	}

	err := slerror.New(fmt.Sprintf("document validation failed with %d errors", len(errs))).
		WithCode(slerror.CodeValidationFailed).
		WithOperation("scene.Validate")
	for i, ve := range errs {
		err = err.WithDetail(fmt.Sprintf("error_%d", i), ve.Error())
	}
	return err
}

// Stats tallies statements and parameters across a document tree
func (e *Engine) Stats(doc *slast.Document) *slast.Stats {
	visitor := slast.NewStatsVisitor()
	doc.Accept(visitor)
	return visitor.Stats()
}

// Registry returns the directive vocabulary for registration of custom
// directives
func (e *Engine) Registry() *slregistry.Registry {
	return e.registry
}

// Resolver returns the configured include resolver, or nil
func (e *Engine) Resolver() IncludeResolver {
	return e.resolver
}
