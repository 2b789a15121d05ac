// File: expand.go
// Title: Include Expansion
// Description: Implements the caller-side include contract: walks a parsed
//              document, resolves every Include directive through the
//              configured resolver, parses the resolved text in fragment
//              mode, and splices the fragment statements in place of the
//              include node. Guards against cycles and runaway nesting.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial include expansion implementation

package scene

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	slerror "github.com/candela-render/scenelang/core/error"
	sllog "github.com/candela-render/scenelang/core/log"
	slast "github.com/candela-render/scenelang/scene/ast"
	slparser "github.com/candela-render/scenelang/scene/parser"
	"github.com/candela-render/scenelang/utils/slicex"
)

// ExpandResult represents the outcome of one include expansion
type ExpandResult struct {
	// Document is the expanded tree. The input document is never mutated.
	Document *slast.Document

	// RunID identifies this expansion in logs
	RunID string

	// Includes is the number of include directives that were expanded
	Includes int

	// MaxDepth is the deepest include nesting that was reached
	MaxDepth int

	// Duration is the total expansion time, resolution and parsing included
	Duration time.Duration
}

// Expand resolves every Include directive in the document and splices the
// included statements in place of the include node. The result is a new
// document; the input is never mutated. Expansion fails on the first
// unresolvable include, include cycle, or nesting beyond MaxIncludeDepth.
func (e *Engine) Expand(ctx context.Context, doc *slast.Document) (*ExpandResult, error) {
	runID := uuid.NewString()
	logger := e.logger.WithRunID(runID)
	timer := logger.StartTimer("scene_expand")

	x := &expansion{
		engine: e,
		ctx:    ctx,
		logger: logger,
	}

	expanded := &slast.Document{Kind: doc.Kind, Pos: doc.Pos}

	options, err := x.statements(doc.Options, 0)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	expanded.Options = options

	if doc.World != nil {
		statements, err := x.statements(doc.World.Statements, 0)
		if err != nil {
			timer.StopWithError(err)
			return nil, err
		}
		expanded.World = &slast.WorldBlock{Statements: statements, Pos: doc.World.Pos}
	}

	statements, err := x.statements(doc.Statements, 0)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	expanded.Statements = statements

	duration := timer.Stop()
	logger.Debug("include expansion completed", sllog.Fields{
		"includes": x.includes,
		"maxDepth": x.maxDepth,
	})

	return &ExpandResult{
		Document: expanded,
		RunID:    runID,
		Includes: x.includes,
		MaxDepth: x.maxDepth,
		Duration: duration,
	}, nil
}

// expansion holds the mutable state of one Expand invocation
type expansion struct {
	engine   *Engine
	ctx      context.Context
	logger   *sllog.Logger
	chain    []string // Names of includes currently being expanded
	includes int
	maxDepth int
}

// statements rebuilds a statement sequence, splicing fragments in place of
// include nodes and recursing into scope blocks
func (x *expansion) statements(stmts []slast.Statement, depth int) ([]slast.Statement, error) {
	if len(stmts) == 0 {
		return nil, nil
	}

	out := make([]slast.Statement, 0, len(stmts))
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *slast.Include:
			spliced, err := x.include(s, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)

		case *slast.AttributeBlock:
			inner, err := x.statements(s.Statements, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, &slast.AttributeBlock{Statements: inner, Pos: s.Pos})

		case *slast.TransformBlock:
			inner, err := x.statements(s.Statements, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, &slast.TransformBlock{Statements: inner, Pos: s.Pos})

		case *slast.ObjectBlock:
			inner, err := x.statements(s.Statements, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, &slast.ObjectBlock{Name: s.Name, Statements: inner, Pos: s.Pos})

		default:
			out = append(out, stmt)
		}
	}
	return out, nil
}

// include resolves one include directive and returns the statements it
// splices into its parent sequence
func (x *expansion) include(inc *slast.Include, depth int) ([]slast.Statement, error) {
	if err := x.ctx.Err(); err != nil {
		return nil, err
	}

	if x.engine.resolver == nil {
		return nil, slerror.New(fmt.Sprintf("cannot expand include %q: no resolver configured", inc.Path)).
			WithCode(slerror.CodeMissingConfig).
			WithOperation("scene.Expand")
	}

	nested := depth + 1
	if nested > x.engine.options.MaxIncludeDepth {
		return nil, slerror.New(fmt.Sprintf("include %q exceeds maximum nesting depth %d",
			inc.Path, x.engine.options.MaxIncludeDepth)).
			WithCode(slerror.CodeIncludeDepthExceeded).
			WithOperation("scene.Expand").
			WithDetail("chain", strings.Join(x.chain, " -> "))
	}

	if slicex.Contains(x.chain, inc.Path) {
		return nil, slerror.New(fmt.Sprintf("include cycle detected at %q", inc.Path)).
			WithCode(slerror.CodeIncludeCycle).
			WithOperation("scene.Expand").
			WithDetail("chain", strings.Join(append(x.chain, inc.Path), " -> "))
	}

	text, err := x.engine.resolver.Resolve(x.ctx, inc.Path)
	if err != nil {
		return nil, err
	}

	x.logger.Debug("expanding include", sllog.Fields{
		"include": inc.Path,
		"depth":   nested,
		"length":  len(text),
	})

	fragment, err := x.engine.parser.Parse(text, slparser.ModeFragment)
	if err != nil {
		wrapped := slerror.Wrap(err, fmt.Sprintf("failed to parse include %q", inc.Path)).
			WithOperation("scene.Expand")
		if pe, ok := err.(*slparser.ParseError); ok {
			wrapped = wrapped.WithCode(pe.Code).
				WithDetail("position", pe.Pos.String())
		}
		return nil, wrapped
	}

	x.includes++
	if nested > x.maxDepth {
		x.maxDepth = nested
	}

	x.chain = append(x.chain, inc.Path)
	statements, err := x.statements(fragment.Statements, nested)
	x.chain = x.chain[:len(x.chain)-1]
	if err != nil {
		return nil, err
	}
	return statements, nil
}
