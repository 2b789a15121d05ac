// File: doc.go
// Title: Scene Package Documentation
// Description: Documents the scene engine facade that coordinates the
//              parser, registry, include resolution, and formatting
//              components into one high-level API.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial scene package documentation

/*
Package scene provides the high-level engine for working with scene
description documents.

The engine ties the lower-level packages together:

  • scene/parser tokenizes and parses scene text into document trees
  • scene/registry supplies the directive vocabulary the parser dispatches on
  • scene/ast holds the document model, visitors, and the canonical formatter

On top of those the engine adds the caller-side collaborator the parser
deliberately leaves out: include expansion. The parser only records an
Include directive; Engine.Expand resolves the named text through a
configurable IncludeResolver, parses it in fragment mode, and splices the
resulting statements in place of the include node, guarding against cycles
and runaway nesting.

Typical usage:

	engine, err := scene.NewEngine()
	if err != nil {
		return err
	}

	doc, err := engine.ParseScene(input)
	if err != nil {
		return err
	}

	fmt.Println(engine.Format(doc))

An Engine carries no per-invocation state and may be shared between
goroutines.
*/
package scene
