// File: doc.go
// Title: Scene Parser Package Documentation
// Description: Implements the lexical analyzer and parser for scene
//              description text. Converts scene input into structured
//              document trees with taxonomy-coded error reporting.
// Version: v0.1.0
// Created: 2025-11-18
// Modified: 2025-11-18
//
// Change History:
// - 2025-11-18 v0.1.0: Initial parser package documentation

/*
Package parser provides lexical analysis and parsing for scene description
text.

This package implements a recursive descent parser that converts scene
descriptions into document trees. It includes:

  • Lexical analyzer for directive keywords, numeric literals, quoted
    strings, brackets, and comments
  • Recursive descent statement parser driven by the directive registry
  • Typed parameter list parsing with per-tag value-shape enforcement
  • Scope stack tracking for nested begin/end blocks
  • Taxonomy-coded errors carrying line, column, and byte offset

Two parse modes exist: main documents (an option preamble followed by one
world block) and include fragments (a flat scene statement sequence). A
Parser carries no per-invocation state and may be shared; every Parse call
runs on its own stack and token stream.
*/
package parser
