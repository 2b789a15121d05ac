// File: doc.go
// Title: Scene AST Package Documentation
// Description: Defines the abstract syntax tree for parsed scene-description
//              documents. Provides visitor patterns and tree utilities for
//              formatting, validation, collection, and statistics.
// Version: v0.1.0
// Created: 2025-11-15
// Modified: 2025-11-15
//
// Change History:
// - 2025-11-15 v0.1.0: Initial AST implementation

/*
Package ast defines the abstract syntax tree for scene-description documents.

This package provides the node definitions, visitor patterns, and utilities
for representing and manipulating parsed scene files as structured data. A
Document is a pure tree: every scope block exclusively owns its nested
statement sequence and no back references exist.

The AST enables:
  • Structured representation of scene directives and parameters
  • Canonical re-serialization to surface text (round-trip safe)
  • Structural validation with per-node position reporting
  • Node collection and statement statistics for tooling
*/
package ast
