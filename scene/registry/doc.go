// File: doc.go
// Title: Scene Directive Registry Package Documentation
// Description: Implements the directive vocabulary registry for the scene
//              language. Provides keyword lookup, statement shapes, context
//              capability sets, and extension with custom directives.
// Version: v0.1.0
// Created: 2025-11-16
// Modified: 2025-11-16
//
// Change History:
// - 2025-11-16 v0.1.0: Initial registry implementation

/*
Package registry provides the directive vocabulary for the scene language.

This package manages the table of directive keywords the statement parser
dispatches on. It provides:

  • Keyword lookup with statement shapes and fixed arities
  • Context capability sets (option, scene, object)
  • Scope pairing between begin and end keywords
  • Registration of renderer-specific directive extensions

The registry serves as the single authority for which directives exist,
what arguments each takes, and where in a document each may appear.
*/
package registry
