// Package error provides structured error handling for the scenelang toolkit.
//
// Package: error
// Title: scenelang Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, severities, and stack traces.
//              It provides the foundation for consistent error handling across
//              the parser, the include-expansion engine, and the CLI tools, and
//              maps error codes onto process exit codes for command-line use.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - Exit-code mapping for command-line tools
//
// Usage:
//   import "github.com/candela-render/scenelang/core/error"
//
//   // Create a new error with context
//   err := error.New("include file not found").
//     WithCode(error.CodeIncludeNotFound).
//     WithDetail("name", "geometry/dragon.pbrt")
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "scene expansion failed").
//     WithOperation("engine.Expand")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeIncludeNotFound) {
//     // Handle missing includes specifically
//   }
package error
