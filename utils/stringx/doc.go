// Package stringx provides extended string utilities for scenelang.
//
// Package: stringx
// Title: Extended String Utilities
// Description: This package implements string operations beyond the Go standard
//              library that recur throughout the scene toolchain: blank/empty
//              checks for input validation, identifier checks for named scene
//              entities, interning for the fixed directive vocabulary, padding
//              for aligned report output, and safe Unicode truncation for
//              error messages that quote source text.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-14
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with core utilities
// - 2025-11-14 v0.1.1: Added identifier checks for named scene entities
//
// Features:
// - Null-safe empty and blank checks
// - Scene identifier validation (letter, then alphanumerics or underscores)
// - String interning for high-frequency keyword strings
// - Unicode-aware truncation and padding
// - Line splitting across \n, \r\n, and \r conventions
// - Default-value chaining helpers
//
// Usage:
//   import "github.com/candela-render/scenelang/utils/stringx"
//
//   if stringx.IsBlank(input) {
//     return nil, slerror.New("empty input")
//   }
//
//   if !stringx.IsIdentifier(name) {
//     return nil, slerror.New("object names must be identifiers")
//   }
//
//   keyword := stringx.Intern(token.Value)
package stringx
