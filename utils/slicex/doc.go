// Package slicex provides generic slice utilities for scenelang.
//
// Package: slicex
// Title: Extended Slice Utilities
// Description: This package implements functional-style slice operations with
//              generic type support. The scene toolchain uses it for statement
//              filtering, keyword grouping in statistics, and sorted report
//              output.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with slice utilities
//
// Usage:
//   import "github.com/candela-render/scenelang/utils/slicex"
//
//   shapes := slicex.Filter(statements, isShape)
//   byKeyword := slicex.GroupBy(statements, statementKeyword)
//   keywords := slicex.Sort(slicex.Unique(names))
package slicex
