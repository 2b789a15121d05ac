// Package mapx provides generic map utilities for scenelang.
//
// Package: mapx
// Title: Extended Map Utilities
// Description: This package implements map operations with generic type
//              support: key and value extraction, merging, filtering, and
//              comparison. The scene toolchain uses it for keyword count
//              tables and option merging.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with map utilities
//
// Usage:
//   import "github.com/candela-render/scenelang/utils/mapx"
//
//   keywords := mapx.Keys(countsByKeyword)
//   merged := mapx.Merge(defaults, overrides)
package mapx
