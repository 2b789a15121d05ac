// Package log provides structured logging capabilities for scenelang.
//
// Package: log
// Title: Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels, and tight
//              integration with the scenelang error handling system. It supports
//              performance timing for parse and expansion runs and an audit trail
//              for include resolution and file access.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with run IDs, document paths, and custom fields
// - Integration with the scenelang error system for automatic error logging
// - Performance metrics and timing measurements for parser runs
// - Audit trail capabilities for include resolution
// - Multiple output destinations (console, file)
//
// Usage:
//   import sllog "github.com/candela-render/scenelang/core/log"
//
//   // Create a logger with context
//   logger := sllog.New().
//     WithLevel(sllog.LevelInfo).
//     WithFormat(sllog.FormatJSON).
//     WithField("component", "parser").
//     WithDocument("scenes/cornell.pbrt")
//
//   // Log messages with different levels
//   logger.Info("scene parsed", sllog.Field("statements", 412))
//   logger.Error("parse failed", sllog.Err(err))
//   logger.Debug("resolving include", sllog.Fields{
//     "name":  "geometry/walls.pbrt",
//     "depth": 2,
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("parse_scene")
//   // ... parse the document
//   timer.Stop()
//
//   // Audit logging for include expansion
//   logger.Audit("include resolved", sllog.Fields{
//     "name":    "materials/metal.pbrt",
//     "resolver": "dir",
//     "bytes":   2048,
//   })
package log
