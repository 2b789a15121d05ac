// Package filex provides file operation utilities for scenelang.
//
// Package: filex
// Title: Extended File Utilities
// Description: This package implements the file operations the scene toolchain
//              needs: existence and type checks before parsing, whole-file
//              reads for scene documents, directory listing for the browser,
//              pattern search for scene files, and path manipulation for the
//              include resolver.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with file utilities
//
// Features:
// - Existence, file/directory, and readability checks
// - Whole-file and line-based reading with wrapped errors
// - Safe writing for formatted scene output
// - Directory listing with extended file information
// - Recursive pattern search for scene files
// - Human-readable size formatting for reports
// - Path manipulation helpers (Abs, Rel, Dir, Base, Ext, Join, Clean)
//
// Usage:
//   import "github.com/candela-render/scenelang/utils/filex"
//
//   if !filex.IsFile(path) {
//     return fmt.Errorf("not a scene file: %s", path)
//   }
//
//   source, err := filex.ReadString(path)
//   if err != nil {
//     return err
//   }
//
//   scenes, err := filex.Find("scenes", "*.pbrt")
package filex
