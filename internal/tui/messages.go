// File: messages.go
// Title: Scene Browser Messages
// Description: Bubbletea messages exchanged between the scene browser
//              model and its load command.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial browser messages

package tui

import (
	slast "github.com/candela-render/scenelang/scene/ast"
)

// sceneLoadedMsg carries the result of loading and parsing the scene file
type sceneLoadedMsg struct {
	kind     string      // Document kind ("main" or "fragment")
	lines    []string    // Canonical text, one statement per entry
	stats    *slast.Stats
	includes int // Includes expanded before display
	err      error
}
