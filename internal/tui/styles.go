// File: styles.go
// Title: Scene Browser Styles
// Description: Lipgloss styles for the scene browser TUI: the shared
//              color palette, panel frames, status and help bars, and the
//              per-depth statement coloring.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial browser styles

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	KindBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Viewport panel styles
var (
	ScenePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// depthStyles colors statements by their scope nesting depth
var depthStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(ColorText),
	lipgloss.NewStyle().Foreground(ColorSecondary),
	lipgloss.NewStyle().Foreground(ColorAccent),
	lipgloss.NewStyle().Foreground(ColorSuccess),
	lipgloss.NewStyle().Foreground(ColorPrimary),
}

// CommentStyle renders retained comments
var CommentStyle = lipgloss.NewStyle().
	Foreground(ColorTextDim).
	Italic(true)

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// StyleForDepth returns the statement style for a nesting depth
func StyleForDepth(depth int) lipgloss.Style {
	if depth < 0 {
		depth = 0
	}
	return depthStyles[depth%len(depthStyles)]
}
