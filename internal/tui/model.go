// File: model.go
// Title: Scene Browser Model
// Description: Main Bubbletea model for the interactive scene browser. Loads
//              a scene file through the engine, renders its canonical form
//              with per-depth coloring in a scrollable viewport and shows
//              document statistics in the status bar.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial scene browser

package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/candela-render/scenelang/scene"
	slast "github.com/candela-render/scenelang/scene/ast"
	slfilex "github.com/candela-render/scenelang/utils/filex"
)

// Config holds scene browser configuration
type Config struct {
	Path     string
	Engine   *scene.Engine
	Fragment bool
	Expand   bool
}

// Model is the main Bubbletea model for the scene browser
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
	kind     string
	includes int
	lines    []string
	stats    *slast.Stats

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Configuration
	cfg Config
}

// New creates a new scene browser model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner: sp,
		loading: true,
		cfg:     cfg,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadScene,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case sceneLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.kind = msg.kind
			m.lines = msg.lines
			m.stats = msg.stats
			m.includes = msg.includes
		}
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Reload from disk
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadScene)

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading scene browser..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSceneArea())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with file name and document kind
func (m Model) renderHeader() string {
	title := TitleStyle.Render(filepath.Base(m.cfg.Path))

	badge := m.kind
	if badge == "" {
		badge = "loading"
	}
	kind := KindBadgeStyle.Render("[" + badge + "]")

	expanded := ""
	if m.includes > 0 {
		expanded = "  " + HelpDescStyle.Render(fmt.Sprintf("%d includes expanded", m.includes))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		strings.Repeat(" ", 3),
		kind,
		expanded,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderSceneArea renders the main scene viewport
func (m Model) renderSceneArea() string {
	style := ScenePanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar with document statistics
func (m Model) renderStatusBar() string {
	var leftPart string
	switch {
	case m.loading:
		leftPart = m.spinner.View() + " Loading..."
	case m.err != nil:
		leftPart = ErrorStyle.Render("Error")
	case m.stats != nil:
		leftPart = fmt.Sprintf("Statements: %s  Parameters: %s  Depth: %s",
			StatusValueStyle.Render(fmt.Sprintf("%d", m.stats.Statements)),
			StatusValueStyle.Render(fmt.Sprintf("%d", m.stats.Parameters)),
			StatusValueStyle.Render(fmt.Sprintf("%d", m.stats.MaxDepth)),
		)
	}

	rightPart := HelpDescStyle.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100))

	leftLen := lipgloss.Width(leftPart)
	rightLen := lipgloss.Width(rightPart)
	padding := m.width - leftLen - rightLen - 4
	if padding < 2 {
		padding = 2
	}

	content := leftPart + strings.Repeat(" ", padding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Up/Down", "Scroll"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("r", "Reload"),
		RenderKeyHint("q", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent fills the viewport with the colored canonical form
func (m *Model) updateViewportContent() {
	if m.err != nil {
		m.viewport.SetContent(ErrorStyle.Render(m.err.Error()))
		return
	}

	var content strings.Builder
	for _, line := range m.lines {
		content.WriteString(renderLine(line))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
}

// renderLine colors a canonical line by its nesting depth
func renderLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if strings.HasPrefix(trimmed, "#") {
		return CommentStyle.Render(line)
	}
	depth := (len(line) - len(trimmed)) / 2
	return StyleForDepth(depth).Render(line)
}

// loadScene reads, parses, and optionally expands the configured file
func (m Model) loadScene() tea.Msg {
	input, err := slfilex.ReadString(m.cfg.Path)
	if err != nil {
		return sceneLoadedMsg{err: err}
	}

	var doc *slast.Document
	kind := "main"
	if m.cfg.Fragment {
		kind = "fragment"
		doc, err = m.cfg.Engine.ParseFragment(input)
	} else {
		doc, err = m.cfg.Engine.ParseScene(input)
	}
	if err != nil {
		return sceneLoadedMsg{err: err}
	}

	includes := 0
	if m.cfg.Expand {
		result, err := m.cfg.Engine.Expand(context.Background(), doc)
		if err != nil {
			return sceneLoadedMsg{err: err}
		}
		doc = result.Document
		includes = result.Includes
	}

	formatted := m.cfg.Engine.Format(doc)
	lines := strings.Split(strings.TrimRight(formatted, "\n"), "\n")

	return sceneLoadedMsg{
		kind:     kind,
		lines:    lines,
		stats:    m.cfg.Engine.Stats(doc),
		includes: includes,
	}
}

// Run starts the scene browser TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
