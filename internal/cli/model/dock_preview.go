// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/bnema/dockspace/internal/application/usecase"
	"github.com/bnema/dockspace/internal/cli/styles"
	"github.com/bnema/dockspace/internal/domain/entity"
	"github.com/bnema/dockspace/internal/logging"
)

const (
	defaultCanvasCols = 80
	defaultCanvasRows = 20
	// Rows taken by the title, status line and help.
	chromeRows = 4
	// Dropped windows get a short random name.
	droppedNameLen = 8
)

// DockPreviewModel is the Bubble Tea model for the interactive dock preview.
// A cursor stands in for the dragged window: the drop zone under it is
// highlighted and enter docks a new window there.
type DockPreviewModel struct {
	// UI components
	help help.Model
	keys dockPreviewKeyMap

	// State
	cols, rows    int
	cursorCol     int
	cursorRow     int
	placement     entity.DockPlacement
	statusMessage string
	err           error

	// Config
	viewport   entity.Rect
	resizeStep float64

	// Dependencies
	ctx       context.Context
	dock      *usecase.DockContainer
	previewUC *usecase.PreviewDropUseCase
	overlay   *cellOverlay
	theme     *styles.Theme
}

// dockPreviewKeyMap defines keybindings for the dock preview.
type dockPreviewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Drop   key.Binding
	Undock key.Binding
	Cycle  key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k dockPreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drop, k.Undock, k.Cycle, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k dockPreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Drop, k.Undock, k.Cycle},
		{k.Grow, k.Shrink},
		{k.Help, k.Quit},
	}
}

func defaultDockPreviewKeyMap() dockPreviewKeyMap {
	return dockPreviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "dock window"),
		),
		Undock: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "undock"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow pane"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink pane"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DockPreviewConfig holds configuration for the dock preview model.
type DockPreviewConfig struct {
	Dock     *usecase.DockContainer
	Viewport entity.Rect
	// ResizeStepPercent is the divider movement per grow/shrink keystroke.
	ResizeStepPercent float64
}

// NewDockPreviewModel creates a new dock preview model.
func NewDockPreviewModel(ctx context.Context, theme *styles.Theme, cfg DockPreviewConfig) DockPreviewModel {
	overlay := &cellOverlay{}
	m := DockPreviewModel{
		help:       help.New(),
		keys:       defaultDockPreviewKeyMap(),
		cols:       defaultCanvasCols,
		rows:       defaultCanvasRows,
		viewport:   cfg.Viewport,
		resizeStep: cfg.ResizeStepPercent / 100.0,
		ctx:        ctx,
		dock:       cfg.Dock,
		previewUC:  usecase.NewPreviewDropUseCase(cfg.Dock, overlay),
		overlay:    overlay,
		theme:      theme,
	}
	m.cursorCol = m.cols / 2
	m.cursorRow = m.rows / 2
	m.dock.Update(m.viewport)
	m.refreshPreview()
	return m
}

// DockOptionsMsg replaces the dock tunables, e.g. after a config reload.
type DockOptionsMsg struct {
	Options           usecase.DockOptions
	ResizeStepPercent float64
}

// Init implements tea.Model.
func (m DockPreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DockPreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case DockOptionsMsg:
		m.dock.SetOptions(msg.Options)
		if msg.ResizeStepPercent > 0 {
			m.resizeStep = msg.ResizeStepPercent / 100.0
		}
		m.statusMessage = "Config reloaded"
		m.refreshPreview()
		return m, nil
	}

	return m, nil
}

func (m *DockPreviewModel) resize(width, height int) {
	if width > 0 {
		m.cols = width
	}
	if height > chromeRows+1 {
		m.rows = height - chromeRows
	}
	m.cursorCol = min(m.cursorCol, m.cols-1)
	m.cursorRow = min(m.cursorRow, m.rows-1)
}

func (m DockPreviewModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Drop):
		m.dropWindow()
	case key.Matches(msg, m.keys.Undock):
		m.undockWindow()
	case key.Matches(msg, m.keys.Cycle):
		m.cycleTab()
	case key.Matches(msg, m.keys.Grow):
		m.resizePane(m.resizeStep)
	case key.Matches(msg, m.keys.Shrink):
		m.resizePane(-m.resizeStep)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.refreshPreview()
	return m, nil
}

func (m *DockPreviewModel) moveCursor(dc, dr int) {
	m.cursorCol = clampInt(m.cursorCol+dc, 0, m.cols-1)
	m.cursorRow = clampInt(m.cursorRow+dr, 0, m.rows-1)
}

// cellCenter maps a canvas cell to the center of its viewport area.
func (m DockPreviewModel) cellCenter(col, row int) (x, y float64) {
	cw := m.viewport.Width() / float64(m.cols)
	ch := m.viewport.Height() / float64(m.rows)
	return m.viewport.Min.X + (float64(col)+0.5)*cw, m.viewport.Min.Y + (float64(row)+0.5)*ch
}

func (m DockPreviewModel) cursorPoint() (x, y float64) {
	return m.cellCenter(m.cursorCol, m.cursorRow)
}

func (m *DockPreviewModel) refreshPreview() {
	x, y := m.cursorPoint()
	placement, err := m.previewUC.Execute(m.ctx, x, y)
	m.placement = placement
	m.err = err
}

func (m *DockPreviewModel) dropWindow() {
	name := uuid.NewString()[:droppedNameLen]
	window := entity.NewWindow(entity.WindowID(name), name)
	x, y := m.cursorPoint()

	ok, err := m.previewUC.Drop(m.ctx, window, x, y)
	if err != nil {
		m.err = err
		return
	}
	if !ok {
		m.statusMessage = "Nothing to dock into here"
		return
	}

	m.dock.Update(m.viewport)
	m.statusMessage = fmt.Sprintf("Docked %s", name)
	logging.FromContext(logging.WithWindowID(m.ctx, name)).Info().Msg("window docked")
}

func (m *DockPreviewModel) undockWindow() {
	leaf := m.dock.TraceLeaf(m.cursorPoint())
	if leaf == nil || len(leaf.Windows) == 0 {
		m.statusMessage = "No window under the cursor"
		return
	}

	window := m.dock.DetachLeafWindow(leaf, leaf.ActiveIndex)
	m.dock.Update(m.viewport)
	m.statusMessage = fmt.Sprintf("Undocked %s", window.Title)
	logging.FromContext(logging.WithWindowID(m.ctx, string(window.ID))).Info().Msg("window undocked")
}

func (m *DockPreviewModel) cycleTab() {
	leaf := m.dock.TraceLeaf(m.cursorPoint())
	if leaf == nil || len(leaf.Windows) < 2 {
		return
	}
	next := leaf.Windows[(leaf.ActiveIndex+1)%len(leaf.Windows)]
	m.dock.FocusWindow(next)
	m.statusMessage = fmt.Sprintf("Focused %s", next.Title)
}

func (m *DockPreviewModel) resizePane(delta float64) {
	leaf := m.dock.TraceLeaf(m.cursorPoint())
	if leaf == nil {
		return
	}
	if err := m.dock.ResizeWindow(leaf.ActiveWindow(), delta); err != nil {
		m.statusMessage = err.Error()
		return
	}
	m.dock.Update(m.viewport)
}

// View implements tea.Model.
func (m DockPreviewModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Dock preview"))
	b.WriteString("\n")
	b.WriteString(m.renderCanvas())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m DockPreviewModel) renderStatus() string {
	if m.err != nil {
		return m.theme.ErrorStyle.Render("Error: " + m.err.Error())
	}

	zone := m.theme.Subtle.Render("outside")
	if m.placement.Valid() {
		zone = m.theme.Highlight.Render(m.placement.Zone.String())
	}
	parts := []string{
		"zone " + zone,
		m.theme.Subtle.Render(fmt.Sprintf("windows %d", len(m.dock.GetWindows()))),
	}
	if m.statusMessage != "" {
		parts = append(parts, m.statusMessage)
	}
	return strings.Join(parts, m.theme.Subtle.Render(" · "))
}

// renderCanvas draws the laid out leaves as a character grid. Leaf
// boundaries become box-drawing lines, each leaf is labelled with its tab
// stack and the highlighted drop zone is shaded.
func (m DockPreviewModel) renderCanvas() string {
	leafAt := make([][]*entity.DockNode, m.rows)
	for r := range leafAt {
		leafAt[r] = make([]*entity.DockNode, m.cols)
		for c := range leafAt[r] {
			leafAt[r][c] = m.dock.TraceLeaf(m.cellCenter(c, r))
		}
	}

	canvas := make([][]rune, m.rows)
	for r := range canvas {
		canvas[r] = make([]rune, m.cols)
		for c := range canvas[r] {
			canvas[r][c] = boundaryRune(leafAt, r, c)
		}
	}

	labelled := make(map[*entity.DockNode]bool)
	for r := range canvas {
		for c := range canvas[r] {
			leaf := leafAt[r][c]
			if leaf == nil || labelled[leaf] || canvas[r][c] != ' ' {
				continue
			}
			labelled[leaf] = true
			for i, ch := range []rune(leafLabel(leaf)) {
				cc := c + i
				if cc >= m.cols || leafAt[r][cc] != leaf || canvas[r][cc] != ' ' {
					break
				}
				canvas[r][cc] = ch
			}
		}
	}

	var b strings.Builder
	for r := range canvas {
		if r > 0 {
			b.WriteString("\n")
		}
		for c, ch := range canvas[r] {
			b.WriteString(m.cellStyle(c, r).Render(string(ch)))
		}
	}
	return b.String()
}

func (m DockPreviewModel) cellStyle(col, row int) lipgloss.Style {
	if col == m.cursorCol && row == m.cursorRow {
		return m.theme.Cursor
	}
	if x, y := m.cellCenter(col, row); m.overlay.Contains(x, y) {
		return m.theme.Zone
	}
	return lipgloss.NewStyle()
}

// boundaryRune returns the divider drawn at a cell, or a space when the
// cell's right and lower neighbours belong to the same leaf.
func boundaryRune(leafAt [][]*entity.DockNode, r, c int) rune {
	right := c+1 < len(leafAt[r]) && leafAt[r][c+1] != leafAt[r][c]
	below := r+1 < len(leafAt) && leafAt[r+1][c] != leafAt[r][c]
	switch {
	case right && below:
		return '┼'
	case right:
		return '│'
	case below:
		return '─'
	default:
		return ' '
	}
}

// leafLabel lists a leaf's windows with the active one in brackets.
func leafLabel(leaf *entity.DockNode) string {
	if len(leaf.Windows) == 0 {
		return "(empty)"
	}
	titles := make([]string, len(leaf.Windows))
	for i, w := range leaf.Windows {
		titles[i] = w.Title
		if i == leaf.ActiveIndex {
			titles[i] = "[" + w.Title + "]"
		}
	}
	return strings.Join(titles, " ")
}

func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
