package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turtle-adventure/internal/core"
	"github.com/vovakirdan/turtle-adventure/internal/registry"
	"github.com/vovakirdan/turtle-adventure/internal/storage"
)

// Level bounds offered by the menu.
const (
	minMenuLevel = 1
	maxMenuLevel = 9
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	level       int
	width       int
	height      int
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a game
	openResults bool      // True if user pressed Tab for results
}

// NewMenuModel creates a new menu model. The level starts at cfg.Level,
// or 1 when it is unset.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	level := cfg.Level
	if level < minMenuLevel {
		level = minMenuLevel
	}

	return MenuModel{
		items:     items,
		level:     core.Clamp(level, minMenuLevel, maxMenuLevel),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.level > minMenuLevel {
			m.level--
		}

	case MenuActionRight:
		if m.level < maxMenuLevel {
			m.level++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionResults:
		m.openResults = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("T U R T L E   A D V E N T U R E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Click to guide the turtle home", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCurStyle.Render("> " + item.Title)
		}
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("<  Level %d  >", m.level), m.width))
	b.WriteString("\n")
	if best := m.bestLine(); best != "" {
		b.WriteString(centerStyled(menuHintStyle.Render(best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Mode  |  Left/Right: Level  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerStyled(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// bestLine describes the fastest win for the highlighted mode and level.
func (m MenuModel) bestLine() string {
	if m.store == nil || len(m.items) == 0 {
		return ""
	}
	best, ok, err := m.store.BestWin(m.items[m.cursor].GameID, m.level)
	if err != nil || !ok {
		return ""
	}
	return fmt.Sprintf("Best: %s", formatTicks(best.Ticks, m.config.TickRate))
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Level returns the chosen level.
func (m MenuModel) Level() int {
	return m.level
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user requested the results board.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Config returns the runtime config with the chosen level and current size.
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	cfg.Level = m.level
	return cfg
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// centerStyled centers text that may contain ANSI styling.
func centerStyled(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// formatTicks renders a tick count as seconds at the given rate.
func formatTicks(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(tickRate))
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsResults():
		result.WantsResults = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}

	return result, nil
}
