package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/scores"
)

// MenuItem is one game in the picker.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	store  *scores.Store
	config core.RuntimeConfig
	keys   MenuKeyMap
	help   help.Model

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a picker over the registered games. The cursor
// starts on lastGameID when it is registered.
func NewMenuModel(store *scores.Store, cfg core.RuntimeConfig, lastGameID string) MenuModel {
	games := registry.List()
	m := MenuModel{
		items:  make([]MenuItem, 0, len(games)),
		store:  store,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for _, g := range games {
		if g.ID == lastGameID {
			m.cursor = len(m.items)
		}
		m.items = append(m.items, MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description})
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(0, m.cursor-1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = max(0, min(len(m.items)-1, m.cursor+1))
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Scoreboard):
			m.openScoreboard = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  S K Y H O P  ", w)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := centerText(fmt.Sprintf("  %-22s", item.Title), w)
		if i == m.cursor {
			line = menuActiveStyle.Render(centerText(fmt.Sprintf("> %-22s", item.Title), w))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderDetails(m.items[m.cursor], w))
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(centerText(m.help.View(m.keys), w)))
	b.WriteString("\n")
	return b.String()
}

// renderDetails shows the description and session best of the item under
// the cursor.
func (m MenuModel) renderDetails(item MenuItem, w int) string {
	var b strings.Builder
	if item.Description != "" {
		b.WriteString(centerText(item.Description, w))
		b.WriteString("\n")
	}
	if m.store != nil {
		if st, err := m.store.Stats(item.GameID); err == nil && st.GamesCount > 0 {
			best := fmt.Sprintf("best %d · height %d · runs %d", st.HighScore, st.BestHeight, st.GamesCount)
			b.WriteString(menuDimStyle.Render(centerText(best, w)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *scores.Store, cfg core.RuntimeConfig, lastGameID string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, lastGameID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}

	return result, nil
}
