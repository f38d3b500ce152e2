package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/scores"
)

const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
)

// ScoreboardModel shows the runs recorded this session, one game per tab.
type ScoreboardModel struct {
	games  []registry.GameInfo
	tab    int
	store  *scores.Store
	runs   []scores.Entry
	stats  scores.GameStats
	err    error
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first registered game.
func NewScoreboardModel(store *scores.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

// current returns the ID of the selected tab, or "" with no games.
func (m ScoreboardModel) current() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.tab].ID
}

func (m ScoreboardModel) newTable() table.Model {
	timeW := 10
	if m.width > 60 {
		timeW = min(m.width-44, 20)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Height", Width: 10},
			{Title: "At", Width: timeW},
		}),
		table.WithFocused(true),
		// Title, stats, tabs, frame and help take the rest.
		table.WithHeight(max(3, m.height-10)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// reload queries the store for the selected tab and refills the table.
func (m *ScoreboardModel) reload() {
	id := m.current()
	m.runs, m.err = nil, nil
	m.stats = scores.GameStats{GameID: id}
	if m.store != nil && id != "" {
		m.runs, m.err = m.store.Top(id, scoreboardLimit)
		if m.err == nil {
			m.stats, m.err = m.store.Stats(id)
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Height),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.shift(-1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if m.store != nil && m.current() != "" {
				if err := m.store.Clear(m.current()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// shift moves the tab cursor by delta, wrapping around.
func (m *ScoreboardModel) shift(delta int) {
	if n := len(m.games); n > 0 {
		m.tab = ((m.tab+delta)%n + n) % n
		m.reload()
	}
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	if st := m.stats; st.GamesCount > 0 {
		line := fmt.Sprintf("Runs: %d  Best: %d  Height: %d  Avg: %.1f",
			st.GamesCount, st.HighScore, st.BestHeight, st.AvgScore)
		b.WriteString(boardStatsStyle.Render(centerText(line, m.width)))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(m.renderBody()), m.width))
	b.WriteString("\n")
	b.WriteString(boardStatsStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs lists every game, falling back to the current title alone
// when the row does not fit.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.tab {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(row) > m.width-2 && len(m.games) > 0 {
		row = fmt.Sprintf("< %s >", m.games[m.tab].Title)
	}
	return centerText(row, m.width)
}

func (m ScoreboardModel) renderBody() string {
	switch {
	case m.err != nil:
		return boardErrStyle.Render("Cannot load scores: " + m.err.Error())
	case len(m.runs) == 0:
		return boardNoteStyle.Render("No runs this session yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *scores.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
