package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/scores"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{endAt: 1} })
}

func openStore(t *testing.T) *scores.Store {
	t.Helper()
	s, err := scores.Open()
	if err != nil {
		t.Fatalf("scores.Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func menuStep(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "scripted")
	if len(m.items) == 0 {
		t.Fatal("menu has no items")
	}
	if m.items[m.cursor].GameID != "scripted" {
		t.Errorf("cursor on %q, want the last played game", m.items[m.cursor].GameID)
	}

	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "scripted" {
		t.Errorf("Selected() = %v", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuStep(t, NewMenuModel(nil, core.DefaultConfig(), ""), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = menuStep(t, NewMenuModel(nil, core.DefaultConfig(), ""), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := openStore(t)
	store.Record("scripted", 42, 0)

	view := NewMenuModel(store, core.DefaultConfig(), "").View()
	if !strings.Contains(view, "best 42") {
		t.Errorf("menu should show the best score:\n%s", view)
	}
}

func TestScoreboardLoadsBoard(t *testing.T) {
	store := openStore(t)
	store.Record("scripted", 7, 70)
	store.Record("scripted", 9, 90)

	m := NewScoreboardModel(store, 100, 30)
	for m.current() != "scripted" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	if len(m.runs) != 2 || m.runs[0].Score != 9 {
		t.Fatalf("runs = %+v, want best first", m.runs)
	}
	if view := m.View(); !strings.Contains(view, "Runs: 2") || !strings.Contains(view, "Height: 90") {
		t.Errorf("scoreboard should show run stats:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}

func TestScoreboardClear(t *testing.T) {
	store := openStore(t)
	store.Record("scripted", 5, 50)
	store.Record("other", 3, 30)

	m := NewScoreboardModel(store, 100, 30)
	for m.current() != "scripted" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	next, _ := m.Update(runeKey('x'))
	m = next.(ScoreboardModel)
	if len(m.runs) != 0 || m.stats.GamesCount != 0 {
		t.Errorf("clear left %d runs", len(m.runs))
	}
	if best, _ := store.Best("other"); best != 3 {
		t.Errorf("clear touched another game: best = %d", best)
	}
}

func TestScoreboardTabsWrap(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	n := len(m.games)
	if n == 0 {
		t.Fatal("no games registered")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).tab; got != n-1 {
		t.Errorf("shift+tab from the first tab = %d, want %d", got, n-1)
	}
}
