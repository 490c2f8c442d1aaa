package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turtle-adventure/internal/storage"
)

func TestResultRows(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := resultRows([]storage.Result{
		{ID: 7, Outcome: storage.OutcomeWin, Level: 2, Ticks: 330, Enemies: 8, CreatedAt: at},
	}, 60)

	if len(rows) != 1 {
		t.Fatalf("resultRows() len = %d, expected 1", len(rows))
	}
	expected := []string{"7", "WIN", "2", "5.5s", "8", "Mar 05 14:30"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("row[%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
}

func TestScoreboardShowsTotals(t *testing.T) {
	store := openStore(t)
	store.SaveResult(storage.Result{GameID: "turtle", Outcome: storage.OutcomeWin, Level: 1, Ticks: 120})
	store.SaveResult(storage.Result{GameID: "turtle", Outcome: storage.OutcomeLose, Level: 1, Ticks: 30})

	m := NewScoreboardModel(store, 100, 30, 60)
	view := m.View()

	if !strings.Contains(view, "W 1 / L 1") {
		t.Errorf("View() missing totals:\n%s", view)
	}
	if !strings.Contains(view, "WIN") || !strings.Contains(view, "LOSE") {
		t.Errorf("View() missing result rows:\n%s", view)
	}
}

func TestScoreboardCyclesModes(t *testing.T) {
	store := openStore(t)
	store.SaveResult(storage.Result{GameID: "turtle_endless", Outcome: storage.OutcomeLose, Level: 3, Ticks: 900})

	m := NewScoreboardModel(store, 60, 30, 60)
	if len(m.results) != 0 {
		t.Fatalf("classic results = %d, expected 0", len(m.results))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.results) != 1 || m.stats.Losses != 1 {
		t.Errorf("endless results = %d losses = %d, expected 1/1", len(m.results), m.stats.Losses)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 0 {
		t.Errorf("gameCursor = %d after shift+tab, expected 0", m.gameCursor)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 30, 60)
	if view := m.View(); !strings.Contains(view, "not being recorded") {
		t.Errorf("View() = %q, expected a note about missing storage", view)
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("IsGoingBack() = false after b")
	}
}
