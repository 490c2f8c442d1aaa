package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionPress(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected SessionModel", next)
		}
		m = sm
	}
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester")

	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatalf("view = %v, expected the game after Enter", m.view)
	}
	if m.config.Level != 2 {
		t.Errorf("config.Level = %d, expected the picked level 2", m.config.Level)
	}

	// Pause, then go back.
	m = sessionPress(t, m, runeKey('p'), TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected the menu after back", m.view)
	}
	if m.menu.Level() != 2 {
		t.Errorf("menu level = %d, expected 2 to be kept", m.menu.Level())
	}
}

func TestSessionResultsAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester")

	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewResults {
		t.Fatalf("view = %v, expected results after Tab", m.view)
	}

	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("view = %v, expected menu after Esc", m.view)
	}
	if m.quitting {
		t.Error("leaving results should not end the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := sessionPress(t, NewSessionModel(nil, testRuntime(), "tester"), runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
