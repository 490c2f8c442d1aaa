package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turtle-adventure/internal/core"
	"github.com/vovakirdan/turtle-adventure/internal/storage"
)

// scriptedGame ends with a win after a fixed number of steps.
type scriptedGame struct {
	finishAt int
	steps    int
	resets   int
	clicks   []core.Click
	state    core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.clicks = append(g.clicks, in.Clicks...)
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Tick++
	if g.steps >= g.finishAt {
		g.state.GameOver = true
		g.state.Won = true
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestModelRecordsOutcomeOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{finishAt: 3}

	m := NewModel(game, store, testRuntime())
	m.Init()
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	if !m.State().GameOver {
		t.Fatal("State().GameOver = false, expected finished game")
	}
	if m.SaveErr() != nil {
		t.Errorf("SaveErr() = %v, expected nil", m.SaveErr())
	}

	results, err := store.RecentResults("scripted", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("recorded %d results, expected 1", len(results))
	}
	if results[0].Outcome != storage.OutcomeWin || results[0].Ticks != 3 {
		t.Errorf("recorded %+v, expected a win after 3 ticks", results[0])
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(&scriptedGame{finishAt: 1}, nil, testRuntime())
	m.Init()
	m = tick(t, m)

	if !m.State().GameOver {
		t.Error("game should still finish without a store")
	}
	if m.SaveErr() != nil {
		t.Errorf("SaveErr() = %v, expected nil without a store", m.SaveErr())
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{finishAt: 1}

	m := NewModel(game, store, testRuntime())
	m.Init()
	m = tick(t, m)

	next, _ := m.Update(runeKey('r'))
	m = next.(Model)
	m = tick(t, m)
	if m.State().GameOver {
		t.Fatal("State().GameOver = true after restart")
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}

	m = tick(t, m)
	results, _ := store.RecentResults("scripted", 10)
	if len(results) != 2 {
		t.Errorf("recorded %d results, expected one per game", len(results))
	}
}

func TestModelForwardsClicks(t *testing.T) {
	game := &scriptedGame{finishAt: 100}
	m := NewModel(game, nil, testRuntime())
	m.Init()

	next, _ := m.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, next.(Model))

	if len(game.clicks) != 1 || game.clicks[0] != (core.Click{X: 5, Y: 3}) {
		t.Errorf("game saw clicks %v, expected [{5 3}]", game.clicks)
	}

	m = tick(t, m)
	if len(game.clicks) != 1 {
		t.Errorf("click delivered %d times, expected once", len(game.clicks))
	}
}

func TestModelBackOnlyWhenOver(t *testing.T) {
	m := newSessionGame(&scriptedGame{finishAt: 2}, nil, testRuntime())
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.BackToMenu() {
		t.Fatal("BackToMenu() = true while playing")
	}

	m = tick(t, m)
	m = tick(t, m)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("BackToMenu() = false after game over")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{finishAt: 5}, nil, testRuntime())
	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Errorf("View() = %q after quit, expected empty", m.View())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&scriptedGame{finishAt: 5}, nil, testRuntime())
	m.Init()

	if view := m.View(); !strings.Contains(view, "scripted") {
		t.Errorf("View() = %q, expected the game's frame", view)
	}
}
