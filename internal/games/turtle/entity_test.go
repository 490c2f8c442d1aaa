package turtle

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/turtle-adventure/internal/config"
	"github.com/vovakirdan/turtle-adventure/internal/core"
)

// testConfig returns the default config with the given world and level.
func testConfig(w, h, level int) config.TurtleConfig {
	cfg := config.DefaultTurtleConfig()
	cfg.World = config.WorldConfig{Width: w, Height: h}
	cfg.Level = level
	return cfg
}

func startGame(t *testing.T, g *Game, cfg config.TurtleConfig) *Game {
	t.Helper()
	if err := g.Start(cfg, core.RuntimeConfig{Seed: 42, TickRate: 60}); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return g
}

func TestPenTowards(t *testing.T) {
	tests := []struct {
		x, y     float64
		expected float64
	}{
		{10, 0, 0},
		{0, 10, 90},
		{-10, 0, 180},
		{0, -10, 270},
		{10, 10, 45},
	}

	for _, tc := range tests {
		p := Pen{}
		if got := p.Towards(tc.x, tc.y); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Towards(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestPenForward(t *testing.T) {
	p := Pen{X: 10, Y: 10}
	p.SetHeading(p.Towards(13, 14))
	p.Forward(5)

	if math.Abs(p.X-13) > 1e-9 || math.Abs(p.Y-14) > 1e-9 {
		t.Errorf("Forward(5) = (%v, %v), expected (13, 14)", p.X, p.Y)
	}
	if d := p.Distance(16, 18); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

func TestHomeContains(t *testing.T) {
	h, err := NewHome(700, 300, 20)
	if err != nil {
		t.Fatalf("NewHome() failed: %v", err)
	}

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{700, 300, true},
		{690, 290, true}, // Top-left corner
		{710, 310, true}, // Bottom-right corner
		{690, 310, true}, // Bottom-left corner
		{710, 300, true}, // Right edge
		{689.9, 300, false},
		{710.1, 300, false},
		{700, 289.9, false},
		{700, 310.1, false},
		{0, 0, false},
	}

	for _, tc := range tests {
		if got := h.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHomeSize(t *testing.T) {
	if _, err := NewHome(0, 0, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewHome(size 0) error = %v, expected ErrInvalidSize", err)
	}

	h, _ := NewHome(100, 100, 20)
	if err := h.SetSize(-5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetSize(-5) error = %v, expected ErrInvalidSize", err)
	}
	if h.Size() != 20 {
		t.Errorf("Size() after rejected SetSize = %v, expected 20", h.Size())
	}

	if err := h.SetSize(40); err != nil {
		t.Fatalf("SetSize(40) failed: %v", err)
	}
	if !h.Contains(119, 119) {
		t.Error("Contains(119, 119) should be true after growing to 40")
	}
}

func TestNewPlayerRejectsSpeed(t *testing.T) {
	for _, speed := range []float64{0, -1} {
		if _, err := NewPlayer(nil, 0, 0, speed); !errors.Is(err, ErrInvalidSpeed) {
			t.Errorf("NewPlayer(speed %v) error = %v, expected ErrInvalidSpeed", speed, err)
		}
	}
}

func TestWaypoint(t *testing.T) {
	var w Waypoint
	if w.IsActive() {
		t.Fatal("new waypoint should be inactive")
	}

	w.Activate(10, 20)
	if !w.IsActive() {
		t.Error("IsActive() = false after Activate")
	}
	w.Activate(30, 40)
	if x, y := w.Pos(); x != 30 || y != 40 {
		t.Errorf("Pos() = (%v, %v), expected re-target to (30, 40)", x, y)
	}

	w.Deactivate()
	if w.IsActive() {
		t.Error("IsActive() = true after Deactivate")
	}
}

func TestWaypointRenderFollowsActive(t *testing.T) {
	sc := core.NewScene()
	var w Waypoint
	w.Create(sc)

	w.Render(sc)
	if n := len(sc.Visible()); n != 0 {
		t.Errorf("inactive waypoint draws %d shapes, expected 0", n)
	}

	w.Activate(100, 100)
	w.Render(sc)
	shapes := sc.Visible()
	if len(shapes) != 2 {
		t.Fatalf("active waypoint draws %d shapes, expected 2", len(shapes))
	}
	if shapes[0].X1 != 90 || shapes[0].Y1 != 90 || shapes[0].X2 != 110 || shapes[0].Y2 != 110 {
		t.Errorf("first stroke = %+v, expected (90,90)-(110,110)", shapes[0])
	}

	w.Delete(sc)
	if sc.Len() != 0 {
		t.Errorf("scene has %d shapes after Delete, expected 0", sc.Len())
	}
}

func TestPlayerArrivesAtWaypointOnce(t *testing.T) {
	g := startGame(t, New(), testConfig(800, 500, 1))
	p := g.Player()
	if p.X() != 50 || p.Y() != 250 {
		t.Fatalf("player starts at (%v, %v), expected (50, 250)", p.X(), p.Y())
	}

	g.Waypoint().Activate(100, 250)

	deactivations := 0
	wasActive := true
	for i := 0; i < 30; i++ {
		p.Update()
		active := g.Waypoint().IsActive()
		if wasActive && !active {
			deactivations++
			if i != 9 {
				t.Errorf("waypoint released after %d steps, expected 10", i+1)
			}
		}
		wasActive = active
	}

	if deactivations != 1 {
		t.Errorf("waypoint released %d times, expected 1", deactivations)
	}
	if p.X() != 100 || p.Y() != 250 {
		t.Errorf("player at (%v, %v), expected to rest at (100, 250)", p.X(), p.Y())
	}
}

func TestPlayerOvershootCountsAsArrival(t *testing.T) {
	g := startGame(t, New(), testConfig(800, 500, 1))
	g.Waypoint().Activate(53, 250)

	g.Player().Update()

	if g.Waypoint().IsActive() {
		t.Error("waypoint should be released when within one step")
	}
	if x := g.Player().X(); x != 55 {
		t.Errorf("player x = %v, expected overshoot to 55", x)
	}
}

func TestPlayerWinsOnce(t *testing.T) {
	g := startGame(t, New(), testConfig(800, 600, 1))

	hx, hy := g.Home().Pos()
	if hx != 700 || hy != 300 {
		t.Fatalf("home at (%v, %v), expected (700, 300)", hx, hy)
	}

	g.Player().MoveTo(700, 300)
	g.Advance()
	g.Advance()
	g.GameOverWin()
	g.GameOverLose()

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Errorf("State() = %+v, expected a win", state)
	}
	if state.Tick != 1 {
		t.Errorf("Tick = %d, expected no ticks after the win", state.Tick)
	}

	banners := 0
	for _, sh := range g.Scene().Visible() {
		if sh.Kind == core.ShapeText {
			banners++
			if sh.Text != "You Win" || sh.Color != core.ColorGreen {
				t.Errorf("banner = %q %v, expected green You Win", sh.Text, sh.Color)
			}
		}
	}
	if banners != 1 {
		t.Errorf("found %d banners, expected 1", banners)
	}
}
