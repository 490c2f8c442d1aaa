package turtle

import (
	"fmt"

	"github.com/vovakirdan/turtle-adventure/internal/core"
)

// Entity is anything the game updates and draws every tick.
// Create allocates drawables once, Render refreshes them after Update,
// Delete releases them.
type Entity interface {
	Create(sc *core.Scene)
	Update()
	Render(sc *core.Scene)
	Delete(sc *core.Scene)
}

// waypointArm is the half-length of each stroke of the waypoint cross.
const waypointArm = 10

// Waypoint is the target the player walks towards. A click activates it.
type Waypoint struct {
	x, y   float64
	active bool
	lines  [2]core.ShapeID
}

// Activate moves the waypoint to (x, y) and turns it on.
// Calling it while active re-targets the player.
func (w *Waypoint) Activate(x, y float64) {
	w.x, w.y = x, y
	w.active = true
}

// Deactivate turns the waypoint off.
func (w *Waypoint) Deactivate() {
	w.active = false
}

// IsActive reports whether the player should be walking towards the waypoint.
func (w *Waypoint) IsActive() bool {
	return w.active
}

// Pos returns the waypoint position.
func (w *Waypoint) Pos() (float64, float64) {
	return w.x, w.y
}

func (w *Waypoint) Create(sc *core.Scene) {
	w.lines[0] = sc.Create(core.ShapeLine, core.ColorGreen)
	w.lines[1] = sc.Create(core.ShapeLine, core.ColorGreen)
}

// Update does nothing: the waypoint only changes on input.
func (w *Waypoint) Update() {}

func (w *Waypoint) Render(sc *core.Scene) {
	sc.Coords(w.lines[0], w.x-waypointArm, w.y-waypointArm, w.x+waypointArm, w.y+waypointArm)
	sc.Coords(w.lines[1], w.x+waypointArm, w.y-waypointArm, w.x-waypointArm, w.y+waypointArm)
	sc.SetVisible(w.lines[0], w.active)
	sc.SetVisible(w.lines[1], w.active)
}

func (w *Waypoint) Delete(sc *core.Scene) {
	sc.Delete(w.lines[0])
	sc.Delete(w.lines[1])
}

// Home is the square the player must reach.
type Home struct {
	x, y float64
	size float64
	id   core.ShapeID
}

// NewHome creates a home square centred on (x, y).
func NewHome(x, y, size float64) (*Home, error) {
	if size <= 0 {
		return nil, fmt.Errorf("home size %v: %w", size, ErrInvalidSize)
	}
	return &Home{x: x, y: y, size: size}, nil
}

// Pos returns the centre of home.
func (h *Home) Pos() (float64, float64) {
	return h.x, h.y
}

// Size returns the side length.
func (h *Home) Size() float64 {
	return h.size
}

// SetSize changes the side length.
func (h *Home) SetSize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("home size %v: %w", size, ErrInvalidSize)
	}
	h.size = size
	return nil
}

// Contains reports whether (x, y) is inside home, edges included.
func (h *Home) Contains(x, y float64) bool {
	return core.SquareAt(h.x, h.y, h.size).Contains(x, y)
}

func (h *Home) Create(sc *core.Scene) {
	h.id = sc.Create(core.ShapeRect, core.ColorBrown)
}

func (h *Home) Update() {}

func (h *Home) Render(sc *core.Scene) {
	x1, y1 := core.SquareAt(h.x, h.y, h.size).Min()
	x2, y2 := core.SquareAt(h.x, h.y, h.size).Max()
	sc.Coords(h.id, x1, y1, x2, y2)
}

func (h *Home) Delete(sc *core.Scene) {
	sc.Delete(h.id)
}

// Player is the turtle. It walks towards the active waypoint and wins on reaching home.
type Player struct {
	game  *Game
	pen   Pen
	speed float64
	id    core.ShapeID
}

// NewPlayer creates a player at (x, y) that moves speed units per tick.
func NewPlayer(g *Game, x, y, speed float64) (*Player, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("player speed %v: %w", speed, ErrInvalidSpeed)
	}
	return &Player{game: g, pen: Pen{X: x, Y: y}, speed: speed}, nil
}

// X returns the player's horizontal position.
func (p *Player) X() float64 { return p.pen.X }

// Y returns the player's vertical position.
func (p *Player) Y() float64 { return p.pen.Y }

// Heading returns the direction the turtle faces in degrees.
func (p *Player) Heading() float64 { return p.pen.Heading }

// Speed returns the distance covered per tick.
func (p *Player) Speed() float64 { return p.speed }

// MoveTo places the player at (x, y).
func (p *Player) MoveTo(x, y float64) {
	p.pen.Goto(x, y)
}

// Update checks for arrival at home, then takes one step towards the waypoint.
// The waypoint is released once the remaining distance is under one step.
func (p *Player) Update() {
	g := p.game
	if g.home.Contains(p.pen.X, p.pen.Y) {
		g.GameOverWin()
		return
	}

	wp := g.waypoint
	if !wp.IsActive() {
		return
	}
	p.pen.SetHeading(p.pen.Towards(wp.x, wp.y))
	p.pen.Forward(p.speed)
	if p.pen.Distance(wp.x, wp.y) < p.speed {
		wp.Deactivate()
	}
}

func (p *Player) Create(sc *core.Scene) {
	p.id = sc.Create(core.ShapeMarker, core.ColorGreen)
}

func (p *Player) Render(sc *core.Scene) {
	sc.Coords(p.id, p.pen.X, p.pen.Y, p.pen.X, p.pen.Y)
	sc.SetHeading(p.id, p.pen.Heading)
	sc.Raise(p.id)
}

func (p *Player) Delete(sc *core.Scene) {
	sc.Delete(p.id)
}
