package turtle

import (
	"fmt"
	"math"

	"github.com/vovakirdan/turtle-adventure/internal/config"
	"github.com/vovakirdan/turtle-adventure/internal/core"
)

// Kind identifies an enemy variant.
type Kind int

const (
	KindRandomWalk Kind = iota
	KindChasing
	KindFencing
	KindLineY
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRandomWalk:
		return "random_walk"
	case KindChasing:
		return "chasing"
	case KindFencing:
		return "fencing"
	case KindLineY:
		return "line_y"
	default:
		return "unknown"
	}
}

// Enemy is an entity that ends the game when it touches the player.
type Enemy interface {
	Entity
	Kind() Kind
	X() float64
	Y() float64
	Size() float64
	Speed() int
	MoveTo(x, y float64)
	HitsPlayer() bool
	Removed() bool
}

// Look is the size, colour and speed shared by every enemy of one kind.
type Look struct {
	Size  float64
	Color core.Color
	Speed int
}

// NewLook validates an enemy look.
func NewLook(size float64, c core.Color, speed int) (Look, error) {
	if size <= 0 {
		return Look{}, fmt.Errorf("enemy size %v: %w", size, ErrInvalidSize)
	}
	if speed <= 0 {
		return Look{}, fmt.Errorf("enemy speed %d: %w", speed, ErrInvalidSpeed)
	}
	return Look{Size: size, Color: c, Speed: speed}, nil
}

// lookFromConfig resolves the colour name and validates the rest.
func lookFromConfig(ec config.EnemyConfig) (Look, error) {
	c, ok := core.ParseColor(ec.Color)
	if !ok {
		return Look{}, fmt.Errorf("%q: %w", ec.Color, ErrInvalidColor)
	}
	return NewLook(ec.Size, c, ec.Speed)
}

type enemyBase struct {
	game    *Game
	x, y    float64
	look    Look
	removed bool
	id      core.ShapeID
}

func (e *enemyBase) X() float64    { return e.x }
func (e *enemyBase) Y() float64    { return e.y }
func (e *enemyBase) Size() float64 { return e.look.Size }
func (e *enemyBase) Speed() int    { return e.look.Speed }

// Removed reports whether the enemy has taken itself out of play.
func (e *enemyBase) Removed() bool { return e.removed }

// MoveTo places the enemy at (x, y) without any bounds check.
func (e *enemyBase) MoveTo(x, y float64) {
	e.x, e.y = x, y
}

// HitX reports whether x has left [0, width].
func (e *enemyBase) HitX() bool {
	return e.x < 0 || e.x > e.game.width
}

// HitY reports whether y has left [0, height].
func (e *enemyBase) HitY() bool {
	return e.y < 0 || e.y > e.game.height
}

// HitsPlayer reports whether the player stands inside the enemy's square.
func (e *enemyBase) HitsPlayer() bool {
	p := e.game.player
	return core.SquareAt(e.x, e.y, e.look.Size).Contains(p.X(), p.Y())
}

// step moves by (dx, dy) and undoes each axis that left the playfield.
func (e *enemyBase) step(dx, dy float64) {
	e.x += dx
	if e.HitX() {
		e.x -= dx
	}
	e.y += dy
	if e.HitY() {
		e.y -= dy
	}
}

func (e *enemyBase) checkHit() {
	if e.HitsPlayer() {
		e.game.GameOverLose()
	}
}

func (e *enemyBase) Create(sc *core.Scene) {
	e.id = sc.Create(core.ShapeOval, e.look.Color)
}

func (e *enemyBase) Render(sc *core.Scene) {
	box := core.SquareAt(e.x, e.y, e.look.Size)
	x1, y1 := box.Min()
	x2, y2 := box.Max()
	sc.Coords(e.id, x1, y1, x2, y2)
	sc.SetVisible(e.id, !e.removed)
}

func (e *enemyBase) Delete(sc *core.Scene) {
	sc.Delete(e.id)
}

// RandomWalkEnemy jitters by a random whole offset in [-speed, speed] on each axis.
type RandomWalkEnemy struct {
	enemyBase
}

// NewRandomWalkEnemy creates a random walker at (x, y).
func NewRandomWalkEnemy(g *Game, look Look, x, y float64) *RandomWalkEnemy {
	return &RandomWalkEnemy{enemyBase{game: g, x: x, y: y, look: look}}
}

func (e *RandomWalkEnemy) Kind() Kind { return KindRandomWalk }

func (e *RandomWalkEnemy) Update() {
	s := e.look.Speed
	dx := float64(e.game.rng.Intn(2*s+1) - s)
	dy := float64(e.game.rng.Intn(2*s+1) - s)
	e.step(dx, dy)
	e.checkHit()
}

// ChasingEnemy moves speed units straight at the player every tick.
type ChasingEnemy struct {
	enemyBase
}

// NewChasingEnemy creates a chaser at (x, y).
func NewChasingEnemy(g *Game, look Look, x, y float64) *ChasingEnemy {
	return &ChasingEnemy{enemyBase{game: g, x: x, y: y, look: look}}
}

func (e *ChasingEnemy) Kind() Kind { return KindChasing }

// Update measures the bearing from the y axis, so sin gives the x component
// and cos the y component. This is the same direction as atan2(dy, dx).
func (e *ChasingEnemy) Update() {
	p := e.game.player
	bearing := math.Atan2(p.X()-e.x, p.Y()-e.y)
	s := float64(e.look.Speed)
	e.step(math.Sin(bearing)*s, math.Cos(bearing)*s)
	e.checkHit()
}

// FencingEnemy patrols the edge of a square of half-width dis around home.
// Starting from the top-left corner it walks down, right, up, then left,
// which is counter-clockwise on a y-down screen.
type FencingEnemy struct {
	enemyBase
	dis float64
}

// NewFencingEnemy creates a patroller at (x, y) with patrol radius dis.
func NewFencingEnemy(g *Game, look Look, x, y, dis float64) (*FencingEnemy, error) {
	if dis <= 0 {
		return nil, fmt.Errorf("patrol radius %v: %w", dis, ErrInvalidSize)
	}
	return &FencingEnemy{enemyBase: enemyBase{game: g, x: x, y: y, look: look}, dis: dis}, nil
}

func (e *FencingEnemy) Kind() Kind { return KindFencing }

// Dis returns the patrol radius.
func (e *FencingEnemy) Dis() float64 { return e.dis }

// Update removes the enemy if its square does not fit the playfield, otherwise
// advances along the current edge. Steps stop at the corner so that the next
// edge is always picked up.
func (e *FencingEnemy) Update() {
	if e.removed {
		return
	}
	hx, hy := e.game.home.Pos()
	square := core.SquareAt(hx, hy, 2*e.dis)
	if !square.Within(e.game.width, e.game.height) {
		e.removed = true
		return
	}
	left, top := square.Min()
	right, bottom := square.Max()

	s := float64(e.look.Speed)
	switch {
	case e.x == left && e.y < bottom:
		e.y = math.Min(e.y+s, bottom)
	case e.x < right && e.y == bottom:
		e.x = math.Min(e.x+s, right)
	case e.x == right && e.y > top:
		e.y = math.Max(e.y-s, top)
	case e.x > left && e.y == top:
		e.x = math.Max(e.x-s, left)
	default:
		// Off the path after a MoveTo: rejoin at the first corner.
		e.x, e.y = left, top
	}
	e.checkHit()
}

// LineYEnemy sweeps up and down a fixed column.
type LineYEnemy struct {
	enemyBase
	up bool
}

// NewLineYEnemy creates a sweeper at (x, y), moving down first.
func NewLineYEnemy(g *Game, look Look, x, y float64) *LineYEnemy {
	return &LineYEnemy{enemyBase: enemyBase{game: g, x: x, y: y, look: look}}
}

func (e *LineYEnemy) Kind() Kind { return KindLineY }

// GoingUp reports the current sweep direction.
func (e *LineYEnemy) GoingUp() bool { return e.up }

func (e *LineYEnemy) Update() {
	switch {
	case e.y <= 0:
		e.up = false
	case e.y >= e.game.height:
		e.up = true
	}

	s := float64(e.look.Speed)
	if e.up {
		s = -s
	}
	e.y += s
	if e.HitY() {
		e.y -= s
		e.up = !e.up
	}
	e.checkHit()
}
