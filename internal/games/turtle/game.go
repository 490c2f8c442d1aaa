// Package turtle implements Turtle Adventure: guide the turtle to home by
// clicking waypoints while enemies wander, chase, patrol and sweep the field.
package turtle

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/turtle-adventure/internal/config"
	"github.com/vovakirdan/turtle-adventure/internal/core"
	"github.com/vovakirdan/turtle-adventure/internal/registry"
)

// Mode selects whether enemies arrive once or keep coming.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const defaultTickRate = 60

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p := config.DifficultyPreset(preset)
	if !config.IsKnownPreset(p) {
		p = ""
	}
	difficultyPreset = p
}

type enemyLooks struct {
	randomWalk  Look
	chasing     Look
	lineY       Look
	fencing     Look
	fencingStep float64
}

func looksFromConfig(ec config.EnemiesConfig) (enemyLooks, error) {
	var l enemyLooks
	var err error
	if l.randomWalk, err = lookFromConfig(ec.RandomWalk); err != nil {
		return l, fmt.Errorf("random_walk: %w", err)
	}
	if l.chasing, err = lookFromConfig(ec.Chasing); err != nil {
		return l, fmt.Errorf("chasing: %w", err)
	}
	if l.lineY, err = lookFromConfig(ec.LineY); err != nil {
		return l, fmt.Errorf("line_y: %w", err)
	}
	if l.fencing, err = lookFromConfig(ec.Fencing.EnemyConfig); err != nil {
		return l, fmt.Errorf("fencing: %w", err)
	}
	if ec.Fencing.RadiusStep <= 0 {
		return l, fmt.Errorf("fencing radius step %v: %w", ec.Fencing.RadiusStep, ErrInvalidSize)
	}
	l.fencingStep = ec.Fencing.RadiusStep
	return l, nil
}

// Game is the Turtle Adventure controller. It owns every entity, the scene
// they draw into and the scheduler that spawns enemies.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.TurtleConfig
	err     error

	rng     *rand.Rand
	scene   *core.Scene
	sched   core.Scheduler
	tickDur time.Duration
	view    core.Viewport

	width, height float64
	level         int
	tick          uint64

	waypoint  *Waypoint
	home      *Home
	player    *Player
	enemies   []Enemy
	elements  []Entity // Update order: waypoint, home, player, enemies by spawn
	generator *EnemyGenerator
	looks     enemyLooks

	over   bool
	won    bool
	paused bool
	banner core.ShapeID
}

// New creates a classic mode game with a single enemy wave.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless mode game where waves keep growing.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("turtle", func() registry.Game {
		return New()
	})
	registry.Register("turtle_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "turtle_endless"
	}
	return "turtle"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Turtle Adventure (Endless)"
	}
	return "Turtle Adventure"
}

// Reset loads configuration and starts a fresh session.
// A session that cannot start keeps the error and renders it instead of a field.
// An explicit config path that fails to load is such an error; only the
// default search falls back to built-in values.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTurtle(configPath)
	if err != nil {
		if configPath != "" {
			g.err = err
			return
		}
		cfg = config.DefaultTurtleConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTurtlePreset(&cfg, difficultyPreset)
	}
	g.err = g.Start(cfg, rc)
}

// Start builds a new session from cfg. The world is cfg.World unless rc is a
// pixel canvas, in which case the world is the canvas. A positive rc.Level
// overrides cfg.Level.
func (g *Game) Start(cfg config.TurtleConfig, rc core.RuntimeConfig) error {
	width, height := float64(cfg.World.Width), float64(cfg.World.Height)
	if rc.Pixels {
		width, height = float64(rc.ScreenW), float64(rc.ScreenH)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("world %vx%v: %w", width, height, ErrInvalidScreen)
	}

	level := cfg.Level
	if rc.Level != 0 {
		level = rc.Level
	}
	if level <= 0 {
		return fmt.Errorf("level %d: %w", level, ErrInvalidLevel)
	}

	looks, err := looksFromConfig(cfg.Enemies)
	if err != nil {
		return err
	}

	effective := cfg
	effective.Level = level
	effective.World.Width, effective.World.Height = int(width), int(height)
	if err := effective.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	mid := math.Floor(height / 2)
	home, err := NewHome(width-cfg.Home.OffsetX, mid, cfg.Home.Size)
	if err != nil {
		return err
	}

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}

	g.runtime = rc
	g.cfg = cfg
	g.err = nil
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.scene = core.NewScene()
	g.sched.Reset()
	g.tickDur = time.Second / time.Duration(tickRate)
	g.width, g.height = width, height
	g.level = level
	g.tick = 0
	g.looks = looks
	g.enemies = nil
	g.elements = nil
	g.over, g.won, g.paused = false, false, false
	g.banner = 0

	player, err := NewPlayer(g, cfg.Player.StartX, mid, cfg.Player.Speed)
	if err != nil {
		return err
	}

	g.waypoint = &Waypoint{}
	g.AddElement(g.waypoint)
	g.home = home
	g.AddElement(g.home)
	g.player = player
	g.AddElement(g.player)

	g.generator = newEnemyGenerator(g, level,
		time.Duration(cfg.Generator.SpawnDelayMS)*time.Millisecond,
		time.Duration(cfg.Generator.WaveIntervalMS)*time.Millisecond,
		g.mode == ModeEndless)

	g.renderAll()
	return nil
}

// Err returns the reason the last Reset failed, if it did.
func (g *Game) Err() error {
	return g.err
}

// AddElement registers an entity for per-tick update and render.
func (g *Game) AddElement(e Entity) {
	e.Create(g.scene)
	g.elements = append(g.elements, e)
}

// AddEnemy adds an enemy to the game.
func (g *Game) AddEnemy(e Enemy) {
	g.enemies = append(g.enemies, e)
	g.AddElement(e)
}

// Click activates the waypoint at a world position.
func (g *Game) Click(x, y float64) {
	if g.over || g.waypoint == nil {
		return
	}
	g.waypoint.Activate(x, y)
}

// Step handles input then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.scene == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.paused || g.over {
		return core.StepResult{State: g.State()}
	}

	for _, c := range in.Clicks {
		if g.runtime.Pixels {
			g.Click(float64(c.X), float64(c.Y))
			continue
		}
		if x, y, ok := g.view.ToWorld(c.X, c.Y); ok {
			g.Click(x, y)
		}
	}

	g.Advance()
	return core.StepResult{State: g.State()}
}

// Advance runs one tick: due timers fire, every element updates in insertion
// order, removed enemies are dropped and the scene is refreshed. Nothing
// updates once the game is over.
func (g *Game) Advance() {
	if g.over {
		return
	}
	g.tick++
	g.sched.Advance(g.tickDur)

	for _, e := range g.elements {
		if g.over {
			break
		}
		e.Update()
	}

	g.sweep()
	g.renderAll()
}

// sweep releases enemies that removed themselves.
func (g *Game) sweep() {
	removed := 0
	for _, e := range g.enemies {
		if e.Removed() {
			removed++
		}
	}
	if removed == 0 {
		return
	}

	enemies := make([]Enemy, 0, len(g.enemies)-removed)
	for _, e := range g.enemies {
		if e.Removed() {
			e.Delete(g.scene)
			continue
		}
		enemies = append(enemies, e)
	}
	g.enemies = enemies

	elements := make([]Entity, 0, len(g.elements)-removed)
	for _, e := range g.elements {
		if en, ok := e.(Enemy); ok && en.Removed() {
			continue
		}
		elements = append(elements, e)
	}
	g.elements = elements
}

func (g *Game) renderAll() {
	for _, e := range g.elements {
		e.Render(g.scene)
	}
	if g.banner != 0 {
		g.scene.Raise(g.banner)
	}
}

// GameOverWin ends the game as a win. Only the first outcome counts.
func (g *Game) GameOverWin() {
	g.finish(true)
}

// GameOverLose ends the game as a loss. Only the first outcome counts.
func (g *Game) GameOverLose() {
	g.finish(false)
}

func (g *Game) finish(won bool) {
	if g.over {
		return
	}
	g.over = true
	g.won = won
	g.sched.Cancel()

	text, c := "You Lose", core.ColorRed
	if won {
		text, c = "You Win", core.ColorGreen
	}
	g.banner = g.scene.CreateText(g.width/2, g.height/2, text, c)
}

func (g *Game) randomX() float64 {
	return float64(g.rng.Intn(int(g.width) + 1))
}

func (g *Game) randomY() float64 {
	return float64(g.rng.Intn(int(g.height) + 1))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:    g.level,
		Tick:     g.tick,
		Enemies:  len(g.enemies),
		GameOver: g.over,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Scene returns the retained drawables.
func (g *Game) Scene() *core.Scene { return g.scene }

// WorldSize returns the playfield size in world units.
func (g *Game) WorldSize() (float64, float64) { return g.width, g.height }

// Player returns the turtle.
func (g *Game) Player() *Player { return g.player }

// Home returns the goal square.
func (g *Game) Home() *Home { return g.home }

// Waypoint returns the click target.
func (g *Game) Waypoint() *Waypoint { return g.waypoint }

// Generator returns the enemy generator.
func (g *Game) Generator() *EnemyGenerator { return g.generator }

// Enemies returns the live enemies in spawn order.
func (g *Game) Enemies() []Enemy {
	return append([]Enemy(nil), g.enemies...)
}

// Level returns the active level.
func (g *Game) Level() int { return g.level }

// Mode returns classic or endless.
func (g *Game) Mode() Mode { return g.mode }

// Ensure Game implements the registry interfaces
var (
	_ registry.Game          = (*Game)(nil)
	_ registry.SceneProvider = (*Game)(nil)
)
