package turtle

import "time"

// GeneratorState is the spawn state of an EnemyGenerator.
type GeneratorState int

const (
	GeneratorPending GeneratorState = iota // A wave is scheduled
	GeneratorFired                         // The last scheduled wave has spawned
)

// String returns a readable name for the state.
func (s GeneratorState) String() string {
	if s == GeneratorPending {
		return "pending"
	}
	return "fired"
}

// EnemyGenerator spawns waves of enemies through the game's scheduler.
// A wave runs level iterations, each adding one enemy of every kind.
// In classic mode a single wave fires; in endless mode the generator re-arms
// after every wave and each new wave is one iteration larger.
type EnemyGenerator struct {
	game     *Game
	level    int
	endless  bool
	interval time.Duration
	state    GeneratorState
	waves    int
}

func newEnemyGenerator(g *Game, level int, delay, interval time.Duration, endless bool) *EnemyGenerator {
	gen := &EnemyGenerator{
		game:     g,
		level:    level,
		endless:  endless,
		interval: interval,
		state:    GeneratorPending,
	}
	g.sched.After(delay, gen.fire)
	return gen
}

// Level returns the number of iterations in the first wave.
func (gen *EnemyGenerator) Level() int { return gen.level }

// State returns whether a wave is still pending.
func (gen *EnemyGenerator) State() GeneratorState { return gen.state }

// Waves returns how many waves have spawned.
func (gen *EnemyGenerator) Waves() int { return gen.waves }

func (gen *EnemyGenerator) fire() {
	if gen.game.over {
		return
	}
	gen.state = GeneratorFired
	gen.waves++
	gen.spawnWave(gen.level + gen.waves - 1)

	if gen.endless {
		gen.state = GeneratorPending
		gen.game.sched.After(gen.interval, gen.fire)
	}
}

// spawnWave adds n groups. Line enemies are spread evenly across the width
// and fencing enemies patrol nested squares around home.
func (gen *EnemyGenerator) spawnWave(n int) {
	g := gen.game
	looks := g.looks
	spacing := g.width / float64(n+1)
	hx, hy := g.home.Pos()

	for i := 0; i < n; i++ {
		g.AddEnemy(NewRandomWalkEnemy(g, looks.randomWalk, g.randomX(), g.randomY()))
		g.AddEnemy(NewChasingEnemy(g, looks.chasing, g.randomX(), g.randomY()))
		g.AddEnemy(NewLineYEnemy(g, looks.lineY, float64(i+1)*spacing, 0))

		dis := float64(i+1) * looks.fencingStep
		// dis is positive here: fencingStep is validated when the game starts.
		fence, _ := NewFencingEnemy(g, looks.fencing, hx-dis, hy-dis, dis)
		g.AddEnemy(fence)
	}
}
