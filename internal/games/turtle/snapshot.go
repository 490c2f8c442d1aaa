package turtle

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StatePaused  GameStateType = "paused"
	StateWin     GameStateType = "win"
	StateLose    GameStateType = "lose"
	StateInvalid GameStateType = "invalid"
)

// EnemySnapshot is the position of one enemy.
type EnemySnapshot struct {
	Kind Kind
	X, Y float64
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Level          int
	PlayerX        float64
	PlayerY        float64
	Heading        float64
	WaypointActive bool
	WaypointX      float64
	WaypointY      float64
	Waves          int
	Generator      GeneratorState
	Enemies        []EnemySnapshot
	State          GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.err != nil || g.player == nil {
		return Snapshot{Mode: string(g.mode), State: StateInvalid}
	}

	state := StatePlaying
	switch {
	case g.over && g.won:
		state = StateWin
	case g.over:
		state = StateLose
	case g.paused:
		state = StatePaused
	}

	wx, wy := g.waypoint.Pos()
	enemies := make([]EnemySnapshot, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemySnapshot{Kind: e.Kind(), X: e.X(), Y: e.Y()}
	}

	return Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		Level:          g.level,
		PlayerX:        g.player.X(),
		PlayerY:        g.player.Y(),
		Heading:        g.player.Heading(),
		WaypointActive: g.waypoint.IsActive(),
		WaypointX:      wx,
		WaypointY:      wy,
		Waves:          g.generator.Waves(),
		Generator:      g.generator.State(),
		Enemies:        enemies,
		State:          state,
	}
}

// Outcome returns "win", "lose" or "" while the game is running.
func (g *Game) Outcome() string {
	switch {
	case !g.over:
		return ""
	case g.won:
		return "win"
	default:
		return "lose"
	}
}
