// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for Turtle Adventure.
package config

// TurtleConfig contains all configuration for the Turtle Adventure game.
type TurtleConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Home      HomeConfig      `yaml:"home"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Generator GeneratorConfig `yaml:"generator"`
	Level     int             `yaml:"level"` // Number of enemy groups per wave
}

// WorldConfig defines the playfield size in world units (pixels).
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the turtle's start and speed.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"` // Start y is always the vertical middle
	Speed  float64 `yaml:"speed"`
}

// HomeConfig defines the goal square.
type HomeConfig struct {
	OffsetX float64 `yaml:"offset_x"` // Distance of the centre from the right edge
	Size    float64 `yaml:"size"`
}

// EnemyConfig defines one enemy kind.
type EnemyConfig struct {
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
	Speed int     `yaml:"speed"`
}

// FencingConfig extends EnemyConfig with the patrol radius growth per group.
type FencingConfig struct {
	EnemyConfig `yaml:",inline"`
	RadiusStep  float64 `yaml:"radius_step"`
}

// EnemiesConfig groups the four enemy kinds.
type EnemiesConfig struct {
	RandomWalk EnemyConfig   `yaml:"random_walk"`
	Chasing    EnemyConfig   `yaml:"chasing"`
	LineY      EnemyConfig   `yaml:"line_y"`
	Fencing    FencingConfig `yaml:"fencing"`
}

// GeneratorConfig defines enemy wave timing.
type GeneratorConfig struct {
	SpawnDelayMS   int `yaml:"spawn_delay_ms"`   // Delay before the first wave
	WaveIntervalMS int `yaml:"wave_interval_ms"` // Delay between waves in endless mode
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// LevelForPreset returns the level for a difficulty preset.
// Fixed and unknown presets keep the configured level.
func LevelForPreset(preset DifficultyPreset, configured int) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 4
	default:
		return configured
	}
}

// IsKnownPreset reports whether the preset name is recognised.
// The empty preset is accepted and means "use the config".
func IsKnownPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
