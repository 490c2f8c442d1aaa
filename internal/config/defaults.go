package config

import (
	_ "embed"
)

//go:embed defaults/turtle.yaml
var defaultTurtleYAML []byte

// DefaultTurtleConfig returns the default Turtle Adventure configuration.
func DefaultTurtleConfig() TurtleConfig {
	return TurtleConfig{
		World: WorldConfig{
			Width:  800,
			Height: 500,
		},
		Player: PlayerConfig{
			StartX: 50,
			Speed:  5,
		},
		Home: HomeConfig{
			OffsetX: 100,
			Size:    20,
		},
		Enemies: EnemiesConfig{
			RandomWalk: EnemyConfig{Size: 10, Color: "red", Speed: 30},
			Chasing:    EnemyConfig{Size: 15, Color: "blue", Speed: 3},
			LineY:      EnemyConfig{Size: 5, Color: "black", Speed: 30},
			Fencing: FencingConfig{
				EnemyConfig: EnemyConfig{Size: 10, Color: "purple", Speed: 5},
				RadiusStep:  30,
			},
		},
		Generator: GeneratorConfig{
			SpawnDelayMS:   100,
			WaveIntervalMS: 10000,
		},
		Level: 1,
	}
}

// DefaultYAML returns the embedded default YAML, used by `turtle config`.
func DefaultYAML() []byte {
	return defaultTurtleYAML
}
