package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/turtle-adventure/internal/core"
)

// Validate checks that every size, speed and dimension is positive and that
// enemy colors are known. All problems are reported together.
func (c TurtleConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world: size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %v", c.Player.Speed))
	}
	if c.Home.Size <= 0 {
		errs = append(errs, fmt.Errorf("home.size must be positive, got %v", c.Home.Size))
	}
	if c.Level <= 0 {
		errs = append(errs, fmt.Errorf("level must be positive, got %d", c.Level))
	}
	if c.Generator.SpawnDelayMS < 0 {
		errs = append(errs, fmt.Errorf("generator.spawn_delay_ms must not be negative, got %d", c.Generator.SpawnDelayMS))
	}
	if c.Generator.WaveIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("generator.wave_interval_ms must be positive, got %d", c.Generator.WaveIntervalMS))
	}

	kinds := []struct {
		name string
		cfg  EnemyConfig
	}{
		{"random_walk", c.Enemies.RandomWalk},
		{"chasing", c.Enemies.Chasing},
		{"line_y", c.Enemies.LineY},
		{"fencing", c.Enemies.Fencing.EnemyConfig},
	}
	for _, k := range kinds {
		if k.cfg.Size <= 0 {
			errs = append(errs, fmt.Errorf("enemies.%s.size must be positive, got %v", k.name, k.cfg.Size))
		}
		if k.cfg.Speed <= 0 {
			errs = append(errs, fmt.Errorf("enemies.%s.speed must be positive, got %d", k.name, k.cfg.Speed))
		}
		if _, ok := core.ParseColor(k.cfg.Color); !ok {
			errs = append(errs, fmt.Errorf("enemies.%s.color: unknown color %q", k.name, k.cfg.Color))
		}
	}
	if c.Enemies.Fencing.RadiusStep <= 0 {
		errs = append(errs, fmt.Errorf("enemies.fencing.radius_step must be positive, got %v", c.Enemies.Fencing.RadiusStep))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
