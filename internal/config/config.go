// Package config provides YAML-based game configuration loading and
// difficulty scheduling for the simulation.
package config

import (
	"errors"
	"fmt"
	"sort"
)

// SpaceConfig contains all configuration for the space garbage game.
type SpaceConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Debris     DebrisConfig     `yaml:"debris"`
	Stars      StarsConfig      `yaml:"stars"`
	Timeline   TimelineConfig   `yaml:"timeline"`
}

// ShipConfig defines the ship's motion model.
type ShipConfig struct {
	BorderIndent     int     `yaml:"border_indent"`      // Gap kept between the ship frame and the playfield edge
	Acceleration     float64 `yaml:"acceleration"`       // Speed gained per tick of held direction
	Fading           float64 `yaml:"fading"`             // Per-tick speed multiplier, in [0, 1)
	RowSpeedLimit    float64 `yaml:"row_speed_limit"`    // Max rows per tick
	ColumnSpeedLimit float64 `yaml:"column_speed_limit"` // Max columns per tick
	StopThreshold    float64 `yaml:"stop_threshold"`     // Speeds below this snap to zero
}

// ProjectileConfig defines the plasma gun shot.
type ProjectileConfig struct {
	RowSpeed    float64 `yaml:"row_speed"`
	ColumnSpeed float64 `yaml:"column_speed"`
}

// DebrisConfig defines falling garbage.
type DebrisConfig struct {
	Speed float64 `yaml:"speed"` // Rows per tick
}

// TickRange is an inclusive range of tick counts.
type TickRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// StarsConfig defines the decorative star field.
type StarsConfig struct {
	Amount       int       `yaml:"amount"`
	BorderIndent int       `yaml:"border_indent"`
	Symbols      string    `yaml:"symbols"`
	DimTicks     TickRange `yaml:"dim_ticks"`
	NormalTicks  TickRange `yaml:"normal_ticks"`
	BoldTicks    TickRange `yaml:"bold_ticks"`
}

// TimelineConfig defines the difficulty clock and its year-indexed schedule.
type TimelineConfig struct {
	StartYear    int            `yaml:"start_year"`
	TicksPerYear int            `yaml:"ticks_per_year"` // 0 freezes the clock
	WeaponYear   int            `yaml:"weapon_year"`
	SpawnDelays  []SpawnStep    `yaml:"spawn_delays"`
	Phrases      map[int]string `yaml:"phrases"`
}

// SpawnStep switches the garbage spawn delay from the given year onward.
type SpawnStep struct {
	From  int `yaml:"from"`  // First year the delay applies
	Ticks int `yaml:"ticks"` // Ticks between spawns, 0 = no spawns
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the configuration for values the simulation cannot use.
func (c SpaceConfig) Validate() error {
	var errs []error

	if c.Ship.Fading < 0 || c.Ship.Fading >= 1 {
		errs = append(errs, fmt.Errorf("ship.fading must be in [0, 1), got %v", c.Ship.Fading))
	}
	if c.Ship.RowSpeedLimit <= 0 || c.Ship.ColumnSpeedLimit <= 0 {
		errs = append(errs, errors.New("ship speed limits must be positive"))
	}
	if c.Ship.Acceleration <= 0 {
		errs = append(errs, errors.New("ship.acceleration must be positive"))
	}
	// A coasting ship only settles at zero through the threshold, and a
	// threshold above the acceleration would swallow every push.
	if c.Ship.StopThreshold <= 0 || c.Ship.StopThreshold >= c.Ship.Acceleration {
		errs = append(errs, fmt.Errorf("ship.stop_threshold must be in (0, acceleration), got %v", c.Ship.StopThreshold))
	}
	if c.Ship.BorderIndent < 0 {
		errs = append(errs, errors.New("ship.border_indent must not be negative"))
	}
	if c.Projectile.RowSpeed == 0 && c.Projectile.ColumnSpeed == 0 {
		errs = append(errs, errors.New("projectile speed must not be zero"))
	}
	if c.Debris.Speed <= 0 {
		errs = append(errs, errors.New("debris.speed must be positive"))
	}
	if c.Stars.Amount < 0 {
		errs = append(errs, errors.New("stars.amount must not be negative"))
	}
	if c.Stars.Amount > 0 && c.Stars.Symbols == "" {
		errs = append(errs, errors.New("stars.symbols must not be empty"))
	}
	for name, r := range map[string]TickRange{
		"dim_ticks":    c.Stars.DimTicks,
		"normal_ticks": c.Stars.NormalTicks,
		"bold_ticks":   c.Stars.BoldTicks,
	} {
		if r.Min < 0 || r.Max < r.Min {
			errs = append(errs, fmt.Errorf("stars.%s: invalid range [%d, %d]", name, r.Min, r.Max))
		}
	}
	if c.Timeline.TicksPerYear < 0 {
		errs = append(errs, errors.New("timeline.ticks_per_year must not be negative"))
	}
	for _, step := range c.Timeline.SpawnDelays {
		if step.Ticks < 0 {
			errs = append(errs, fmt.Errorf("timeline.spawn_delays: negative delay for %d", step.From))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid space config: %w", errors.Join(errs...))
	}
	return nil
}

// sortedSteps returns a copy of steps ordered by year.
func sortedSteps(steps []SpawnStep) []SpawnStep {
	out := make([]SpawnStep, len(steps))
	copy(out, steps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].From < out[j].From
	})
	return out
}
