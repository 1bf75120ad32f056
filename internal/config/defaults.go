package config

import (
	_ "embed"
)

//go:embed defaults/space.yaml
var defaultSpaceYAML []byte

// DefaultSpaceConfig returns the built-in configuration.
// It mirrors defaults/space.yaml and is used when the embedded file cannot be parsed.
func DefaultSpaceConfig() SpaceConfig {
	return SpaceConfig{
		Ship: ShipConfig{
			BorderIndent:     1,
			Acceleration:     0.75,
			Fading:           0.8,
			RowSpeedLimit:    2,
			ColumnSpeedLimit: 2,
			StopThreshold:    0.1,
		},
		Projectile: ProjectileConfig{
			RowSpeed:    -0.3,
			ColumnSpeed: 0,
		},
		Debris: DebrisConfig{
			Speed: 0.5,
		},
		Stars: StarsConfig{
			Amount:       50,
			BorderIndent: 2,
			Symbols:      "+*.:",
			DimTicks:     TickRange{Min: 1, Max: 20},
			NormalTicks:  TickRange{Min: 1, Max: 3},
			BoldTicks:    TickRange{Min: 1, Max: 5},
		},
		Timeline: TimelineConfig{
			StartYear:    1957,
			TicksPerYear: 15,
			WeaponYear:   2020,
			SpawnDelays: []SpawnStep{
				{From: 1957, Ticks: 0},
				{From: 1961, Ticks: 20},
				{From: 1969, Ticks: 14},
				{From: 1981, Ticks: 10},
				{From: 1995, Ticks: 8},
				{From: 2010, Ticks: 6},
				{From: 2020, Ticks: 2},
			},
			Phrases: map[int]string{
				1957: "First Sputnik",
				1961: "Gagarin flew!",
				1969: "Armstrong got on the moon!",
				1971: "First orbital space station Salute-1",
				1981: "Flight of the Shuttle Columbia",
				1998: "ISS start building",
				2011: "Messenger launch to Mercury",
				2020: "Take the plasma gun! Shoot the garbage!",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSpaceYAML
}
