package config

import (
	_ "embed"
)

//go:embed defaults/weather.yaml
var defaultWeatherYAML []byte

// DefaultWeatherConfig returns the default scene configuration.
func DefaultWeatherConfig() WeatherConfig {
	return WeatherConfig{
		Colors: ColorsConfig{
			Rain:      "cyan",
			Lightning: "yellow",
		},
		Rain: RainConfig{
			MinSpeed:            0.3,
			CalmMaxSpeed:        0.6,
			StormMaxSpeed:       1.0,
			CalmGenChance:       0.3,
			StormGenChance:      0.5,
			CalmDensityDivisor:  15,
			StormDensityDivisor: 8,
		},
		Lightning: LightningConfig{
			StrikeChance:      0.005,
			MaxBolts:          3,
			GrowthDelayMS:     2,
			SegmentLifespanMS: 800,
			BranchChance:      0.3,
			MaxBranches:       2,
			ForkChance:        0.15,
			ForkSpread:        3,
		},
	}
}
