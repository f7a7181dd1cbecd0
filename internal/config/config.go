// Package config provides YAML-based tuning for the weather scene.
package config

import "time"

// WeatherConfig contains all tunable parameters for the scene.
type WeatherConfig struct {
	Colors    ColorsConfig    `yaml:"colors"`
	Rain      RainConfig      `yaml:"rain"`
	Lightning LightningConfig `yaml:"lightning"`
}

// ColorsConfig names the palette colors for the two scene layers.
// Unknown names fall back to the defaults (cyan rain, yellow lightning).
type ColorsConfig struct {
	Rain      string `yaml:"rain"`
	Lightning string `yaml:"lightning"`
}

// RainConfig defines the raindrop field parameters.
// Density divisors set the per-tick spawn cap as screen width / divisor.
type RainConfig struct {
	MinSpeed            float64 `yaml:"min_speed"`
	CalmMaxSpeed        float64 `yaml:"calm_max_speed"`
	StormMaxSpeed       float64 `yaml:"storm_max_speed"`
	CalmGenChance       float64 `yaml:"calm_gen_chance"`
	StormGenChance      float64 `yaml:"storm_gen_chance"`
	CalmDensityDivisor  int     `yaml:"calm_density_divisor"`
	StormDensityDivisor int     `yaml:"storm_density_divisor"`
}

// LightningConfig defines the bolt automaton parameters.
type LightningConfig struct {
	StrikeChance      float64 `yaml:"strike_chance"`
	MaxBolts          int     `yaml:"max_bolts"`
	GrowthDelayMS     int     `yaml:"growth_delay_ms"`
	SegmentLifespanMS int     `yaml:"segment_lifespan_ms"`
	BranchChance      float64 `yaml:"branch_chance"`
	MaxBranches       int     `yaml:"max_branches"`
	ForkChance        float64 `yaml:"fork_chance"`
	ForkSpread        int     `yaml:"fork_spread"`
}

// GrowthDelay returns the minimum interval between bolt growth steps.
func (c LightningConfig) GrowthDelay() time.Duration {
	return time.Duration(c.GrowthDelayMS) * time.Millisecond
}

// SegmentLifespan returns how long a segment stays visible before fading out.
func (c LightningConfig) SegmentLifespan() time.Duration {
	return time.Duration(c.SegmentLifespanMS) * time.Millisecond
}
