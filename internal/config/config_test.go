package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no custom path should not fail: %v", err)
	}

	want := DefaultWeatherConfig()

	if cfg.Colors != want.Colors {
		t.Errorf("Colors = %+v, expected %+v", cfg.Colors, want.Colors)
	}
	if cfg.Rain != want.Rain {
		t.Errorf("Rain = %+v, expected %+v", cfg.Rain, want.Rain)
	}
	if cfg.Lightning != want.Lightning {
		t.Errorf("Lightning = %+v, expected %+v", cfg.Lightning, want.Lightning)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weather.yaml")

	yaml := `
colors:
  rain: green
  lightning: white
lightning:
  strike_chance: 0.02
  max_bolts: 1
  segment_lifespan_ms: 400
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Colors.Rain != "green" {
		t.Errorf("rain color = %q, expected green", cfg.Colors.Rain)
	}
	if cfg.Lightning.MaxBolts != 1 {
		t.Errorf("max bolts = %d, expected 1", cfg.Lightning.MaxBolts)
	}
	if cfg.Lightning.SegmentLifespan() != 400*time.Millisecond {
		t.Errorf("segment lifespan = %v, expected 400ms", cfg.Lightning.SegmentLifespan())
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("explicit config path that does not exist should be an error")
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultWeatherConfig()

	if cfg.Lightning.GrowthDelay() != 2*time.Millisecond {
		t.Errorf("GrowthDelay() = %v, expected 2ms", cfg.Lightning.GrowthDelay())
	}
	if cfg.Lightning.SegmentLifespan() != 800*time.Millisecond {
		t.Errorf("SegmentLifespan() = %v, expected 800ms", cfg.Lightning.SegmentLifespan())
	}
}
