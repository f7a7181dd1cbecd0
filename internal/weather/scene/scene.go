// Package scene drives the weather simulation: it owns the raindrop field
// and the live bolts, consumes input actions, and renders one frame per tick.
package scene

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-weather/internal/config"
	"github.com/vovakirdan/tui-weather/internal/core"
	"github.com/vovakirdan/tui-weather/internal/weather/lightning"
	"github.com/vovakirdan/tui-weather/internal/weather/rain"
)

// Scene is the fixed-timestep driver for the weather animation.
// All mutation happens inside Step; there is no background work.
type Scene struct {
	cfg       core.RuntimeConfig
	weather   config.WeatherConfig
	rainColor core.Color
	boltColor core.Color

	rng   *rand.Rand
	field *rain.Field
	bolts []*lightning.Bolt

	thunder  bool
	paused   bool
	pausedAt time.Time
	now      time.Time
	tick     uint64
}

// New creates a scene with the given tuning. Call Reset before stepping.
func New(weather config.WeatherConfig) *Scene {
	return &Scene{
		weather:   weather,
		rainColor: core.ParseColor(weather.Colors.Rain, core.ColorCyan),
		boltColor: core.ParseColor(weather.Colors.Lightning, core.ColorYellow),
	}
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.cfg = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.field = rain.NewField(cfg.Seed, cfg.ScreenW, cfg.ScreenH, s.weather.Rain, s.rainColor)
	s.bolts = s.bolts[:0]
	s.paused = false
	s.tick = 0
}

// SetThunder sets thunderstorm mode directly (used by the --thunder flag).
func (s *Scene) SetThunder(on bool) {
	s.thunder = on
}

// Resize adopts new grid dimensions and clears both collections: in-flight
// drops and bolts hold grid-relative coordinates that would be meaningless
// after a dimension change.
func (s *Scene) Resize(width, height int) {
	s.cfg.ScreenW = width
	s.cfg.ScreenH = height
	s.field.Resize(width, height)
	s.bolts = s.bolts[:0]
}

// Step advances the simulation by one tick at the given time.
func (s *Scene) Step(now time.Time, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionToggleThunder) {
		s.thunder = !s.thunder
	}

	if in.Has(core.ActionPause) {
		if s.paused {
			// Resuming: shift every timestamp forward by the paused
			// duration so segment ages stay continuous.
			d := now.Sub(s.pausedAt)
			for _, b := range s.bolts {
				b.ShiftTime(d)
			}
			s.paused = false
		} else {
			s.paused = true
			s.pausedAt = now
		}
	}

	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.now = now
	s.tick++

	strikes := 0
	if s.thunder && len(s.bolts) < s.weather.Lightning.MaxBolts &&
		s.rng.Float64() < s.weather.Lightning.StrikeChance {
		s.spawnBolt(now)
		strikes++
	}

	// Update bolts, dropping dead ones in place
	live := s.bolts[:0]
	for _, b := range s.bolts {
		if b.Update(now, s.rng) {
			live = append(live, b)
		}
	}
	s.bolts = live

	s.field.Update(s.thunder)

	return core.StepResult{State: s.State(), Strikes: strikes}
}

// spawnBolt creates a bolt with its start column biased to the middle half
// of the width and its start row in the top fifth of the grid (the whole
// height on grids of five rows or fewer).
func (s *Scene) spawnBolt(now time.Time) {
	cols, rows := s.cfg.ScreenW, s.cfg.ScreenH

	startCol := cols/4 + s.rng.Intn(core.Max(cols/2, 1))
	rowRange := rows
	if rows > 5 {
		rowRange = rows / 5
	}
	startRow := s.rng.Intn(core.Max(rowRange, 1))

	s.bolts = append(s.bolts, lightning.NewBolt(
		now, startRow, startCol, rows, cols, s.rng, s.weather.Lightning, s.boltColor))
}

// Render draws the current frame: bolts first, rain second, so a raindrop
// overwrites a bolt segment sharing its cell. That draw order is the
// observed behavior being preserved, not depth compositing.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	for _, b := range s.bolts {
		b.Render(dst, s.now)
	}
	s.field.Render(dst, s.thunder)
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{
		Thunder: s.thunder,
		Paused:  s.paused,
		Drops:   len(s.field.Drops()),
		Bolts:   len(s.bolts),
	}
}
