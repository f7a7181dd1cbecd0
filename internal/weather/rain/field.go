// Package rain implements the falling-raindrop particle field.
package rain

import (
	"math/rand"

	"github.com/vovakirdan/tui-weather/internal/config"
	"github.com/vovakirdan/tui-weather/internal/core"
)

// Drop is a single falling particle. Row is fractional so slow drops can
// take several ticks to cross one cell; Speed is in rows per tick.
type Drop struct {
	Col   int
	Row   float64
	Speed float64
	Glyph rune
}

var glyphs = []rune{'|', '.', '`'}

// Field owns the raindrop collection: it spawns, advances, and removes drops.
type Field struct {
	drops   []Drop
	rng     *rand.Rand
	cfg     config.RainConfig
	color   core.Color
	screenW int
	screenH int
}

// NewField creates a raindrop field with the given RNG seed.
func NewField(seed int64, screenW, screenH int, cfg config.RainConfig, color core.Color) *Field {
	return &Field{
		drops:   make([]Drop, 0, 256),
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		color:   color,
		screenW: screenW,
		screenH: screenH,
	}
}

// Reset clears all drops and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.drops = f.drops[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Resize updates the screen dimensions and discards all in-flight drops:
// coordinates are grid-relative, so stale positions would be meaningless.
func (f *Field) Resize(screenW, screenH int) {
	f.screenW = screenW
	f.screenH = screenH
	f.drops = f.drops[:0]
}

// Update runs one simulation tick: a spawn roll followed by the advance pass.
func (f *Field) Update(thunder bool) {
	genChance := f.cfg.CalmGenChance
	if thunder {
		genChance = f.cfg.StormGenChance
	}
	if f.rng.Float64() < genChance {
		f.SpawnBatch(thunder)
	}
	f.Advance()
}

// SpawnBatch creates a batch of new drops at the top row and returns how
// many were added. Thunderstorm mode raises both the batch cap and the
// speed ceiling.
func (f *Field) SpawnBatch(thunder bool) int {
	divisor := f.cfg.CalmDensityDivisor
	maxSpeed := f.cfg.CalmMaxSpeed
	if thunder {
		divisor = f.cfg.StormDensityDivisor
		maxSpeed = f.cfg.StormMaxSpeed
	}

	maxNew := f.screenW / divisor
	n := 1
	if maxNew > 1 {
		n = 1 + f.rng.Intn(maxNew)
	}

	cols := core.Max(f.screenW, 1)
	for i := 0; i < n; i++ {
		f.drops = append(f.drops, Drop{
			Col:   f.rng.Intn(cols),
			Row:   0,
			Speed: f.cfg.MinSpeed + f.rng.Float64()*(maxSpeed-f.cfg.MinSpeed),
			Glyph: glyphs[f.rng.Intn(len(glyphs))],
		})
	}
	return n
}

// Advance moves every drop down by its speed and removes drops whose
// integer row has reached the bottom of the grid.
func (f *Field) Advance() {
	live := f.drops[:0]
	for _, d := range f.drops {
		d.Row += d.Speed
		if int(d.Row) < f.screenH {
			live = append(live, d)
		}
	}
	f.drops = live
}

// Drops returns the current live drops.
func (f *Field) Drops() []Drop {
	return f.drops
}

// Render draws every live drop into the screen buffer. Drops are bold under
// a thunderstorm; slow drops outside one render dim. Out-of-bounds drops
// are skipped, though Advance should never leave any.
func (f *Field) Render(dst *core.Screen, thunder bool) {
	for _, d := range f.drops {
		row := int(d.Row)
		if row < 0 || row >= f.screenH || d.Col < 0 || d.Col >= f.screenW {
			continue
		}

		attr := core.AttrNormal
		switch {
		case thunder:
			attr = core.AttrBold
		case d.Speed < 0.8:
			attr = core.AttrDim
		}

		dst.SetCell(d.Col, row, core.Cell{Rune: d.Glyph, Color: f.color, Attr: attr})
	}
}
