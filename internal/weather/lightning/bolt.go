// Package lightning implements the branching-bolt growth automaton.
//
// A bolt grows downward one step at a time, occasionally emitting several
// chained segments or a lateral fork. Each segment carries its own birth
// time, so older parts of a still-growing bolt fade while the tip stays
// bright.
package lightning

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-weather/internal/config"
	"github.com/vovakirdan/tui-weather/internal/core"
)

// Segment is one grid cell belonging to a bolt. Immutable once created:
// a bolt only appends segments, never moves existing ones.
type Segment struct {
	Row   int
	Col   int
	Birth time.Time
}

// Bolt is a single lightning strike: Growing -> Decaying -> Dead.
// The segment list is never empty after creation.
type Bolt struct {
	targetLen  int
	growing    bool
	lastGrowth time.Time
	maxRow     int
	maxCol     int
	segs       []Segment
	cfg        config.LightningConfig
	color      core.Color
}

// NewBolt seeds a bolt with one root segment at the given start cell.
// The target length is drawn from [max(2, rows/2), rows-2], with the upper
// bound raised to min+1 on grids too short for that range.
func NewBolt(now time.Time, startRow, startCol, maxRow, maxCol int, rng *rand.Rand, cfg config.LightningConfig, color core.Color) *Bolt {
	minLen := core.Max(2, maxRow/2)
	maxLen := maxRow - 2
	if maxLen < minLen {
		maxLen = minLen + 1
	}

	b := &Bolt{
		targetLen:  minLen + rng.Intn(maxLen-minLen+1),
		growing:    true,
		lastGrowth: now,
		maxRow:     maxRow,
		maxCol:     maxCol,
		cfg:        cfg,
		color:      color,
		segs:       make([]Segment, 0, 64),
	}
	b.segs = append(b.segs, Segment{Row: startRow, Col: startCol, Birth: now})
	return b
}

// Update runs one tick of the automaton and reports whether the bolt is
// still alive. Growth is gated by the configured delay; once a step adds
// nothing, the target length is reached, or the tip sits on the bottom row,
// the bolt only decays.
func (b *Bolt) Update(now time.Time, rng *rand.Rand) bool {
	if b.growing && now.Sub(b.lastGrowth) >= b.cfg.GrowthDelay() {
		b.lastGrowth = now

		tip := b.segs[len(b.segs)-1]
		var added []Segment
		if len(b.segs) < b.targetLen && tip.Row < b.maxRow-1 {
			added = growStep(tip, now, rng, b.cfg, b.maxRow, b.maxCol)
			b.segs = append(b.segs, added...)
		}

		if len(added) == 0 || len(b.segs) >= b.targetLen || tip.Row >= b.maxRow-1 {
			b.growing = false
		}
	}

	return b.Alive(now)
}

// growStep computes the segments one growth step adds below the tip.
// It is a pure function of the tip, the rng, and the bounds, so tests can
// drive it directly with a fixed seed. All segments of a step land on the
// row below the tip, clamped to the grid.
func growStep(tip Segment, now time.Time, rng *rand.Rand, cfg config.LightningConfig, maxRow, maxCol int) []Segment {
	branches := 1
	if rng.Float64() < cfg.BranchChance {
		branches = 1 + rng.Intn(cfg.MaxBranches+1)
	}

	row := core.Min(tip.Row+1, maxRow-1)
	col := tip.Col
	primaryCol := col

	segs := make([]Segment, 0, branches+1)
	for i := 0; i < branches; i++ {
		col = core.Clamp(col+rng.Intn(5)-2, 0, maxCol-1)
		if i == 0 {
			primaryCol = col
		}
		segs = append(segs, Segment{Row: row, Col: col, Birth: now})
	}

	// A fork is a side segment at the same target row with a wider lateral
	// offset, never landing on the primary branch column.
	if rng.Float64() < cfg.ForkChance {
		off := rng.Intn(2*cfg.ForkSpread+1) - cfg.ForkSpread
		if off == 0 {
			if rng.Intn(2) == 0 {
				off = -1
			} else {
				off = 1
			}
		}
		forkCol := core.Clamp(tip.Col+off, 0, maxCol-1)
		if forkCol != primaryCol {
			segs = append(segs, Segment{Row: row, Col: forkCol, Birth: now})
		}
	}

	return segs
}

// Alive reports whether at least one segment is still within its lifespan.
// A dead bolt must be dropped by the scene along with all its segments.
func (b *Bolt) Alive(now time.Time) bool {
	lifespan := b.cfg.SegmentLifespan()
	for _, s := range b.segs {
		if now.Sub(s.Birth) <= lifespan {
			return true
		}
	}
	return false
}

// Growing reports whether the bolt is still adding segments.
func (b *Bolt) Growing() bool {
	return b.growing
}

// Segments returns the bolt's segment list.
func (b *Bolt) Segments() []Segment {
	return b.segs
}

// ShiftTime moves every timestamp forward by d. Used when resuming from
// pause so segment ages stay continuous across the paused interval.
func (b *Bolt) ShiftTime(d time.Duration) {
	b.lastGrowth = b.lastGrowth.Add(d)
	for i := range b.segs {
		b.segs[i].Birth = b.segs[i].Birth.Add(d)
	}
}

// Render draws every live segment, mapping normalized age to a glyph so the
// bolt fades from bright to faint: '#' then '+' then '*'. Expired or
// out-of-grid segments are skipped.
func (b *Bolt) Render(dst *core.Screen, now time.Time) {
	lifespan := b.cfg.SegmentLifespan()
	for _, s := range b.segs {
		age := now.Sub(s.Birth)
		if age > lifespan {
			continue
		}
		if s.Row < 0 || s.Row >= dst.Height() || s.Col < 0 || s.Col >= dst.Width() {
			continue
		}
		dst.SetCell(s.Col, s.Row, core.Cell{
			Rune:  fadeGlyph(float64(age) / float64(lifespan)),
			Color: b.color,
			Attr:  core.AttrBold,
		})
	}
}

// fadeGlyph maps a normalized age in [0, 1] to a fade character.
func fadeGlyph(norm float64) rune {
	switch {
	case norm < 0.33:
		return '#'
	case norm < 0.66:
		return '+'
	default:
		return '*'
	}
}
