package lightning

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-weather/internal/config"
	"github.com/vovakirdan/tui-weather/internal/core"
)

var testCfg = config.DefaultWeatherConfig().Lightning

func newTestBolt(seed int64, rows, cols int) (*Bolt, *rand.Rand, time.Time) {
	rng := rand.New(rand.NewSource(seed))
	now := time.Unix(1000, 0)
	b := NewBolt(now, 2, cols/2, rows, cols, rng, testCfg, core.ColorYellow)
	return b, rng, now
}

func TestNewBoltSeedsRootSegment(t *testing.T) {
	b, _, now := newTestBolt(1, 24, 80)

	if len(b.Segments()) != 1 {
		t.Fatalf("new bolt has %d segments, expected 1", len(b.Segments()))
	}
	root := b.Segments()[0]
	if root.Row != 2 || root.Col != 40 || !root.Birth.Equal(now) {
		t.Errorf("root segment = %+v", root)
	}
	if !b.Growing() {
		t.Error("new bolt should be growing")
	}
}

func TestTargetLengthBounds(t *testing.T) {
	// 24 rows: target in [12, 22]
	for seed := int64(0); seed < 50; seed++ {
		b, _, _ := newTestBolt(seed, 24, 80)
		if b.targetLen < 12 || b.targetLen > 22 {
			t.Fatalf("seed %d: target length %d, expected [12, 22]", seed, b.targetLen)
		}
	}
}

func TestTargetLengthTinyGrid(t *testing.T) {
	// 3 rows: minLen = 2, maxLen raised to 3
	for seed := int64(0); seed < 20; seed++ {
		b, _, _ := newTestBolt(seed, 3, 80)
		if b.targetLen < 2 || b.targetLen > 3 {
			t.Fatalf("seed %d: target length %d, expected [2, 3]", seed, b.targetLen)
		}
	}
}

func TestGrowthGatedByDelay(t *testing.T) {
	b, rng, now := newTestBolt(3, 24, 80)

	// Within the growth delay nothing is added
	b.Update(now.Add(time.Millisecond), rng)
	if len(b.Segments()) != 1 {
		t.Errorf("bolt grew before the growth delay elapsed: %d segments", len(b.Segments()))
	}

	// Past the delay the bolt must add at least one segment
	b.Update(now.Add(5*time.Millisecond), rng)
	if len(b.Segments()) < 2 {
		t.Errorf("bolt did not grow after the delay: %d segments", len(b.Segments()))
	}
}

func TestGrowStepBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	now := time.Unix(1000, 0)

	for i := 0; i < 500; i++ {
		tip := Segment{Row: rng.Intn(24), Col: rng.Intn(80), Birth: now}
		segs := growStep(tip, now, rng, testCfg, 24, 80)

		// 1..maxBranches+1 chained segments plus at most one fork
		if len(segs) < 1 || len(segs) > testCfg.MaxBranches+2 {
			t.Fatalf("growStep added %d segments, expected 1..%d", len(segs), testCfg.MaxBranches+2)
		}

		wantRow := core.Min(tip.Row+1, 23)
		for _, s := range segs {
			if s.Row != wantRow {
				t.Fatalf("segment row %d, expected %d", s.Row, wantRow)
			}
			if s.Col < 0 || s.Col >= 80 {
				t.Fatalf("segment col %d out of bounds", s.Col)
			}
		}
	}
}

func TestGrowStepForkAvoidsPrimaryColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	now := time.Unix(1000, 0)
	cfg := testCfg
	cfg.BranchChance = 0 // single chained segment per step
	cfg.ForkChance = 1   // always attempt a fork

	for i := 0; i < 500; i++ {
		tip := Segment{Row: 5, Col: 40, Birth: now}
		segs := growStep(tip, now, rng, cfg, 24, 80)

		if len(segs) == 2 && segs[1].Col == segs[0].Col {
			t.Fatalf("fork landed on the primary branch column %d", segs[0].Col)
		}
		// Fork offset is forced non-zero from the tip column
		if len(segs) == 2 && segs[1].Col == tip.Col {
			t.Fatalf("fork offset was zero")
		}
	}
}

func TestSegmentCountBounded(t *testing.T) {
	b, rng, now := newTestBolt(17, 24, 80)

	// Drive the bolt until growth stalls. One step can overshoot the target
	// by at most maxBranches+1 chained segments plus one fork.
	for i := 1; i <= 200 && b.Growing(); i++ {
		b.Update(now.Add(time.Duration(i)*5*time.Millisecond), rng)
	}

	bound := b.targetLen + testCfg.MaxBranches + 2
	if len(b.Segments()) > bound {
		t.Errorf("bolt holds %d segments, bound is %d (target %d)", len(b.Segments()), bound, b.targetLen)
	}
	if len(b.Segments()) == 0 {
		t.Error("segment list must never be empty while the bolt exists")
	}
	if b.Growing() {
		t.Error("bolt should have stopped growing")
	}
}

func TestGrowthStopsAtBottomRow(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	now := time.Unix(1000, 0)
	// Root on the bottom row: the first gated update must end growth
	b := NewBolt(now, 23, 40, 24, 80, rng, testCfg, core.ColorYellow)

	b.Update(now.Add(5*time.Millisecond), rng)
	if b.Growing() {
		t.Error("bolt rooted at the bottom row should stop growing immediately")
	}
	if len(b.Segments()) != 1 {
		t.Errorf("bolt at bottom row added segments: %d", len(b.Segments()))
	}
}

func TestAliveUntilAllSegmentsExpire(t *testing.T) {
	b, rng, now := newTestBolt(4, 24, 80)

	if !b.Alive(now.Add(b.cfg.SegmentLifespan())) {
		t.Error("bolt with a segment exactly at the lifespan should be alive")
	}

	// A single segment aged past the lifespan kills the bolt on next update
	expired := now.Add(b.cfg.SegmentLifespan() + time.Millisecond)
	b.growing = false
	if b.Update(expired, rng) {
		t.Error("bolt whose only segment expired should report dead")
	}
}

func TestFadeGlyphMapping(t *testing.T) {
	tests := []struct {
		norm     float64
		expected rune
	}{
		{0.0, '#'},
		{0.32, '#'},
		{0.33, '+'},
		{0.65, '+'},
		{0.66, '*'},
		{1.0, '*'},
	}

	for _, tc := range tests {
		if got := fadeGlyph(tc.norm); got != tc.expected {
			t.Errorf("fadeGlyph(%.2f) = %q, expected %q", tc.norm, got, tc.expected)
		}
	}
}

func TestRenderFadesAndSkipsExpired(t *testing.T) {
	now := time.Unix(1000, 0)
	b := &Bolt{
		cfg:    testCfg,
		color:  core.ColorYellow,
		maxRow: 24,
		maxCol: 80,
		segs: []Segment{
			{Row: 1, Col: 1, Birth: now},                                    // fresh: '#'
			{Row: 2, Col: 2, Birth: now.Add(-400 * time.Millisecond)},       // mid: '+'
			{Row: 3, Col: 3, Birth: now.Add(-700 * time.Millisecond)},       // old: '*'
			{Row: 4, Col: 4, Birth: now.Add(-900 * time.Millisecond)},       // expired
			{Row: 50, Col: 90, Birth: now},                                  // out of grid
		},
	}

	dst := core.NewScreen(80, 24)
	b.Render(dst, now)

	if dst.Get(1, 1) != '#' {
		t.Errorf("fresh segment = %q, expected '#'", dst.Get(1, 1))
	}
	if dst.Get(2, 2) != '+' {
		t.Errorf("mid-age segment = %q, expected '+'", dst.Get(2, 2))
	}
	if dst.Get(3, 3) != '*' {
		t.Errorf("old segment = %q, expected '*'", dst.Get(3, 3))
	}
	if dst.Get(4, 4) != ' ' {
		t.Errorf("expired segment should not draw, got %q", dst.Get(4, 4))
	}
	if c := dst.GetCell(1, 1); c.Attr != core.AttrBold || c.Color != core.ColorYellow {
		t.Errorf("segment style = %+v, expected bold yellow", c)
	}
}

func TestShiftTimePreservesAges(t *testing.T) {
	b, rng, now := newTestBolt(8, 24, 80)
	for i := 1; i <= 10; i++ {
		b.Update(now.Add(time.Duration(i)*5*time.Millisecond), rng)
	}

	pause := 3 * time.Second
	aliveBefore := b.Alive(now.Add(50 * time.Millisecond))
	b.ShiftTime(pause)
	aliveAfter := b.Alive(now.Add(50*time.Millisecond + pause))

	if aliveBefore != aliveAfter {
		t.Error("shifting time should preserve segment ages across a pause")
	}
}
