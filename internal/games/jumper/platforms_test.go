package jumper

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
)

func newTestPool(cfg *config.JumperConfig, seed int64) *Pool {
	p := NewPool(cfg, config.NewDifficultyManager(cfg.Difficulty), rand.New(rand.NewSource(seed)))
	p.Generate(cfg.World.Width/2, cfg.Player.StartY+cfg.Player.Height)
	return p
}

// checkGaps verifies that consecutive platforms, ordered by height, are never
// further apart than limit and that every platform fits inside the canvas
// horizontally.
func checkGaps(t *testing.T, pool []Platform, limit float64) {
	t.Helper()
	sorted := append([]Platform(nil), pool...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Y < sorted[j].Y })

	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Y - sorted[i-1].Y
		if gap > limit+1e-9 {
			t.Fatalf("gap %v between platforms %d and %d exceeds reach %v",
				gap, sorted[i-1].Index, sorted[i].Index, limit)
		}
	}
}

func TestPoolGenerate(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := newTestPool(&cfg, 1)

	if p.Len() != cfg.Platforms.Count {
		t.Fatalf("Len() = %d, want %d", p.Len(), cfg.Platforms.Count)
	}

	floor := p.Platforms()[0]
	if floor.Y != 530 {
		t.Errorf("floor platform y = %v, want 530", floor.Y)
	}
	if floor.X != 170 {
		t.Errorf("floor platform x = %v, want 170 (centered)", floor.X)
	}

	for i, pl := range p.Platforms() {
		if pl.Index != uint64(i) {
			t.Errorf("platform %d has index %d", i, pl.Index)
		}
		if pl.X < 0 || pl.X+pl.Width > cfg.World.Width {
			t.Errorf("platform %d at x=%v does not fit the canvas", i, pl.X)
		}
		if i == 0 {
			continue
		}
		gap := p.Platforms()[i-1].Y - pl.Y
		if gap < cfg.Platforms.GapMin || gap > cfg.Platforms.GapMax {
			t.Errorf("gap %v above platform %d outside [%v, %v]", gap, i-1, cfg.Platforms.GapMin, cfg.Platforms.GapMax)
		}
	}
}

func TestPoolRecycle(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := newTestPool(&cfg, 5)
	limit := cfg.MaxJumpHeight()

	var maxSeen uint64
	for _, pl := range p.Platforms() {
		maxSeen = max(maxSeen, pl.Index)
	}

	for round := 0; round < 500; round++ {
		p.Scroll(37)
		n := p.Recycle(cfg.World.Height, round, round)

		if p.Len() != cfg.Platforms.Count {
			t.Fatalf("round %d: Len() = %d", round, p.Len())
		}
		for _, pl := range p.Platforms() {
			if pl.Y > cfg.World.Height {
				t.Fatalf("round %d: platform %d left below the world at %v", round, pl.Index, pl.Y)
			}
		}
		checkGaps(t, p.Platforms(), limit)

		// Recycled platforms take fresh, increasing indices.
		var top uint64
		for _, pl := range p.Platforms() {
			top = max(top, pl.Index)
		}
		if n > 0 && top != maxSeen+uint64(n) {
			t.Fatalf("round %d: top index %d, want %d", round, top, maxSeen+uint64(n))
		}
		maxSeen = top
	}

	if maxSeen < 100 {
		t.Errorf("expected many recycles, highest index %d", maxSeen)
	}
}

func TestPoolRecycleLowestFirst(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Platforms.GapMin = 60
	cfg.Platforms.GapMax = 60
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	p := newTestPool(&cfg, 13)
	n := uint64(cfg.Platforms.Count)

	wrapped := 0
	for round := 0; round < 100; round++ {
		before := append([]Platform(nil), p.Platforms()...)
		p.Scroll(150)
		p.Recycle(cfg.World.Height, 0, 0)

		after := p.Platforms()
		for i := range after {
			if after[i].Index == before[i].Index {
				continue
			}
			if want := (before[i].Index + n) % IndexModulus; after[i].Index != want {
				t.Fatalf("round %d: position %d took index %d, want %d", round, i, after[i].Index, want)
			}
		}
		last := len(after) - 1
		if after[0].Index != before[0].Index && after[last].Index != before[last].Index {
			wrapped++
		}

		byHeight := append([]Platform(nil), after...)
		sort.Slice(byHeight, func(i, j int) bool { return byHeight[i].Y > byHeight[j].Y })
		for i := 1; i < len(byHeight); i++ {
			if byHeight[i].Index <= byHeight[i-1].Index {
				t.Fatalf("round %d: index %d sits below index %d", round, byHeight[i-1].Index, byHeight[i].Index)
			}
		}
	}

	if wrapped == 0 {
		t.Error("no round recycled both ends of the pool at once")
	}
}

func TestPoolRecycleTakesTopPosition(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := newTestPool(&cfg, 9)

	p.Scroll(80) // floor platform moves to 610
	oldTop := p.Top()
	if n := p.Recycle(cfg.World.Height, 0, 0); n != 1 {
		t.Fatalf("recycled %d platforms, want 1", n)
	}

	recycled := p.Platforms()[0]
	if recycled.Index != uint64(cfg.Platforms.Count) {
		t.Errorf("recycled index = %d, want %d", recycled.Index, cfg.Platforms.Count)
	}
	if p.Top() != recycled {
		t.Errorf("recycled platform should be the new top")
	}
	gap := oldTop.Y - recycled.Y
	if gap < cfg.Platforms.GapMin || gap > cfg.Platforms.GapMax {
		t.Errorf("gap %v outside [%v, %v]", gap, cfg.Platforms.GapMin, cfg.Platforms.GapMax)
	}
}

func TestPoolDifficultyNarrowsAndWidens(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Difficulty.InitialLevel = 1
	cfg.Difficulty.Progression.Type = "none"
	p := newTestPool(&cfg, 3)

	p.Scroll(80)
	oldTop := p.Top()
	p.Recycle(cfg.World.Height, 0, 0)
	pl := p.Platforms()[0]

	if pl.Width != 40 {
		t.Errorf("width at max difficulty = %v, want 40", pl.Width)
	}
	gap := oldTop.Y - pl.Y
	if gap < 110 || gap > 160 {
		t.Errorf("gap at max difficulty = %v, want within [110, 160]", gap)
	}
}

func TestPoolGapCappedAtReach(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Platforms.GapMin = 150
	cfg.Platforms.GapMax = 170
	cfg.Difficulty.InitialLevel = 1
	cfg.Difficulty.Progression.Type = "none"
	p := newTestPool(&cfg, 3)
	limit := cfg.MaxJumpHeight()

	for i := 0; i < 200; i++ {
		p.Scroll(60)
		p.Recycle(cfg.World.Height, 0, 0)
		checkGaps(t, p.Platforms(), limit)
	}
}

func TestPoolDeltaPlacement(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Platforms.Placement = config.PlacementDelta
	cfg.Platforms.MaxHorizontalDelta = 40
	p := newTestPool(&cfg, 11)

	pool := p.Platforms()
	for i := 1; i < len(pool); i++ {
		if d := math.Abs(pool[i].X - pool[i-1].X); d > 40+1e-9 {
			t.Errorf("platform %d shifted %v from its predecessor, want <= 40", i, d)
		}
	}
}

func TestPoolIndexWraps(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := newTestPool(&cfg, 1)
	p.nextIndex = IndexModulus - 1

	if got := p.takeIndex(); got != IndexModulus-1 {
		t.Errorf("takeIndex() = %d, want %d", got, IndexModulus-1)
	}
	if got := p.takeIndex(); got != 0 {
		t.Errorf("takeIndex() after the modulus = %d, want 0", got)
	}
}
