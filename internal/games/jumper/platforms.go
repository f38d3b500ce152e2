package jumper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// IndexModulus bounds platform indices; the counter wraps to 0 here.
const IndexModulus uint64 = 1 << 53

// NoIndex is the "nothing landed yet" sentinel. It is never produced by the
// pool because it lies outside [0, IndexModulus).
const NoIndex uint64 = math.MaxUint64

// Platform is a landing surface. Only its top edge (Y) collides.
type Platform struct {
	X, Y   float64
	Width  float64
	Height float64
	Index  uint64
}

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Pool is the fixed-capacity set of platforms. Platforms are never removed:
// once one scrolls below the world it is recycled in place above the current
// top, which keeps the pool a ring ordered by height.
type Pool struct {
	platforms  []Platform
	nextIndex  uint64
	rng        *rand.Rand
	cfg        *config.JumperConfig
	difficulty *config.DifficultyManager
}

// NewPool creates an empty pool. Call Generate before use.
func NewPool(cfg *config.JumperConfig, diff *config.DifficultyManager, rng *rand.Rand) *Pool {
	return &Pool{
		platforms:  make([]Platform, 0, cfg.Platforms.Count),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
}

// Generate lays out a fresh pool. Platform 0 sits directly under a player
// whose horizontal center is centerX and whose feet are at floorY; the rest
// climb upward from it with reachable gaps. Indices restart at 0.
func (p *Pool) Generate(centerX, floorY float64) {
	width := p.cfg.Platforms.Width
	p.platforms = p.platforms[:0]
	p.platforms = append(p.platforms, Platform{
		X:      core.ClampF(centerX-width/2, 0, p.cfg.World.Width-width),
		Y:      floorY,
		Width:  width,
		Height: p.cfg.Platforms.Height,
		Index:  0,
	})

	for i := 1; i < p.cfg.Platforms.Count; i++ {
		prev := p.platforms[i-1]
		p.platforms = append(p.platforms, Platform{
			X:      p.placeX(prev.X, width),
			Y:      prev.Y - p.gap(0, 0),
			Width:  width,
			Height: p.cfg.Platforms.Height,
			Index:  uint64(i),
		})
	}
	p.nextIndex = uint64(len(p.platforms)) % IndexModulus
}

// Platforms returns the pool in stored order.
func (p *Pool) Platforms() []Platform {
	return p.platforms
}

// Len returns the pool size.
func (p *Pool) Len() int {
	return len(p.platforms)
}

// Top returns the highest platform (smallest Y).
func (p *Pool) Top() Platform {
	top := p.platforms[0]
	for _, pl := range p.platforms[1:] {
		if pl.Y < top.Y {
			top = pl
		}
	}
	return top
}

// lowest returns the position of the platform with the largest Y.
func (p *Pool) lowest() int {
	low := 0
	for i, pl := range p.platforms {
		if pl.Y > p.platforms[low].Y {
			low = i
		}
	}
	return low
}

// Scroll shifts every platform down by dy.
func (p *Pool) Scroll(dy float64) {
	for i := range p.platforms {
		p.platforms[i].Y += dy
	}
}

// Recycle moves every platform whose top is below floorY to above the
// current top platform, lowest first, and returns how many moved. Indices
// therefore keep following height: each recycled platform takes its old
// index plus the pool size. score and ticks feed the difficulty curve for
// the new gap and width.
func (p *Pool) Recycle(floorY float64, score, ticks int) int {
	recycled := 0
	for range p.platforms {
		i := p.lowest()
		if p.platforms[i].Y <= floorY {
			break
		}

		top := p.Top()
		width := p.difficulty.PlatformWidth(
			p.cfg.Platforms.Width, math.Min(p.cfg.Platforms.Width, p.cfg.Player.Width), score, ticks)

		pl := &p.platforms[i]
		pl.Width = width
		pl.Y = top.Y - p.gap(score, ticks)
		pl.X = p.placeX(top.X, width)
		pl.Index = p.takeIndex()
		recycled++
	}
	return recycled
}

// GapLimit is the largest vertical gap the pool generates.
func (p *Pool) GapLimit() float64 {
	return p.cfg.MaxGap()
}

// gap draws a vertical distance from the difficulty-adjusted range.
func (p *Pool) gap(score, ticks int) float64 {
	lo, hi := p.difficulty.GapRange(p.cfg.Platforms.GapMin, p.cfg.Platforms.GapMax, p.GapLimit(), score, ticks)
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Float64()*(hi-lo)
}

// placeX picks a left edge for a platform of the given width, either anywhere
// or within max_horizontal_delta of prevX.
func (p *Pool) placeX(prevX, width float64) float64 {
	maxX := p.cfg.World.Width - width
	if p.cfg.Platforms.Placement == config.PlacementDelta {
		delta := (p.rng.Float64()*2 - 1) * p.cfg.Platforms.MaxHorizontalDelta
		return core.ClampF(prevX+delta, 0, maxX)
	}
	return p.rng.Float64() * maxX
}

func (p *Pool) takeIndex() uint64 {
	idx := p.nextIndex
	p.nextIndex = (p.nextIndex + 1) % IndexModulus
	return idx
}
