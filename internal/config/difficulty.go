package config

import "math"

// DifficultyManager maps run progress to a level in [0, 1] and scales game
// parameters by it. A disabled manager stays at the initial level.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the level moves with progress.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level interpolates from the initial level to 1 as score or ticks approach
// progression.max_at, depending on the progression type.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
	}

	var done float64
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = float64(score)
	case ProgressTime:
		done = float64(ticks)
	default:
		return d.base
	}
	target := float64(max(1, d.cfg.Progression.MaxAt))
	return d.base + unit(done/target)*(1-d.base)
}

// Speed returns base scaled up to base * (1 + speed_multiplier) at max level.
func (d *DifficultyManager) Speed(base float64, score int, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// GapRange widens [gapMin, gapMax] by up to gap_increase as difficulty grows.
// Both bounds are capped at limit, the largest gap the player can still clear.
func (d *DifficultyManager) GapRange(gapMin, gapMax, limit float64, score int, ticks int) (float64, float64) {
	extra := d.Level(score, ticks) * d.cfg.Scaling.GapIncrease
	return math.Min(gapMin+extra, limit), math.Min(gapMax+extra, limit)
}

// PlatformWidth narrows base by up to width_reduction, never below minWidth.
func (d *DifficultyManager) PlatformWidth(base, minWidth float64, score int, ticks int) float64 {
	return math.Max(base-d.Level(score, ticks)*d.cfg.Scaling.WidthReduction, minWidth)
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
