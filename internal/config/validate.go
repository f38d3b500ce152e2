package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// MaxJumpHeight returns the apex of a jump under discrete per-tick
// integration (velocity is updated before position, as the simulation does).
// It is the reachability limit for vertical platform gaps.
func (c JumperConfig) MaxJumpHeight() float64 {
	g := c.Physics.Gravity
	if g <= 0 || c.Physics.JumpImpulse >= 0 {
		return 0
	}
	rise := 0.0
	for v := -c.Physics.JumpImpulse - g; v > 0; v -= g {
		rise += v
	}
	return rise
}

// MaxGap is the largest vertical gap between platforms, one gravity step
// below the jump apex.
func (c JumperConfig) MaxGap() float64 {
	return max(0, c.MaxJumpHeight()-c.Physics.Gravity)
}

// ScrollThreshold returns the y above which the world scrolls.
func (c JumperConfig) ScrollThreshold() float64 {
	return c.World.Height * c.World.ThresholdRatio
}

// Validate checks the config and fails fast with an error wrapping
// ErrInvalidConfig that names the first offending field.
func (c JumperConfig) Validate() error {
	w, p, ph, pl := c.World, c.Player, c.Physics, c.Platforms

	switch {
	case w.Width <= 0 || w.Height <= 0:
		return invalid("world", "size must be positive, got %gx%g", w.Width, w.Height)
	case w.Horizontal != HorizontalWrap && w.Horizontal != HorizontalClamp:
		return invalid("world.horizontal", "must be %q or %q, got %q", HorizontalWrap, HorizontalClamp, w.Horizontal)
	case w.WrapMargin < 0:
		return invalid("world.wrap_margin", "must not be negative, got %g", w.WrapMargin)
	case w.ThresholdRatio <= 0 || w.ThresholdRatio >= 1:
		return invalid("world.threshold_ratio", "must be in (0, 1), got %g", w.ThresholdRatio)
	case p.Width <= 0 || p.Height <= 0:
		return invalid("player", "size must be positive, got %gx%g", p.Width, p.Height)
	case p.Width > w.Width:
		return invalid("player.width", "%g exceeds world width %g", p.Width, w.Width)
	case p.StartY < 0 || p.StartY+p.Height > w.Height:
		return invalid("player.start_y", "%g puts the player outside the world", p.StartY)
	case p.Speed < 0:
		return invalid("player.speed", "must not be negative, got %g", p.Speed)
	case ph.Gravity <= 0:
		return invalid("physics.gravity", "must be positive, got %g", ph.Gravity)
	case ph.JumpImpulse >= 0:
		return invalid("physics.jump_impulse", "must be negative (upward), got %g", ph.JumpImpulse)
	case ph.MaxFallSpeed < 0:
		return invalid("physics.max_fall_speed", "must not be negative, got %g", ph.MaxFallSpeed)
	case pl.Count <= 0:
		return invalid("platforms.count", "must be positive, got %d", pl.Count)
	case pl.Width <= 0 || pl.Height <= 0:
		return invalid("platforms", "size must be positive, got %gx%g", pl.Width, pl.Height)
	case pl.Width > w.Width:
		return invalid("platforms.width", "%g exceeds world width %g", pl.Width, w.Width)
	case pl.GapMin <= 0:
		return invalid("platforms.gap_min", "must be positive, got %g", pl.GapMin)
	case pl.GapMin > pl.GapMax:
		return invalid("platforms.gap_min", "%g is greater than gap_max %g", pl.GapMin, pl.GapMax)
	case pl.GapMax > c.MaxGap():
		return invalid("platforms.gap_max", "%g exceeds the reachable gap %g", pl.GapMax, c.MaxGap())
	case pl.Placement != PlacementRandom && pl.Placement != PlacementDelta:
		return invalid("platforms.placement", "must be %q or %q, got %q", PlacementRandom, PlacementDelta, pl.Placement)
	case pl.Placement == PlacementDelta && pl.MaxHorizontalDelta <= 0:
		return invalid("platforms.max_horizontal_delta", "must be positive for delta placement, got %g", pl.MaxHorizontalDelta)
	case c.Scoring.Mode != ScoreByPlatforms && c.Scoring.Mode != ScoreByHeight:
		return invalid("scoring.mode", "must be %q or %q, got %q", ScoreByPlatforms, ScoreByHeight, c.Scoring.Mode)
	case c.Scoring.Mode == ScoreByHeight && c.Scoring.HeightUnit <= 0:
		return invalid("scoring.height_unit", "must be positive, got %g", c.Scoring.HeightUnit)
	case c.Input.HoldTicks < 0:
		return invalid("input.hold_ticks", "must not be negative, got %d", c.Input.HoldTicks)
	}
	return validateDifficulty(c.Difficulty)
}

// Validate checks the Snake config.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < 5 || c.Grid.Height < 5:
		return invalid("grid", "must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height)
	case c.Grid.StartLength < 1 || c.Grid.StartLength > c.Grid.Width/2:
		return invalid("grid.start_length", "must be in [1, %d], got %d", c.Grid.Width/2, c.Grid.StartLength)
	case c.Speed.Initial <= 0:
		return invalid("speed.initial", "must be positive, got %g", c.Speed.Initial)
	case c.Speed.Increase < 0:
		return invalid("speed.increase", "must not be negative, got %g", c.Speed.Increase)
	case c.Speed.Max < c.Speed.Initial:
		return invalid("speed.max", "%g is below speed.initial %g", c.Speed.Max, c.Speed.Initial)
	}
	return validateDifficulty(c.Difficulty)
}

func validateDifficulty(d DifficultyConfig) error {
	switch d.Progression.Type {
	case ProgressScore, ProgressTime, ProgressNone, "":
	default:
		return invalid("difficulty.progression.type", "must be score, time or none, got %q", d.Progression.Type)
	}
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return invalid("difficulty.initial_level", "must be in [0, 1], got %g", d.InitialLevel)
	}
	return nil
}
