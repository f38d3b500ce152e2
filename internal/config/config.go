// Package config provides YAML-based game configuration loading, validation
// and difficulty management for the arcade.
package config

// JumperConfig contains all configuration for the endless platformer.
// Distances are world units: the canvas is World.Width x World.Height with y
// growing downward, and velocities are units per tick.
type JumperConfig struct {
	World      JumperWorld      `yaml:"world"`
	Player     JumperPlayer     `yaml:"player"`
	Physics    JumperPhysics    `yaml:"physics"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Scoring    JumperScoring    `yaml:"scoring"`
	Input      JumperInput      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Horizontal boundary policies.
const (
	HorizontalWrap  = "wrap"
	HorizontalClamp = "clamp"
)

// Platform placement policies.
const (
	PlacementRandom = "random" // anywhere across the canvas
	PlacementDelta  = "delta"  // within max_horizontal_delta of the previous top platform
)

// Scoring modes.
const (
	ScoreByPlatforms = "platforms"
	ScoreByHeight    = "height"
)

// JumperWorld defines the canvas and scrolling behavior.
type JumperWorld struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Horizontal     string  `yaml:"horizontal"`      // "wrap" or "clamp"
	WrapMargin     float64 `yaml:"wrap_margin"`     // how far past the left edge before wrapping
	ThresholdRatio float64 `yaml:"threshold_ratio"` // scroll once the player rises above this fraction of height
}

// JumperPlayer defines the player's body and start pose.
type JumperPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartY float64 `yaml:"start_y"`
	Speed  float64 `yaml:"speed"` // horizontal speed while steering
}

// JumperPhysics defines vertical motion.
type JumperPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`   // negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 = unlimited
}

// JumperPlatforms defines the platform pool and its generation rules.
type JumperPlatforms struct {
	Count              int     `yaml:"count"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	GapMin             float64 `yaml:"gap_min"`
	GapMax             float64 `yaml:"gap_max"`
	Placement          string  `yaml:"placement"`
	MaxHorizontalDelta float64 `yaml:"max_horizontal_delta"`
}

// JumperScoring selects how the score is counted.
type JumperScoring struct {
	Mode       string  `yaml:"mode"`        // "platforms" or "height"
	HeightUnit float64 `yaml:"height_unit"` // world units per point in height mode
}

// JumperInput tunes how key presses become held directions.
type JumperInput struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Speed      SnakeSpeed       `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the playfield.
type SnakeGrid struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	StartLength int `yaml:"start_length"`
}

// SnakeSpeed defines movement rate in moves per second.
type SnakeSpeed struct {
	Initial  float64 `yaml:"initial"`
	Increase float64 `yaml:"increase"` // added per food eaten
	Max      float64 `yaml:"max"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // one of the Progress* constants
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed multiplier
	GapIncrease     float64 `yaml:"gap_increase"`     // added to platform gaps
	WidthReduction  float64 `yaml:"width_reduction"`  // removed from platform width
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty input yields an empty
// preset, which means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies a difficulty block according to a preset.
// An empty preset leaves it untouched.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
