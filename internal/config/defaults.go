package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultJumperConfig returns the built-in platformer configuration.
// It mirrors defaults/jumper.yaml and backs it up if the embed cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: JumperWorld{
			Width:          400,
			Height:         600,
			Horizontal:     HorizontalWrap,
			WrapMargin:     0,
			ThresholdRatio: 1.0 / 3.0,
		},
		Player: JumperPlayer{
			Width:  30,
			Height: 30,
			StartY: 500,
			Speed:  5,
		},
		Physics: JumperPhysics{
			Gravity:      0.4,
			JumpImpulse:  -12,
			MaxFallSpeed: 0,
		},
		Platforms: JumperPlatforms{
			Count:              8,
			Width:              60,
			Height:             10,
			GapMin:             50,
			GapMax:             100,
			Placement:          PlacementRandom,
			MaxHorizontalDelta: 150,
		},
		Scoring: JumperScoring{
			Mode:       ScoreByPlatforms,
			HeightUnit: 10,
		},
		Input: JumperInput{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				GapIncrease:    60,
				WidthReduction: 20,
			},
		},
	}
}

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:       20,
			Height:      20,
			StartLength: 3,
		},
		Speed: SnakeSpeed{
			Initial:  10,
			Increase: 0.5,
			Max:      20,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: "none",
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
