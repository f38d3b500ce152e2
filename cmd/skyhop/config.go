package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/jumper"
	"github.com/vovakirdan/skyhop/internal/games/snake"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the effective configuration of a game",
	Long: `Resolve a game's configuration the same way 'play' does and print it
as YAML. The output can be saved, edited, and passed back with --config.
Exits with an error when the configuration is invalid.

Examples:
  skyhop config skyhop
  skyhop config skyhop_clamped --difficulty hard
  skyhop config skyhop --config ./my-skyhop.yaml > effective.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q, want easy, normal, hard or fixed", flagDifficulty)
	}
	jumper.SetDifficultyPreset(flagDifficulty)
	snake.SetDifficultyPreset(flagDifficulty)

	var (
		cfg any
		err error
	)
	switch gameID {
	case jumper.IDWrap, jumper.IDClamped:
		jumper.SetConfigPath(flagConfig)
		cfg, err = jumper.LoadConfig(gameID)
	case snake.ID:
		snake.SetConfigPath(flagConfig)
		cfg, err = snake.LoadConfig()
	default:
		return fmt.Errorf("unknown game %q, run 'skyhop list' to see available games", gameID)
	}

	// A config that loads but fails validation is still printed.
	if err != nil && !errors.Is(err, config.ErrInvalidConfig) {
		return err
	}

	out, mErr := yaml.Marshal(cfg)
	if mErr != nil {
		return fmt.Errorf("encode config: %w", mErr)
	}
	if _, wErr := cmd.OutOrStdout().Write(out); wErr != nil {
		return wErr
	}
	return err
}
