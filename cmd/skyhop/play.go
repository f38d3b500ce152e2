package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/jumper"
	"github.com/vovakirdan/skyhop/internal/games/snake"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/scores"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D, H/L  - Steer
  P                     - Pause
  R                     - Restart (after game over)
  Esc                   - Back
  Q/Ctrl+C              - Quit
  Ctrl+S                - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  skyhop play skyhop
  skyhop play skyhop_clamped
  skyhop play skyhop --difficulty hard
  skyhop play skyhop --config ./my-skyhop.yaml
  skyhop play snake --fps 30`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'skyhop list' to see available games", gameID)
	}
	// Fail before the alternate screen takes over the terminal.
	if err := configureGame(gameID); err != nil {
		return err
	}

	logger, done, err := newLogger(true)
	if err != nil {
		return err
	}
	defer done()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)

	store, err := scores.Open()
	if err != nil {
		// The game still works without a score table.
		logger.Warn("could not open score store", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, logger, cfg); err != nil {
		return err
	}

	if store != nil {
		if stats, err := store.Stats(gameID); err == nil && stats.GamesCount > 0 {
			logger.Info("session summary", "game", gameID, "runs", stats.GamesCount, "best", stats.HighScore)
		}
	}
	return nil
}

// configureGame applies --config and --difficulty to gameID and checks that
// the resulting configuration is valid. Other games get their defaults.
func configureGame(gameID string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q, want easy, normal, hard or fixed", flagDifficulty)
	}

	jumper.SetConfigPath("")
	snake.SetConfigPath("")
	jumper.SetDifficultyPreset(flagDifficulty)
	snake.SetDifficultyPreset(flagDifficulty)

	var err error
	switch gameID {
	case jumper.IDWrap, jumper.IDClamped:
		jumper.SetConfigPath(flagConfig)
		_, err = jumper.LoadConfig(gameID)
	case snake.ID:
		snake.SetConfigPath(flagConfig)
		_, err = snake.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("%s config: %w", gameID, err)
	}
	return nil
}

// runtimeConfig builds the platform settings from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
