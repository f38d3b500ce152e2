package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/scores"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc in a game to return to the menu. Scores are kept for the
whole menu session and shown on the scoreboard (Tab).

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  skyhop menu
  skyhop menu --fps 30
  skyhop menu --difficulty easy`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q, want easy, normal, hard or fixed", flagDifficulty)
	}

	logger, done, err := newLogger(true)
	if err != nil {
		return err
	}
	defer done()

	store, err := scores.Open()
	if err != nil {
		logger.Warn("could not open score store", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	lastGameID := ""

	for {
		menuResult, err := tui.RunMenu(store, cfg, lastGameID)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}
		lastGameID = gameID

		// An invalid config still opens the game, which shows the error.
		if err := configureGame(gameID); err != nil {
			logger.Warn("invalid config", "game", gameID, "err", err)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("create game", "game", gameID, "err", err)
			continue
		}

		res, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			return err
		}
		if !res.Back {
			return nil
		}
	}
}
