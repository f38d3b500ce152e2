package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/jumper"
	"github.com/vovakirdan/skyhop/internal/scores"
)

var (
	flagSimFrames  uint64
	flagSimGame    string
	flagSimPattern string
	flagSimRestart bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the platformer without a terminal UI and print a YAML report.

The player is steered by a fixed input pattern:
  none   - Never steer
  left   - Hold left
  right  - Hold right
  sweep  - Alternate right and left every 90 frames

With the same --seed, config and pattern the report is identical.

Examples:
  skyhop sim --seed 42
  skyhop sim --frames 36000 --pattern sweep --restart
  skyhop sim --game skyhop_clamped --pattern left`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagSimGame, "game", jumper.IDWrap, "Variant: skyhop or skyhop_clamped")
	simCmd.Flags().StringVar(&flagSimPattern, "pattern", "none", "Input pattern: none, left, right, sweep")
	simCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Restart after each fall until frames run out")
}

// pattern returns the steering direction for a frame.
type pattern func(frame uint64) int

const sweepPeriod = 90

func parsePattern(name string) (pattern, error) {
	switch name {
	case "none":
		return func(uint64) int { return 0 }, nil
	case "left":
		return func(uint64) int { return -1 }, nil
	case "right":
		return func(uint64) int { return 1 }, nil
	case "sweep":
		return func(f uint64) int {
			if (f/sweepPeriod)%2 == 0 {
				return 1
			}
			return -1
		}, nil
	default:
		return nil, fmt.Errorf("unknown pattern %q, want none, left, right or sweep", name)
	}
}

// simReport is the YAML document printed by sim.
type simReport struct {
	Game    string          `yaml:"game"`
	Seed    int64           `yaml:"seed"`
	Pattern string          `yaml:"pattern"`
	Frames  uint64          `yaml:"frames"`
	Runs    int             `yaml:"runs"`
	Best    int             `yaml:"best"`
	Final   jumper.Snapshot `yaml:"final"`
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimGame != jumper.IDWrap && flagSimGame != jumper.IDClamped {
		return fmt.Errorf("sim supports %s and %s, got %q", jumper.IDWrap, jumper.IDClamped, flagSimGame)
	}
	steer, err := parsePattern(flagSimPattern)
	if err != nil {
		return err
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q, want easy, normal, hard or fixed", flagDifficulty)
	}

	logger, done, err := newLogger(false)
	if err != nil {
		return err
	}
	defer done()

	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)
	cfg, err := jumper.LoadConfig(flagSimGame)
	if err != nil {
		return fmt.Errorf("%s config: %w", flagSimGame, err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := scores.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := simulate(cfg, seed, steer, flagSimFrames, flagSimRestart, store, func(r jumper.Result) {
		logger.Info("session ended", "score", r.Score, "height", math.Floor(r.Height), "frames", r.Frames)
	})
	if err != nil {
		return err
	}
	report.Game = flagSimGame
	report.Pattern = flagSimPattern

	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// simulate steps a fresh session for up to frames frames. Every finished run
// is recorded in store and passed to onEnd.
func simulate(cfg config.JumperConfig, seed int64, steer pattern, frames uint64, restart bool, store *scores.Store, onEnd jumper.Notifier) (simReport, error) {
	session, err := jumper.NewSession(cfg, seed)
	if err != nil {
		return simReport{}, err
	}

	const storeID = "sim"
	var recordErr error
	session.OnEnd(func(r jumper.Result) {
		if _, err := store.Record(storeID, r.Score, int(math.Floor(r.Height))); err != nil && recordErr == nil {
			recordErr = err
		}
		if onEnd != nil {
			onEnd(r)
		}
	})

	input := jumper.NewHoldInput(cfg.Input.HoldTicks)
	session.Start()

	var f uint64
	for ; f < frames; f++ {
		if dir := steer(f); dir != 0 {
			input.Press(dir)
		}
		if ev := session.Step(input.Intent(cfg.Player.Speed)); ev.Ended {
			if !restart {
				f++
				break
			}
			session.Restart()
			input.Release()
		}
	}

	if recordErr != nil {
		return simReport{}, recordErr
	}
	stats, err := store.Stats(storeID)
	if err != nil {
		return simReport{}, err
	}
	return simReport{
		Seed:   seed,
		Frames: f,
		Runs:   stats.GamesCount,
		Best:   stats.HighScore,
		Final:  session.Snapshot(),
	}, nil
}
