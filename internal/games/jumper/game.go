// Package jumper implements an endless vertical platformer.
//
// The player bounces automatically off platforms and steers left and right.
// The world scrolls down whenever the player climbs past a threshold, and
// platforms that leave the bottom are recycled above the top, so a fixed pool
// supports an endless climb. Falling out of the world ends the run.
//
// Session holds the simulation; Game adapts it to the arcade registry.
package jumper

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// Registered game IDs, one per horizontal boundary policy.
const (
	IDWrap    = "skyhop"
	IDClamped = "skyhop_clamped"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	WallChar     = '│'
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config's own difficulty block.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves and validates the effective configuration for a
// registered variant, honoring SetConfigPath and SetDifficultyPreset.
func LoadConfig(id string) (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyJumperPreset(&cfg, difficultyPreset)
	if id == IDClamped {
		cfg.World.Horizontal = config.HorizontalClamp
	}
	return cfg, cfg.Validate()
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	id      string
	session *Session
	input   *HoldInput
	runtime core.RuntimeConfig
	paused  bool
	err     error // configuration error from the last Reset

	ended  bool // set by the session notifier during Step
	result Result
}

// New creates the canonical wrap-around variant.
func New() *Game {
	return &Game{id: IDWrap}
}

// NewClamped creates the variant that stops at the side walls.
func NewClamped() *Game {
	return &Game{id: IDClamped}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.id == IDClamped {
		return "Skyhop (Clamped)"
	}
	return "Skyhop"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.id == IDClamped {
		return "Climb between two walls. Falling off the bottom ends the run."
	}
	return "Climb forever. Leave one side to come back on the other."
}

// Reset initializes or restarts the game with a new seed.
// An invalid configuration leaves the game over with the error on screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.ended = false
	g.result = Result{}

	cfg, err := LoadConfig(g.id)
	if err == nil {
		g.session, err = NewSession(cfg, runtime.Seed)
	}
	if err != nil {
		g.err = err
		g.session = nil
		return
	}
	g.err = nil

	g.session.OnEnd(func(r Result) {
		g.ended = true
		g.result = r
	})
	g.input = NewHoldInput(cfg.Input.HoldTicks)
	g.session.Start()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if g.session.State() == StateEnded {
		if in.Has(core.ActionRestart) {
			g.session.Restart()
			g.input.Release()
			g.result = Result{}
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Left and right together cancel the held direction.
	if in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		g.input.Press(in.Horizontal())
	}

	g.ended = false
	g.session.Step(g.input.Intent(g.session.Config().Player.Speed))

	return core.StepResult{State: g.State(), Ended: g.ended}
}

// Session exposes the underlying simulation, nil after a config error.
func (g *Game) Session() *Session {
	return g.session
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// LastResult returns the result delivered by the session-end notifier.
func (g *Game) LastResult() (Result, bool) {
	if g.session == nil || g.session.State() != StateEnded {
		return Result{}, false
	}
	return g.result, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Height:   int(math.Floor(g.session.Result().Height)),
		GameOver: g.session.State() == StateEnded,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		msg := g.err.Error()
		if maxLen := dst.Width() - 6; maxLen > 3 && len(msg) > maxLen {
			msg = msg[:maxLen-3] + "..."
		}
		dst.DrawMessage("CONFIG ERROR", msg)
		return
	}
	if g.session == nil {
		return
	}

	cfg := g.session.Config()
	field := playfield(dst, cfg.World)
	proj := core.Projection{WorldW: cfg.World.Width, WorldH: cfg.World.Height, Cells: field}

	// Side walls
	for y := field.Y; y < field.Bottom(); y++ {
		dst.SetColor(field.X-1, y, WallChar, core.ColorGray)
		dst.SetColor(field.Right(), y, WallChar, core.ColorGray)
	}

	for _, pl := range g.session.Platforms() {
		r := proj.Rect(pl.Rect())
		r.H = 1
		fillClipped(dst, field, r, PlatformChar, core.ColorGreen)
	}

	g.drawPlayer(dst, proj, field, cfg)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.session.Score()))
	dst.DrawText(16, 0, fmt.Sprintf(" Height: %d ", int(g.session.Result().Height)))

	policy := strings.ToUpper(cfg.World.Horizontal)
	if cfg.Difficulty.Enabled {
		policy = fmt.Sprintf("%s  Lvl: %.0f%%", policy, g.session.Difficulty()*100)
	}
	dst.DrawTextColor(dst.Width()-len(policy)-3, 0, policy, core.ColorGray)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.session.State() == StateEnded {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// drawPlayer draws the player and, in wrap mode, the copy that shows on the
// opposite edge while it crosses a side.
func (g *Game) drawPlayer(dst *core.Screen, proj core.Projection, field core.Rect, cfg config.JumperConfig) {
	p := g.session.Player()
	body := p.Rect()
	fillClipped(dst, field, proj.Rect(body), PlayerChar, core.ColorYellow)

	if cfg.World.Horizontal != config.HorizontalWrap {
		return
	}
	switch {
	case body.X < 0:
		body.X += cfg.World.Width
	case body.Right() > cfg.World.Width:
		body.X -= cfg.World.Width
	default:
		return
	}
	fillClipped(dst, field, proj.Rect(body), PlayerChar, core.ColorYellow)
}

// playfield returns the screen region for the world: below the HUD row,
// centered, with the world's aspect ratio corrected for cells that are about
// twice as tall as they are wide.
func playfield(dst *core.Screen, world config.JumperWorld) core.Rect {
	rows := max(1, dst.Height()-1)
	cols := int(math.Round(float64(rows) * 2 * world.Width / world.Height))
	cols = core.Clamp(cols, 1, max(1, dst.Width()-2))
	return core.NewRect((dst.Width()-cols)/2, 1, cols, rows)
}

// fillClipped fills r, skipping cells outside clip.
func fillClipped(dst *core.Screen, clip, r core.Rect, ch rune, c core.Color) {
	for y := max(r.Y, clip.Y); y < min(r.Bottom(), clip.Bottom()); y++ {
		for x := max(r.X, clip.X); x < min(r.Right(), clip.Right()); x++ {
			dst.SetColor(x, y, ch, c)
		}
	}
}

// Register the game with the registry
func init() {
	registry.Register(IDWrap, func() registry.Game {
		return New()
	})
	registry.Register(IDClamped, func() registry.Game {
		return NewClamped()
	})
}
