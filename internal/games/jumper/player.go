package jumper

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Player is the jumping body. Y grows downward; negative VY moves up.
type Player struct {
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	// prevBottom is the bottom edge before the last Integrate call.
	prevBottom float64
}

// newPlayer places the player horizontally centered at startY, at rest.
func newPlayer(cfg config.JumperConfig) Player {
	p := Player{
		X:      (cfg.World.Width - cfg.Player.Width) / 2,
		Y:      cfg.Player.StartY,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	}
	p.prevBottom = p.Bottom()
	return p
}

// Bottom returns the y of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.Height
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Integrate advances one tick: velocity first, then position.
// maxFall caps downward speed when positive. No bounds are applied here.
func (p *Player) Integrate(gravity, maxFall, intent float64) {
	p.prevBottom = p.Bottom()

	p.VY += gravity
	if maxFall > 0 && p.VY > maxFall {
		p.VY = maxFall
	}
	p.Y += p.VY

	p.VX = intent
	p.X += p.VX
}

// Boundary applies the horizontal edge policy of a variant.
type Boundary struct {
	Policy     string // config.HorizontalWrap or config.HorizontalClamp
	WorldWidth float64
	WrapMargin float64
}

// Apply moves the player back into the world according to the policy.
//
// clamp keeps x in [0, width-playerWidth]. wrap teleports to the far edge once
// the player passes WrapMargin beyond the left edge or the right edge.
func (b Boundary) Apply(p *Player) {
	switch b.Policy {
	case config.HorizontalClamp:
		p.X = core.ClampF(p.X, 0, b.WorldWidth-p.Width)
	default:
		if p.X < -b.WrapMargin {
			p.X = b.WorldWidth
		} else if p.X > b.WorldWidth {
			p.X = -b.WrapMargin
		}
	}
}
