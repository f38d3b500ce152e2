package jumper

// Land resolves at most one landing for this tick.
//
// A platform is landed on when the player is falling (VY > 0), its feet were
// at or above the platform top before the move and at or below it after, and
// the bodies overlap horizontally. Platforms are checked in pool order and the
// first match wins, even if a later one is spatially closer.
//
// On a landing the player is snapped onto the surface and given the jump
// impulse. The landed platform is returned with ok set.
func Land(p *Player, platforms []Platform, jumpImpulse float64) (Platform, bool) {
	if p.VY <= 0 {
		return Platform{}, false
	}

	body := p.Rect()
	for _, pl := range platforms {
		if p.prevBottom > pl.Y || p.prevBottom+p.VY < pl.Y {
			continue
		}
		if !body.OverlapsX(pl.Rect()) {
			continue
		}

		p.Y = pl.Y - p.Height
		p.VY = jumpImpulse
		return pl, true
	}
	return Platform{}, false
}
