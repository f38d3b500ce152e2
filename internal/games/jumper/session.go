package jumper

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
)

// State is the lifecycle stage of a session.
type State int

const (
	StateIdle   State = iota // built, waiting for Start
	StateActive              // stepping
	StateEnded               // fell out of the world; frozen until Restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Result summarizes a finished session.
type Result struct {
	Score    int
	Height   float64 // highest altitude above the start pose, world units
	Frames   uint64
	Landings int
}

// Notifier is called once when a session ends.
type Notifier func(Result)

// Events reports what happened during one Step.
type Events struct {
	Landed   bool
	Scored   bool
	Scrolled float64
	Recycled int
	Ended    bool
}

// Session owns the complete simulation state of one endless-platformer run.
type Session struct {
	cfg        config.JumperConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	boundary   Boundary
	threshold  float64

	player Player
	pool   *Pool
	state  State

	score      int
	lastLanded uint64
	landings   int
	maxHeight  float64
	scrolled   float64
	frame      uint64

	notify Notifier
}

// NewSession validates cfg and builds an idle session seeded with seed.
func NewSession(cfg config.JumperConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jumper: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		boundary: Boundary{
			Policy:     cfg.World.Horizontal,
			WorldWidth: cfg.World.Width,
			WrapMargin: cfg.World.WrapMargin,
		},
		threshold: cfg.ScrollThreshold(),
	}
	s.pool = NewPool(&s.cfg, s.difficulty, s.rng)
	s.reset()
	return s, nil
}

// reset puts the player at the start pose and lays out a fresh pool.
func (s *Session) reset() {
	s.player = newPlayer(s.cfg)
	s.pool.Generate(s.player.X+s.player.Width/2, s.player.Bottom())
	s.state = StateIdle
	s.score = 0
	s.lastLanded = NoIndex
	s.landings = 0
	s.maxHeight = 0
	s.scrolled = 0
	s.frame = 0
}

// OnEnd sets the session-end notifier.
func (s *Session) OnEnd(n Notifier) {
	s.notify = n
}

// Start moves an idle session to active. It has no effect otherwise.
func (s *Session) Start() {
	if s.state == StateIdle {
		s.state = StateActive
	}
}

// Restart re-initializes the player, score and platforms and starts again.
// The random stream continues, so the new layout differs from the last one.
func (s *Session) Restart() {
	s.reset()
	s.state = StateActive
}

// Step advances an active session by one frame. intent is the signed
// horizontal speed for this frame. Idle and ended sessions do not move.
func (s *Session) Step(intent float64) Events {
	var ev Events
	if s.state != StateActive {
		return ev
	}
	s.frame++

	s.player.Integrate(s.cfg.Physics.Gravity, s.cfg.Physics.MaxFallSpeed, intent)
	s.boundary.Apply(&s.player)

	if pl, ok := Land(&s.player, s.pool.Platforms(), s.cfg.Physics.JumpImpulse); ok {
		ev.Landed = true
		s.landings++
		if pl.Index != s.lastLanded {
			s.lastLanded = pl.Index
			if s.cfg.Scoring.Mode == config.ScoreByPlatforms {
				s.score++
				ev.Scored = true
			}
		}
	}

	if s.player.Y < s.threshold {
		diff := s.threshold - s.player.Y
		s.player.Y = s.threshold
		s.pool.Scroll(diff)
		s.scrolled += diff
		ev.Scrolled = diff
		ev.Recycled = s.pool.Recycle(s.cfg.World.Height, s.score, int(s.frame))
	}

	s.trackHeight(&ev)

	if s.player.Y > s.cfg.World.Height {
		s.end()
		ev.Ended = true
	}
	return ev
}

// trackHeight records the best altitude and, in height mode, the score.
func (s *Session) trackHeight(ev *Events) {
	altitude := s.cfg.Player.StartY - (s.player.Y - s.scrolled)
	if altitude <= s.maxHeight {
		return
	}
	s.maxHeight = altitude

	if s.cfg.Scoring.Mode == config.ScoreByHeight {
		score := int(math.Floor(s.maxHeight / s.cfg.Scoring.HeightUnit))
		if score > s.score {
			s.score = score
			ev.Scored = true
		}
	}
}

func (s *Session) end() {
	s.state = StateEnded
	if s.notify != nil {
		s.notify(s.Result())
	}
}

// Result returns the session summary so far.
func (s *Session) Result() Result {
	return Result{
		Score:    s.score,
		Height:   s.maxHeight,
		Frames:   s.frame,
		Landings: s.landings,
	}
}

// State returns the lifecycle stage.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Platforms returns the platform pool in stored order. Callers must not modify it.
func (s *Session) Platforms() []Platform { return s.pool.Platforms() }

// Config returns the session's configuration.
func (s *Session) Config() config.JumperConfig { return s.cfg }

// Difficulty returns the current difficulty level in [0, 1].
func (s *Session) Difficulty() float64 {
	return s.difficulty.Level(s.score, int(s.frame))
}
