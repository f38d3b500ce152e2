package jumper

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
)

func newTestSession(t *testing.T, cfg config.JumperConfig, seed int64) *Session {
	t.Helper()
	s, err := NewSession(cfg, seed)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Start()
	return s
}

// singlePlatform returns a config with only the floor platform, so the player
// bounces in place and never scrolls.
func singlePlatform() config.JumperConfig {
	cfg := config.DefaultJumperConfig()
	cfg.Platforms.Count = 1
	return cfg
}

func TestSessionFirstLanding(t *testing.T) {
	s := newTestSession(t, config.DefaultJumperConfig(), 1)

	if got := len(s.Platforms()); got != 8 {
		t.Fatalf("pool size = %d, want 8", got)
	}

	ev := s.Step(0)

	if !ev.Landed || !ev.Scored {
		t.Fatalf("first step should land and score, got %+v", ev)
	}
	p := s.Player()
	if p.VY != -12 {
		t.Errorf("vy after landing = %v, want -12", p.VY)
	}
	if p.Y != 500 {
		t.Errorf("y after landing = %v, want 500 (snapped to the surface)", p.Y)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestSessionFallEndsAndRestart(t *testing.T) {
	s := newTestSession(t, config.DefaultJumperConfig(), 1)
	s.Step(0)

	var calls int
	var got Result
	s.OnEnd(func(r Result) {
		calls++
		got = r
	})

	s.player.Y = 601
	s.player.VY = 0
	ev := s.Step(0)

	if !ev.Ended || s.State() != StateEnded {
		t.Fatalf("falling below the world should end the session, state=%v", s.State())
	}
	if calls != 1 {
		t.Fatalf("notifier called %d times, want 1", calls)
	}
	if got.Score != 1 {
		t.Errorf("result score = %d, want 1", got.Score)
	}

	// Ended sessions are frozen.
	y := s.Player().Y
	if ev := s.Step(5); ev != (Events{}) {
		t.Errorf("step on ended session produced events %+v", ev)
	}
	if s.Player().Y != y {
		t.Error("ended session should not move")
	}
	if calls != 1 {
		t.Errorf("notifier called again after end, total %d", calls)
	}

	s.Restart()
	if s.State() != StateActive {
		t.Errorf("state after restart = %v, want active", s.State())
	}
	if s.Player().Y != 500 {
		t.Errorf("y after restart = %v, want 500", s.Player().Y)
	}
	if s.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", s.Score())
	}
	if len(s.Platforms()) != 8 {
		t.Errorf("pool size after restart = %d, want 8", len(s.Platforms()))
	}
}

func TestSessionIdleIgnoresSteps(t *testing.T) {
	s, err := NewSession(config.DefaultJumperConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != StateIdle {
		t.Fatalf("new session state = %v, want idle", s.State())
	}

	before := s.Snapshot()
	if ev := s.Step(5); ev != (Events{}) {
		t.Errorf("idle step produced events %+v", ev)
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("idle step changed state:\nbefore %+v\nafter  %+v", before, after)
	}

	s.Start()
	s.Start()
	if s.State() != StateActive {
		t.Errorf("state after start = %v, want active", s.State())
	}
}

func TestSessionInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.JumperConfig)
	}{
		{"zero gravity", func(c *config.JumperConfig) { c.Physics.Gravity = 0 }},
		{"upward gravity", func(c *config.JumperConfig) { c.Physics.Gravity = -1 }},
		{"empty pool", func(c *config.JumperConfig) { c.Platforms.Count = 0 }},
		{"unreachable gap", func(c *config.JumperConfig) { c.Platforms.GapMax = 500 }},
		{"unknown policy", func(c *config.JumperConfig) { c.World.Horizontal = "bounce" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultJumperConfig()
			tt.mutate(&cfg)
			s, err := NewSession(cfg, 1)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if s != nil {
				t.Error("session should be nil on error")
			}
		})
	}
}

func TestSessionNoDoubleCount(t *testing.T) {
	s := newTestSession(t, singlePlatform(), 3)

	for i := 0; i < 300; i++ {
		s.Step(0)
	}

	r := s.Result()
	if r.Landings < 3 {
		t.Fatalf("expected repeated bounces on the floor platform, got %d landings", r.Landings)
	}
	if r.Score != 1 {
		t.Errorf("score = %d after %d landings on one platform, want 1", r.Score, r.Landings)
	}
	if s.State() != StateActive {
		t.Errorf("bouncing in place should not end the session, state=%v", s.State())
	}
}

func TestSessionScrollKeepsPlayerAtThreshold(t *testing.T) {
	s := newTestSession(t, config.DefaultJumperConfig(), 7)
	threshold := s.Config().ScrollThreshold()

	before := make(map[uint64]float64)
	for _, pl := range s.Platforms() {
		before[pl.Index] = pl.Y
	}

	s.player.Y = 100
	s.player.VY = -5
	ev := s.Step(0)

	wantDiff := threshold - (100 - 5 + 0.4)
	if math.Abs(ev.Scrolled-wantDiff) > 1e-9 {
		t.Errorf("scrolled = %v, want %v", ev.Scrolled, wantDiff)
	}
	if s.Player().Y != threshold {
		t.Errorf("player y = %v, want threshold %v", s.Player().Y, threshold)
	}
	if ev.Recycled == 0 {
		t.Error("the floor platform should have been recycled")
	}
	for _, pl := range s.Platforms() {
		if y, ok := before[pl.Index]; ok && math.Abs(pl.Y-(y+wantDiff)) > 1e-9 {
			t.Errorf("platform %d at %v, want %v", pl.Index, pl.Y, y+wantDiff)
		}
	}
	if len(s.Platforms()) != 8 {
		t.Errorf("pool size = %d, want 8", len(s.Platforms()))
	}
}

func TestSessionWrapThroughStep(t *testing.T) {
	s := newTestSession(t, config.DefaultJumperConfig(), 1)
	s.player.X = 0

	s.Step(-5)

	if got := s.Player().X; got != 400 {
		t.Errorf("x = %v, want 400 after leaving the left edge", got)
	}
}

func TestSessionClampThroughStep(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.World.Horizontal = config.HorizontalClamp
	s := newTestSession(t, cfg, 1)

	s.player.X = 2
	s.Step(-5)
	if got := s.Player().X; got != 0 {
		t.Errorf("x = %v, want 0 at the left wall", got)
	}

	s.player.X = 368
	s.Step(5)
	if got := s.Player().X; got != 370 {
		t.Errorf("x = %v, want 370 at the right wall", got)
	}
}

func TestSessionHeightScoring(t *testing.T) {
	cfg := singlePlatform()
	cfg.Scoring.Mode = config.ScoreByHeight
	s := newTestSession(t, cfg, 1)

	for i := 0; i < 100; i++ {
		s.Step(0)
	}

	// One full jump rises 174 units.
	if s.Score() != 17 {
		t.Errorf("score = %d, want 17", s.Score())
	}
	if h := s.Result().Height; math.Abs(h-174) > 1e-6 {
		t.Errorf("height = %v, want 174", h)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		s := newTestSession(t, config.DefaultJumperConfig(), seed)
		steer := NewHoldInput(8)
		for i := 0; i < 2000 && s.State() == StateActive; i++ {
			switch {
			case i%90 == 0:
				steer.Press(1)
			case i%45 == 0:
				steer.Press(-1)
			}
			s.Step(steer.Intent(5))
		}
		return s.Snapshot()
	}

	a, b := run(12345), run(12345)
	if a != b {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestSessionRestartContinuesRandomStream(t *testing.T) {
	s := newTestSession(t, config.DefaultJumperConfig(), 99)
	first := append([]Platform(nil), s.Platforms()...)

	s.Restart()
	second := s.Platforms()

	same := true
	for i := 1; i < len(first); i++ {
		if first[i].X != second[i].X || first[i].Y != second[i].Y {
			same = false
		}
	}
	if same {
		t.Error("restart should draw a fresh layout")
	}
	if second[0].X != first[0].X || second[0].Y != first[0].Y {
		t.Error("the floor platform should sit under the start pose every time")
	}
}

// TestSessionClimbsGapsAtLimit stacks full-width platforms exactly MaxGap
// apart; with no steering every bounce must reach the next one up.
func TestSessionClimbsGapsAtLimit(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.World.ThresholdRatio = 0.05
	cfg.Platforms.Width = cfg.World.Width
	cfg.Platforms.GapMin = cfg.MaxGap()
	cfg.Platforms.GapMax = cfg.MaxGap()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	s := newTestSession(t, cfg, 7)

	landings := 0
	for i := 0; i < 3000; i++ {
		ev := s.Step(0)
		if ev.Ended {
			t.Fatalf("frame %d: fell after %d landings", i, landings)
		}
		if ev.Landed {
			landings++
			if !ev.Scored {
				t.Fatalf("frame %d: landed on platform %d again instead of climbing", i, s.lastLanded)
			}
		}
	}

	if landings < 80 || s.Score() != landings {
		t.Errorf("score %d after %d landings, want one point per landing and at least 80", s.Score(), landings)
	}
}

// TestSessionLongClimb drives a bot that steers toward the next platform up
// and checks the pool invariants on every frame.
func TestSessionLongClimb(t *testing.T) {
	s := newTestSession(t, config.DefaultJumperConfig(), 2024)
	limit := s.Config().MaxJumpHeight()
	b := &bot{target: NoIndex}

	recycled, restarts := 0, 0
	for i := 0; i < 20000 && recycled < 50; i++ {
		if s.State() == StateEnded {
			s.Restart()
			b.target = NoIndex
			restarts++
		}

		ev := s.Step(b.intent(s))
		recycled += ev.Recycled
		if ev.Landed {
			b.retarget(s)
		}

		pool := s.Platforms()
		if len(pool) != 8 {
			t.Fatalf("frame %d: pool size %d, want 8", i, len(pool))
		}
		checkGaps(t, pool, limit)
	}

	if recycled == 0 {
		t.Fatalf("bot never climbed far enough to recycle a platform (%d restarts)", restarts)
	}
}

type bot struct {
	target uint64
}

// retarget picks the lowest platform above the one just landed on.
func (b *bot) retarget(s *Session) {
	floor := s.Player().Bottom()
	b.target = NoIndex
	best := math.Inf(-1)
	for _, pl := range s.Platforms() {
		if pl.Y < floor-1e-9 && pl.Y > best {
			best = pl.Y
			b.target = pl.Index
		}
	}
}

func (b *bot) intent(s *Session) float64 {
	if b.target == NoIndex {
		return 0
	}
	for _, pl := range s.Platforms() {
		if pl.Index != b.target {
			continue
		}
		p := s.Player()
		speed := s.Config().Player.Speed
		d := (pl.X + pl.Width/2) - (p.X + p.Width/2)
		switch {
		case d < -speed:
			return -speed
		case d > speed:
			return speed
		}
		return 0
	}
	return 0
}
