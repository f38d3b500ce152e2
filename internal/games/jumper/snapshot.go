package jumper

// Snapshot captures the session for determinism tests and headless runs.
type Snapshot struct {
	Frame      uint64  `yaml:"frame"`
	State      string  `yaml:"state"`
	Score      int     `yaml:"score"`
	Height     float64 `yaml:"height"`
	PlayerX    float64 `yaml:"player_x"`
	PlayerY    float64 `yaml:"player_y"`
	PlayerVY   float64 `yaml:"player_vy"`
	LastLanded uint64  `yaml:"last_landed"`
	TopIndex   uint64  `yaml:"top_index"`
	PoolSize   int     `yaml:"pool_size"`
	Difficulty float64 `yaml:"difficulty"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frame:      s.frame,
		State:      s.state.String(),
		Score:      s.score,
		Height:     s.maxHeight,
		PlayerX:    s.player.X,
		PlayerY:    s.player.Y,
		PlayerVY:   s.player.VY,
		LastLanded: s.lastLanded,
		TopIndex:   s.pool.Top().Index,
		PoolSize:   s.pool.Len(),
		Difficulty: s.Difficulty(),
	}
}
