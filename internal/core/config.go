package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible run snapshot.
// Paused is reported independently of GameOver/Victory because the pause
// toggle stays active in terminal states.
type GameState struct {
	Level    int  `msgpack:"level" json:"level"`
	Score    int  `msgpack:"score" json:"score"`
	Lives    int  `msgpack:"lives" json:"lives"`
	Paused   bool `msgpack:"paused" json:"paused"`
	GameOver bool `msgpack:"gameOver" json:"gameOver"`
	Victory  bool `msgpack:"victory" json:"victory"`
}

// Terminal reports whether the run has ended.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Victory
}
