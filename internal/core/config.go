package core

// RuntimeConfig contains the front-end settings a round starts with.
// The creek rules themselves live in config.CreekConfig.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	FPS        int    // Redraw and poll rate (default 30)
	Seed       int64  // RNG seed for deterministic creeks
	Difficulty string // preset name recorded with each run
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 30,
		FPS:     30,
		Seed:    0, // 0 means use current time in platform layer
	}
}
