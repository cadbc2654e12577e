package core

// RuntimeConfig contains configuration passed by the platform at startup.
type RuntimeConfig struct {
	ScreenW  int    // Terminal width in characters
	ScreenH  int    // Terminal height in characters
	TickRate int    // Frames per second (default 60)
	Seed     uint32 // RNG seed; 0 means draw one from the system entropy source
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
