package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	FPS      int           // Frames per second driven by the platform
	TickRate time.Duration // Fixed interval between simulation ticks
	Seed     int64         // RNG seed, 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FPS:      30,
		TickRate: 125 * time.Millisecond,
		Seed:     0,
	}
}

// FrameInterval returns the time between rendered frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FPS)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	Lives    int
	Honey    int
	Tick     int
	Hardness int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each platform frame.
type StepResult struct {
	State    GameState
	Ticked   bool // a simulation tick ran during this step
	Upgrades int  // tower upgrades bought during this step
}
