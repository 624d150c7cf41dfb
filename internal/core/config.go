package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells a game about its surroundings.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // ticks per second, DefaultTickRate when <= 0
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig is an 80x24 terminal at DefaultTickRate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Rate returns the effective tick rate.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// TickInterval is the wall time one tick stands for.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Rate())
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is what Game.Step returns.
type StepResult struct {
	State  GameState
	Events []Event
}
