package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 10x20 field with
// a two row buffer, 0.5s gravity at level 1 decaying by 0.8 per level.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:      10,
			Height:     20,
			HiddenRows: 2,
		},
		Gravity: GravityConfig{
			BaseSeconds: 0.5,
			Decay:       0.8,
			MinSeconds:  0.05,
		},
		Randomizer: "uniform",
		Display: DisplayConfig{
			Ghost:     true,
			CellWidth: 2,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_bag":
		return defaultTetrisYAML
	default:
		return nil
	}
}
