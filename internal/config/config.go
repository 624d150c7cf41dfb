// Package config provides YAML-based configuration for the block game:
// board geometry, gravity curve, randomizer, display and audio settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/engine"
)

// TetrisConfig contains all configuration for the falling-block modes.
type TetrisConfig struct {
	Board      BoardConfig   `yaml:"board"`
	Gravity    GravityConfig `yaml:"gravity"`
	Randomizer string        `yaml:"randomizer"` // "uniform" or "bag"
	Display    DisplayConfig `yaml:"display"`
	Audio      AudioConfig   `yaml:"audio"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	HiddenRows int `yaml:"hidden_rows"` // Rows above the visible field
}

// GravityConfig defines the fall interval curve:
// max(min_seconds, base_seconds * decay^(level-1)).
type GravityConfig struct {
	BaseSeconds float64 `yaml:"base_seconds"`
	Decay       float64 `yaml:"decay"`
	MinSeconds  float64 `yaml:"min_seconds"`
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	Ghost     bool `yaml:"ghost"`      // Show the landing preview
	CellWidth int  `yaml:"cell_width"` // Terminal columns per board cell (1 or 2)
}

// AudioConfig defines sound effect options.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate reports every problem found in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.HiddenRows < 0 {
		errs = append(errs, fmt.Errorf("hidden_rows must not be negative, got %d", c.Board.HiddenRows))
	}
	if c.Gravity.BaseSeconds <= 0 || c.Gravity.MinSeconds <= 0 {
		errs = append(errs, errors.New("gravity seconds must be positive"))
	}
	if c.Gravity.Decay <= 0 || c.Gravity.Decay > 1 {
		errs = append(errs, fmt.Errorf("gravity decay must be in (0, 1], got %g", c.Gravity.Decay))
	}
	if c.Gravity.MinSeconds > c.Gravity.BaseSeconds {
		errs = append(errs, fmt.Errorf("gravity min_seconds %g exceeds base_seconds %g", c.Gravity.MinSeconds, c.Gravity.BaseSeconds))
	}
	switch engine.RandomizerKind(c.Randomizer) {
	case engine.RandomUniform, engine.RandomBag:
	default:
		errs = append(errs, fmt.Errorf("unknown randomizer %q", c.Randomizer))
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 2 {
		errs = append(errs, fmt.Errorf("cell_width must be 1 or 2, got %d", c.Display.CellWidth))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// EngineConfig converts the file settings into an engine configuration.
func (c TetrisConfig) EngineConfig(seed int64) engine.Config {
	return engine.Config{
		Width:      c.Board.Width,
		Height:     c.Board.Height,
		HiddenRows: c.Board.HiddenRows,
		Randomizer: engine.RandomizerKind(c.Randomizer),
		Seed:       seed,
		Gravity: engine.Gravity{
			Base:  seconds(c.Gravity.BaseSeconds),
			Decay: c.Gravity.Decay,
			Min:   seconds(c.Gravity.MinSeconds),
		},
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DifficultyPreset names a gravity curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No speed-up with level
)

// Difficulties lists the presets in menu order.
func Difficulties() []DifficultyPreset {
	return []DifficultyPreset{DifficultyNormal, DifficultyEasy, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// ApplyPreset adjusts the gravity curve for a difficulty preset. Normal
// leaves the loaded values untouched.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseSeconds = 0.8
	case DifficultyHard:
		cfg.Gravity.BaseSeconds = 0.3
	case DifficultyFixed:
		cfg.Gravity.Decay = 1
	}
	if cfg.Gravity.MinSeconds > cfg.Gravity.BaseSeconds {
		cfg.Gravity.MinSeconds = cfg.Gravity.BaseSeconds
	}
}
