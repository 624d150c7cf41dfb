package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDir is the per-user directory under $HOME.
const appDir = ".blockfall"

// Source describes where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.blockfall/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default -> hardcoded default.
// An explicit customPath that cannot be read, parsed or validated is an
// error; unusable files found on the search path are skipped.
func LoadTetris(customPath string) (TetrisConfig, Source, error) {
	if customPath != "" {
		cfg, err := readTetris(customPath)
		if err != nil {
			return TetrisConfig{}, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if cfg, err := readTetris(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := readTetris(filepath.Join("configs", "tetris.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := parseTetris(defaultTetrisYAML, "embedded default"); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultTetrisConfig(), SourceBuiltin, nil
}

func readTetris(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return parseTetris(data, path)
}

// parseTetris decodes YAML on top of the built-in defaults so a file only
// needs the keys it changes. Unknown keys are rejected; an empty file
// yields the defaults.
func parseTetris(data []byte, name string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return TetrisConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs", filename)
}

// UserDir returns ~/.blockfall/<sub>, or a relative fallback when the home
// directory is unknown.
func UserDir(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(appDir, sub)
	}
	return filepath.Join(home, appDir, sub)
}
