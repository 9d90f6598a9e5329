// Package config persists CLI defaults across invocations: the board
// size and mine count new games start with, the seed used for
// deterministic replay, the log level, and the TUI's color theme and
// auto-play pacing.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LogLevel selects zerolog's verbosity for cmd/minesolve.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Theme selects the TUI's color scheme.
type Theme string

const (
	ThemeMatrix Theme = "matrix"
	ThemeAmber  Theme = "amber"
	ThemeBlue   Theme = "blue"
	ThemeRed    Theme = "red"
)

// AutoPlaySpeed controls how fast the TUI's "a" auto-play key advances
// through the solver's suggestions.
type AutoPlaySpeed string

const (
	SpeedSlow   AutoPlaySpeed = "slow"
	SpeedNormal AutoPlaySpeed = "normal"
	SpeedFast   AutoPlaySpeed = "fast"
	SpeedOff    AutoPlaySpeed = "off"
)

// Config stores user preferences persisted to disk.
type Config struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Mines         int           `json:"mines"`
	Seed          int64         `json:"seed"`
	LogLevel      LogLevel      `json:"log_level"`
	Theme         Theme         `json:"theme"`
	AutoPlaySpeed AutoPlaySpeed `json:"auto_play_speed"`
}

// DefaultConfig returns sensible defaults: a beginner-sized board.
func DefaultConfig() Config {
	return Config{
		Width:         9,
		Height:        9,
		Mines:         10,
		Seed:          0,
		LogLevel:      LevelInfo,
		Theme:         ThemeMatrix,
		AutoPlaySpeed: SpeedNormal,
	}
}

// Store manages config persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads the config from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from a specific path. If path is empty,
// uses ~/.minesolve/config.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			c := DefaultConfig()
			return &Store{Config: c}, err
		}
		path = filepath.Join(home, ".minesolve", "config.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize ensures all config values are valid, falling back to
// defaults, and clamps the board dimensions so a corrupted file can
// never hand the engine an impossible board.
func (s *Store) normalize() {
	switch s.Config.LogLevel {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		s.Config.LogLevel = LevelInfo
	}
	switch s.Config.Theme {
	case ThemeMatrix, ThemeAmber, ThemeBlue, ThemeRed:
	default:
		s.Config.Theme = ThemeMatrix
	}
	switch s.Config.AutoPlaySpeed {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedOff:
	default:
		s.Config.AutoPlaySpeed = SpeedNormal
	}
	if s.Config.Width <= 0 {
		s.Config.Width = 9
	}
	if s.Config.Height <= 0 {
		s.Config.Height = 9
	}
	if s.Config.Mines < 0 || s.Config.Mines > s.Config.Width*s.Config.Height {
		s.Config.Mines = min(10, s.Config.Width*s.Config.Height)
	}
}

// AutoPlayTickMs returns the TUI's auto-play frame interval in
// milliseconds.
func (c Config) AutoPlayTickMs() int {
	switch c.AutoPlaySpeed {
	case SpeedSlow:
		return 800
	case SpeedNormal:
		return 400
	case SpeedFast:
		return 150
	case SpeedOff:
		return 0
	}
	return 400
}
