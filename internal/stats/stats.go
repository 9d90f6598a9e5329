// Package stats persists solver run history across invocations of
// `minesolve bench`: how many self-played games a board size has seen,
// how many finished clean, how many hit a mine, and the longest streak
// of clean solves in a row.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// RunStats tallies outcomes for one board-size key (e.g. "9x9x10").
type RunStats struct {
	GamesPlayed    int    `json:"games_played"`
	CleanSolves    int    `json:"clean_solves"`
	MinesHit       int    `json:"mines_hit"`
	CurrentStreak  int    `json:"current_streak"`
	BestStreak     int    `json:"best_streak"`
	LastPlayedDate string `json:"last_played_date"`
}

// History stores run stats for every board size ever benched.
type History struct {
	BoardSizes map[string]*RunStats `json:"board_sizes,omitempty"`
}

// Store manages run-history persistence.
type Store struct {
	path    string
	History History
}

// Load reads the history from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads history from a specific path. If path is empty, uses
// ~/.minesolve/stats.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{History: History{}}, err
		}
		path = filepath.Join(home, ".minesolve", "stats.json")
	}

	s := &Store{path: path, History: History{}}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.History); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the history to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.History, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Get returns the run stats for a board-size key, or nil if it has
// never been played.
func (s *Store) Get(sizeKey string) *RunStats {
	if s.History.BoardSizes == nil {
		return nil
	}
	return s.History.BoardSizes[sizeKey]
}

func (s *Store) entry(sizeKey string) *RunStats {
	if s.History.BoardSizes == nil {
		s.History.BoardSizes = make(map[string]*RunStats)
	}
	e, ok := s.History.BoardSizes[sizeKey]
	if !ok {
		e = &RunStats{}
		s.History.BoardSizes[sizeKey] = e
	}
	return e
}

// RecordClean records one game that finished without hitting a mine,
// extending the current streak and updating the best streak if beaten.
func (s *Store) RecordClean(sizeKey string) {
	e := s.entry(sizeKey)
	e.GamesPlayed++
	e.CleanSolves++
	e.CurrentStreak++
	if e.CurrentStreak > e.BestStreak {
		e.BestStreak = e.CurrentStreak
	}
	e.LastPlayedDate = time.Now().Format("2006-01-02")
}

// RecordMineHit records one game that ended by hitting a mine,
// resetting the current streak.
func (s *Store) RecordMineHit(sizeKey string) {
	e := s.entry(sizeKey)
	e.GamesPlayed++
	e.MinesHit++
	e.CurrentStreak = 0
	e.LastPlayedDate = time.Now().Format("2006-01-02")
}
