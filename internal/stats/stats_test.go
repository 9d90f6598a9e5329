package stats

import (
	"path/filepath"
	"testing"
)

func TestGetMissingSizeReturnsNil(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "stats.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Get("9x9x10") != nil {
		t.Fatal("Get should return nil for an unplayed size")
	}
}

func TestRecordCleanTracksStreak(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "stats.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	s.RecordClean("9x9x10")
	s.RecordClean("9x9x10")
	s.RecordMineHit("9x9x10")
	s.RecordClean("9x9x10")

	e := s.Get("9x9x10")
	if e.GamesPlayed != 4 {
		t.Fatalf("GamesPlayed = %d, want 4", e.GamesPlayed)
	}
	if e.CleanSolves != 3 {
		t.Fatalf("CleanSolves = %d, want 3", e.CleanSolves)
	}
	if e.MinesHit != 1 {
		t.Fatalf("MinesHit = %d, want 1", e.MinesHit)
	}
	if e.CurrentStreak != 1 {
		t.Fatalf("CurrentStreak = %d, want 1 (reset by the mine hit)", e.CurrentStreak)
	}
	if e.BestStreak != 2 {
		t.Fatalf("BestStreak = %d, want 2", e.BestStreak)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	s.RecordClean("5x5x5")
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after Save: %v", err)
	}
	e := reloaded.Get("5x5x5")
	if e == nil || e.GamesPlayed != 1 {
		t.Fatalf("Get(5x5x5) = %+v, want GamesPlayed 1", e)
	}
}
