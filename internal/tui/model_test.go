package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herbhall/minesolve/internal/config"
	"github.com/herbhall/minesolve/internal/stats"
)

func newTestStats(t *testing.T) *stats.Store {
	t.Helper()
	s, err := stats.LoadFrom(t.TempDir() + "/stats.json")
	if err != nil {
		t.Fatalf("stats.LoadFrom: %v", err)
	}
	return s
}

func TestStartGameEntersPlayingPhase(t *testing.T) {
	m := New(config.DefaultConfig(), newTestStats(t))
	next, _ := m.updateDifficulty("1")
	nm := next.(Model)
	if nm.phase != phasePlaying {
		t.Fatalf("phase = %v, want phasePlaying", nm.phase)
	}
	if nm.ref == nil || nm.board == nil {
		t.Fatal("ref and board should be initialized after startGame")
	}
}

func TestQuitFromDifficultyScreen(t *testing.T) {
	m := New(config.DefaultConfig(), newTestStats(t))
	next, _ := m.updateDifficulty("q")
	nm := next.(Model)
	if !nm.Done() {
		t.Fatal("Done() should be true after q on the difficulty screen")
	}
}

func TestCursorMovementStaysInBounds(t *testing.T) {
	m := New(config.DefaultConfig(), newTestStats(t))
	next, _ := m.updateDifficulty("1")
	nm := next.(Model)

	next, _ = nm.updatePlaying("up")
	nm = next.(Model)
	if nm.cursorRow != 0 {
		t.Fatalf("cursorRow = %d, want 0 (clamped)", nm.cursorRow)
	}

	next, _ = nm.updatePlaying("left")
	nm = next.(Model)
	if nm.cursorCol != 0 {
		t.Fatalf("cursorCol = %d, want 0 (clamped)", nm.cursorCol)
	}
}

func TestNewWithSizeSkipsDifficultyScreen(t *testing.T) {
	m := NewWithSize(config.DefaultConfig(), newTestStats(t), 6, 6, 5, 99)
	if m.phase != phasePlaying {
		t.Fatalf("phase = %v, want phasePlaying", m.phase)
	}
	if m.ref.Width() != 6 || m.ref.Height() != 6 || m.ref.TotalMines() != 5 {
		t.Fatalf("board size = %dx%d/%d, want 6x6/5", m.ref.Width(), m.ref.Height(), m.ref.TotalMines())
	}
}

func TestRevealingATileClearsItFromSuggestionOrBoard(t *testing.T) {
	m := NewWithSize(config.DefaultConfig(), newTestStats(t), 8, 8, 5, 7)
	next, _ := m.updatePlaying("enter")
	nm := next.(Model)
	if nm.phase != phasePlaying && nm.phase != phaseGameOver {
		t.Fatalf("unexpected phase %v after first reveal", nm.phase)
	}
	if !nm.board.TileAt(0, 0).Revealed() {
		t.Fatal("tile (0,0) should be revealed on the solver board after the click")
	}
	for _, s := range nm.suggestion {
		if s == (tileXY{0, 0}) {
			t.Fatal("revealed tile (0,0) must not remain in the suggestion set")
		}
	}
}

var _ tea.Model = Model{}
