package minesweeper

import (
	"math/rand/v2"
	"testing"
)

func deterministicBoard(width, height, mines int) *Board {
	return NewBoardWithRand(width, height, mines, rand.New(rand.NewPCG(7, 11)))
}

func TestNewBoardPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-height board")
		}
	}()
	NewBoard(4, 0, 1)
}

func TestNewBoardPanicsOnBadMineCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mine count exceeding tile count")
		}
	}()
	NewBoard(2, 2, 5)
}

func TestRevealPanicsOutOfBounds(t *testing.T) {
	b := deterministicBoard(3, 3, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds reveal")
		}
	}()
	b.Reveal([]Pair{{X: 9, Y: 9, Number: 0}})
}

func TestRevealPanicsOnDoubleReveal(t *testing.T) {
	b := deterministicBoard(3, 3, 1)
	b.Reveal([]Pair{{X: 0, Y: 0, Number: 0}})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for re-revealing an already-revealed tile")
		}
	}()
	b.Reveal([]Pair{{X: 0, Y: 0, Number: 1}})
}

func TestRevealPanicsOnNumberOutOfRange(t *testing.T) {
	b := deterministicBoard(3, 3, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for number outside [0,8]")
		}
	}()
	b.Reveal([]Pair{{X: 0, Y: 0, Number: 9}})
}

// Spec scenario 1: 2x2, 3 mines, reveal (0,0)=3.
func TestRevealSimpleChain(t *testing.T) {
	b := deterministicBoard(2, 2, 3)
	suggestion := b.Reveal([]Pair{{X: 0, Y: 0, Number: 3}})

	if got := b.ChainCount(); got != 1 {
		t.Fatalf("ChainCount() = %d, want 1", got)
	}
	for _, xy := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		tile := b.TileAt(xy[0], xy[1])
		if got := b.MineCountOf(tile); got != 1 {
			t.Fatalf("MineCountOf(%d,%d) = %d, want 1", xy[0], xy[1], got)
		}
	}
	if len(b.Unused()) != 0 {
		t.Fatal("Unused() should be empty")
	}
	if len(suggestion) != 0 {
		t.Fatal("suggestion should be empty: no safe move exists")
	}
}

func TestRevealBatchOrdersNumbersBeforeProcessing(t *testing.T) {
	b := deterministicBoard(4, 2, 1)
	b.Reveal([]Pair{{X: 1, Y: 0, Number: 1}, {X: 2, Y: 0, Number: 1}})

	if got := b.ChainCount(); got != 2 {
		t.Fatalf("ChainCount() = %d, want 2", got)
	}
}
