package refboard

import (
	"math/rand/v2"
	"testing"
)

func TestClickOutOfBounds(t *testing.T) {
	b := New(5, 5, 3, rand.New(rand.NewPCG(1, 2)))
	outcome, reveals := b.Click(9, 9)
	if outcome != OutOfBounds {
		t.Fatalf("outcome = %v, want OutOfBounds", outcome)
	}
	if reveals != nil {
		t.Fatal("reveals should be nil")
	}
}

func TestFirstClickNeverMined(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		b := New(5, 5, 10, rand.New(rand.NewPCG(seed, seed+1)))
		outcome, reveals := b.Click(2, 2)
		if outcome == Mine {
			t.Fatalf("seed %d: first click must never be a mine", seed)
		}
		if len(reveals) == 0 {
			t.Fatalf("seed %d: expected at least one revealed cell", seed)
		}
	}
}

func TestDoubleClickSameCell(t *testing.T) {
	b := New(5, 5, 1, rand.New(rand.NewPCG(1, 2)))
	b.Click(0, 0)
	outcome, _ := b.Click(0, 0)
	if outcome != AlreadyRevealed {
		t.Fatalf("outcome = %v, want AlreadyRevealed", outcome)
	}
}

func TestFloodFillRevealsAllCellsOnMinelessBoard(t *testing.T) {
	b := New(4, 4, 0, rand.New(rand.NewPCG(1, 2)))
	_, reveals := b.Click(0, 0)
	if len(reveals) != 16 {
		t.Fatalf("reveals = %d, want 16 (entire mineless board)", len(reveals))
	}
	if !b.Solved() {
		t.Fatal("board should be solved once every non-mine cell is revealed")
	}
}

func TestRevealedNumbersMatchAdjacency(t *testing.T) {
	b := New(6, 6, 8, rand.New(rand.NewPCG(3, 4)))
	_, reveals := b.Click(3, 3)
	for _, r := range reveals {
		if r.Number < 0 || r.Number > 8 {
			t.Fatalf("reveal at (%d,%d) has out-of-range number %d", r.X, r.Y, r.Number)
		}
		want := 0
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if (dx != 0 || dy != 0) && b.MineAt(r.X+dx, r.Y+dy) {
					want++
				}
			}
		}
		if r.Number != want {
			t.Fatalf("reveal at (%d,%d) has number %d, want %d adjacent mines", r.X, r.Y, r.Number, want)
		}
	}
}
