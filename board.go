// Package minesweeper is the public library surface: a tile graph and
// a live chain map wired together behind the Board type. Board holds
// no deductive logic of its own; it is a thin composition of
// internal/grid and internal/chainmap plus the caller-contract checks
// spec'd at the boundary.
package minesweeper

import (
	"fmt"
	"math/rand/v2"

	"github.com/herbhall/minesolve/internal/chainmap"
	"github.com/herbhall/minesolve/internal/grid"
)

// Pair is one revealed tile: its board position and its adjacency-mine
// count.
type Pair struct {
	X, Y   int
	Number int
}

// Board is the engine's entry point: an immutable tile graph and the
// chain map tracking every live hypothesis over it.
type Board struct {
	grid *grid.Grid
	cm   *chainmap.ChainMap
}

// NewBoard constructs a width x height board with mineCount total
// mines and an empty chain map. Panics if width, height <= 0 or
// mineCount is outside [0, width*height] -- caller contract violations
// per the error handling design.
func NewBoard(width, height, mineCount int) *Board {
	return NewBoardWithRand(width, height, mineCount, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewBoardWithRand is NewBoard with an injectable source of randomness,
// for deterministic replay and testing.
func NewBoardWithRand(width, height, mineCount int, rng *rand.Rand) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("minesweeper: invalid board size %dx%d", width, height))
	}
	if mineCount < 0 || mineCount > width*height {
		panic(fmt.Sprintf("minesweeper: mine count %d out of range for %dx%d board", mineCount, width, height))
	}
	g := grid.NewGrid(width, height)
	return &Board{
		grid: g,
		cm:   chainmap.New(g, mineCount, rng),
	}
}

// Width returns the board's column count.
func (b *Board) Width() int { return b.grid.Width() }

// Height returns the board's row count.
func (b *Board) Height() int { return b.grid.Height() }

// Reveal folds an ordered batch of (position, number) pairs into the
// chain map and returns the recommended next reveal set. Every
// position must be in-bounds, previously hidden, and carry a number in
// [0, 8]; violations panic at this boundary rather than propagate into
// the deductive core. Numbers for the whole batch are set before any
// of them is processed, so later pairs in the same batch are already
// "revealed" as far as earlier pairs' refinement is concerned.
func (b *Board) Reveal(pairs []Pair) []*grid.Tile {
	tiles := make([]*grid.Tile, 0, len(pairs))
	for _, p := range pairs {
		t := b.grid.TileAt(p.X, p.Y)
		if t == nil {
			panic(fmt.Sprintf("minesweeper: (%d,%d) is out of bounds", p.X, p.Y))
		}
		if t.Revealed() {
			panic(fmt.Sprintf("minesweeper: (%d,%d) already revealed", p.X, p.Y))
		}
		if p.Number < 0 || p.Number > 8 {
			panic(fmt.Sprintf("minesweeper: number %d at (%d,%d) out of range [0,8]", p.Number, p.X, p.Y))
		}
		tiles = append(tiles, t)
	}
	for i, t := range tiles {
		t.SetNumber(pairs[i].Number)
	}
	return b.cm.Reveal(tiles)
}

// MineCountOf returns the number of live chains asserting t a mine.
func (b *Board) MineCountOf(t *grid.Tile) int { return b.cm.MineCountOf(t) }

// ChainCount reports the number of live chains.
func (b *Board) ChainCount() int { return b.cm.ChainCount() }

// Unused returns the tiles appearing in no chain and not yet revealed.
func (b *Board) Unused() []*grid.Tile { return b.cm.Unused() }

// TileAt returns the tile at (x, y), or nil if out of bounds.
func (b *Board) TileAt(x, y int) *grid.Tile { return b.grid.TileAt(x, y) }

// Tiles returns every tile on the board, row-major.
func (b *Board) Tiles() []*grid.Tile { return b.grid.Tiles() }
