// Package chain implements a single mine/safe hypothesis over a
// board's frontier, and the deterministic enumeration used to split a
// hypothesis into its consistent siblings when a revealed tile admits
// more than one placement of mines among its hidden neighbors.
package chain

import (
	"sync/atomic"

	"github.com/herbhall/minesolve/internal/grid"
)

var nextID int64

// Chain is one consistent hypothesis: a set of tiles asserted to be
// mines, a set asserted to be safe, and a bound on the total number of
// mines it may assert. Two chains are distinct by identity even when
// their (mines, safe) pairs coincide -- see Clone.
type Chain struct {
	id         int64
	mineBudget int
	mines      map[*grid.Tile]struct{}
	safe       map[*grid.Tile]struct{}
}

// New creates an empty chain with the given mine budget (the board's
// total mine count).
func New(mineBudget int) *Chain {
	return &Chain{
		id:         atomic.AddInt64(&nextID, 1),
		mineBudget: mineBudget,
		mines:      make(map[*grid.Tile]struct{}),
		safe:       make(map[*grid.Tile]struct{}),
	}
}

// ID is a monotonic identifier assigned at construction. Chains are
// never deduplicated by content; ID is their only notion of identity.
func (c *Chain) ID() int64 { return c.id }

// MineBudget returns the chain's constant mine budget.
func (c *Chain) MineBudget() int { return c.mineBudget }

// Mines returns the tiles this chain asserts are mines.
func (c *Chain) Mines() []*grid.Tile {
	return keys(c.mines)
}

// Safe returns the tiles this chain asserts are safe.
func (c *Chain) Safe() []*grid.Tile {
	return keys(c.safe)
}

// IsMine reports whether t is asserted a mine by this chain.
func (c *Chain) IsMine(t *grid.Tile) bool {
	_, ok := c.mines[t]
	return ok
}

// IsSafe reports whether t is asserted safe by this chain.
func (c *Chain) IsSafe(t *grid.Tile) bool {
	_, ok := c.safe[t]
	return ok
}

// Clone returns a new chain, with a fresh ID, holding a copy of this
// chain's current mines and safe sets.
func (c *Chain) Clone() *Chain {
	clone := &Chain{
		id:         atomic.AddInt64(&nextID, 1),
		mineBudget: c.mineBudget,
		mines:      make(map[*grid.Tile]struct{}, len(c.mines)),
		safe:       make(map[*grid.Tile]struct{}, len(c.safe)),
	}
	for t := range c.mines {
		clone.mines[t] = struct{}{}
	}
	for t := range c.safe {
		clone.safe[t] = struct{}{}
	}
	return clone
}

// DropSafe removes t from this chain's safe set. Called when t itself
// becomes revealed and the assertion is no longer interesting.
func (c *Chain) DropSafe(t *grid.Tile) {
	delete(c.safe, t)
}

// Result is the outcome of RefineAgainst.
type Result struct {
	// Impossible is true when tile's evidence contradicts this chain;
	// the caller must discard the chain.
	Impossible bool
	// AppliedMines and AppliedSafes are the tiles folded into this
	// chain in place, from the first enumerated extension.
	AppliedMines []*grid.Tile
	AppliedSafes []*grid.Tile
	// Siblings are clones of this chain's pre-refinement state, one
	// per remaining consistent extension.
	Siblings []*Chain
}

// extension is one consistent way to split hiddens into mines/safes.
type extension struct {
	mines []*grid.Tile
	safes []*grid.Tile
}

// RefineAgainst updates the chain against a newly revealed tile with
// the given adjacency-mine count and neighbor list. It partitions
// neighbors into known mines, known safes (already asserted safe, or
// already revealed), and hiddens; enumerates every consistent way to
// place the tile's remaining mines among the hiddens; folds the first
// such placement into the chain in place; and returns a sibling chain
// per remaining placement.
func (c *Chain) RefineAgainst(tile *grid.Tile, neighbors []*grid.Tile) Result {
	knownMines := 0
	var hiddens []*grid.Tile
	for _, n := range neighbors {
		switch {
		case c.IsMine(n):
			knownMines++
		case c.IsSafe(n) || n.Revealed():
			// known safe, nothing to do
		default:
			hiddens = append(hiddens, n)
		}
	}

	remaining := tile.Number - knownMines
	if remaining < 0 || remaining > len(hiddens) {
		return Result{Impossible: true}
	}
	if remaining+len(c.mines) > c.mineBudget {
		return Result{Impossible: true}
	}

	extensions := enumerate(hiddens, remaining)

	var appliedMines, appliedSafes []*grid.Tile
	var siblings []*Chain
	for i, ext := range extensions {
		if i == 0 {
			appliedMines = ext.mines
			appliedSafes = ext.safes
			continue
		}
		sib := c.Clone()
		sib.apply(ext)
		siblings = append(siblings, sib)
	}
	c.apply(extension{mines: appliedMines, safes: appliedSafes})

	return Result{
		AppliedMines: appliedMines,
		AppliedSafes: appliedSafes,
		Siblings:     siblings,
	}
}

func (c *Chain) apply(ext extension) {
	for _, t := range ext.mines {
		c.mines[t] = struct{}{}
	}
	for _, t := range ext.safes {
		c.safe[t] = struct{}{}
	}
}

// enumerate yields, for every n-subset of items, the pair (subset,
// complement) as an extension -- a direct translation of
// comb_and_comp's first-element-in/first-element-out recursion, which
// fixes the enumeration order given items' order.
func enumerate(items []*grid.Tile, n int) []extension {
	if len(items) < n || n < 0 {
		return nil
	}
	if n == 0 || len(items) == 0 {
		complement := append([]*grid.Tile(nil), items...)
		return []extension{{mines: nil, safes: complement}}
	}

	first, rest := items[0], items[1:]
	var result []extension

	for _, e := range enumerate(rest, n-1) {
		mines := make([]*grid.Tile, 0, len(e.mines)+1)
		mines = append(mines, first)
		mines = append(mines, e.mines...)
		result = append(result, extension{mines: mines, safes: e.safes})
	}
	for _, e := range enumerate(rest, n) {
		safes := make([]*grid.Tile, 0, len(e.safes)+1)
		safes = append(safes, first)
		safes = append(safes, e.safes...)
		result = append(result, extension{mines: e.mines, safes: safes})
	}
	return result
}

func keys(m map[*grid.Tile]struct{}) []*grid.Tile {
	out := make([]*grid.Tile, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	return out
}
