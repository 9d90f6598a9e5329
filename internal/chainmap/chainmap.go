// Package chainmap owns the live set of chains for a board and the
// inverted per-tile indices needed to answer, in logarithmic time,
// which hidden tile is least likely to be a mine. It is the engine's
// single mutating entry point: Reveal.
package chainmap

import (
	"math/rand/v2"

	"github.com/google/btree"

	"github.com/herbhall/minesolve/internal/chain"
	"github.com/herbhall/minesolve/internal/grid"
)

// btreeDegree is the branching factor of the ordered mine-count index.
// Small boards have few distinct counts, so a small degree keeps nodes
// cache-friendly without sacrificing the O(log n) bound the structure
// exists for.
const btreeDegree = 8

// countBucket is a btree.Item: the non-empty set of hidden tiles
// currently asserted a mine by exactly `count` live chains.
type countBucket struct {
	count int
	tiles map[*grid.Tile]struct{}
}

func (b *countBucket) Less(than btree.Item) bool {
	return b.count < than.(*countBucket).count
}

// ChainMap is the collection of live chains over a board, with
// inverted indices and a sorted view over mine frequency.
type ChainMap struct {
	g               *grid.Grid
	globalMineCount int

	chains map[int64]*chain.Chain

	mineIndex map[*grid.Tile]map[int64]*chain.Chain
	safeIndex map[*grid.Tile]map[int64]*chain.Chain
	mineCount map[*grid.Tile]int

	unused               map[*grid.Tile]struct{}
	totalMineAssertions  int
	orderedCounts        *btree.BTree
	prevCounts           map[*grid.Tile]int
	pendingUpdates       map[*grid.Tile]struct{}

	rng *rand.Rand
}

// New constructs a chain map seeded with a single empty chain whose
// mine budget is globalMineCount; every tile on g starts unused.
func New(g *grid.Grid, globalMineCount int, rng *rand.Rand) *ChainMap {
	cm := &ChainMap{
		g:               g,
		globalMineCount: globalMineCount,
		chains:          make(map[int64]*chain.Chain),
		mineIndex:       make(map[*grid.Tile]map[int64]*chain.Chain),
		safeIndex:       make(map[*grid.Tile]map[int64]*chain.Chain),
		mineCount:       make(map[*grid.Tile]int),
		unused:          make(map[*grid.Tile]struct{}),
		orderedCounts:   btree.New(btreeDegree),
		prevCounts:      make(map[*grid.Tile]int),
		pendingUpdates:  make(map[*grid.Tile]struct{}),
		rng:             rng,
	}

	for _, t := range g.Tiles() {
		cm.mineIndex[t] = make(map[int64]*chain.Chain)
		cm.safeIndex[t] = make(map[int64]*chain.Chain)
		cm.mineCount[t] = 0
		cm.unused[t] = struct{}{}
	}

	seed := chain.New(globalMineCount)
	cm.chains[seed.ID()] = seed

	return cm
}

// Reveal refines every live chain against each tile in turn (tiles
// must already carry their revealed Number), maintains all invariants,
// and returns the recommended next reveal set.
func (cm *ChainMap) Reveal(tiles []*grid.Tile) []*grid.Tile {
	for _, t := range tiles {
		cm.updateTile(t)
	}
	cm.refreshOrderedCounts()
	return cm.SuggestNext()
}

func (cm *ChainMap) updateTile(t *grid.Tile) {
	delete(cm.unused, t)

	toEvict := make(map[int64]*chain.Chain)
	for id, c := range cm.mineIndex[t] {
		toEvict[id] = c
	}

	for _, c := range cm.safeIndex[t] {
		c.DropSafe(t)
	}

	delete(cm.mineCount, t)
	cm.removeCountTile(t)
	delete(cm.pendingUpdates, t)

	var newChains []*chain.Chain
	for id, c := range cm.chains {
		res := c.RefineAgainst(t, cm.g.Neighbors(t))
		if res.Impossible {
			toEvict[id] = c
			continue
		}
		if len(res.AppliedMines) > 0 || len(res.AppliedSafes) > 0 {
			cm.registerAssertions(c, res.AppliedMines, res.AppliedSafes)
			cm.markUsed(res.AppliedMines)
			cm.markUsed(res.AppliedSafes)
		}
		newChains = append(newChains, res.Siblings...)
	}

	for _, sib := range newChains {
		cm.addChain(sib)
		cm.markUsed(sib.Mines())
		cm.markUsed(sib.Safe())
	}

	cm.safeIndex[t] = make(map[int64]*chain.Chain)

	for _, c := range toEvict {
		cm.removeChain(c)
	}
}

// addChain inserts a brand-new chain and registers its current
// mines/safe assertions in the indices.
func (cm *ChainMap) addChain(c *chain.Chain) {
	cm.chains[c.ID()] = c
	cm.totalMineAssertions += len(c.Mines())
	for _, t := range c.Mines() {
		cm.addMineTileChain(t, c)
	}
	for _, t := range c.Safe() {
		cm.addSafeTileChain(t, c)
	}
}

// registerAssertions records assertions an already-live chain gained
// from one refinement step.
func (cm *ChainMap) registerAssertions(c *chain.Chain, mines, safes []*grid.Tile) {
	cm.totalMineAssertions += len(mines)
	for _, t := range mines {
		cm.addMineTileChain(t, c)
	}
	for _, t := range safes {
		cm.addSafeTileChain(t, c)
	}
}

// removeChain evicts a chain from the live set and every index entry
// it holds.
func (cm *ChainMap) removeChain(c *chain.Chain) {
	delete(cm.chains, c.ID())
	cm.totalMineAssertions -= len(c.Mines())
	for _, t := range c.Mines() {
		cm.removeMineTileChain(t, c)
	}
	for _, t := range c.Safe() {
		cm.removeSafeTileChain(t, c)
	}
}

func (cm *ChainMap) addMineTileChain(t *grid.Tile, c *chain.Chain) {
	cm.mineIndex[t][c.ID()] = c
	cm.mineCount[t]++
	cm.queueUpdate(t)
}

func (cm *ChainMap) addSafeTileChain(t *grid.Tile, c *chain.Chain) {
	cm.safeIndex[t][c.ID()] = c
	cm.queueUpdate(t)
}

func (cm *ChainMap) removeMineTileChain(t *grid.Tile, c *chain.Chain) {
	delete(cm.mineIndex[t], c.ID())
	if _, tracked := cm.mineCount[t]; !tracked {
		// t was already revealed (and dropped from mineCount) earlier in
		// this same updateTile call; removeChain's later eviction of a
		// chain that still asserted t a mine must not resurrect it.
		return
	}
	cm.mineCount[t]--
	cm.queueUpdate(t)
}

func (cm *ChainMap) removeSafeTileChain(t *grid.Tile, c *chain.Chain) {
	delete(cm.safeIndex[t], c.ID())
}

// queueUpdate marks t for an ordered-counts refresh, but only while t
// is still tracked (hidden); a tile removed by updateTile must never
// be re-queued by bookkeeping that races with its own revelation.
func (cm *ChainMap) queueUpdate(t *grid.Tile) {
	if _, tracked := cm.mineCount[t]; tracked {
		cm.pendingUpdates[t] = struct{}{}
	}
}

func (cm *ChainMap) markUsed(tiles []*grid.Tile) {
	for _, t := range tiles {
		delete(cm.unused, t)
	}
}

func (cm *ChainMap) getBucket(count int) *countBucket {
	item := cm.orderedCounts.Get(&countBucket{count: count})
	if item == nil {
		return nil
	}
	return item.(*countBucket)
}

func (cm *ChainMap) removeCountTile(t *grid.Tile) {
	prev, ok := cm.prevCounts[t]
	if !ok {
		return
	}
	if b := cm.getBucket(prev); b != nil {
		delete(b.tiles, t)
		if len(b.tiles) == 0 {
			cm.orderedCounts.Delete(b)
		}
	}
	delete(cm.prevCounts, t)
}

func (cm *ChainMap) refreshOrderedCounts() {
	for t := range cm.pendingUpdates {
		cm.removeCountTile(t)

		count := cm.mineCount[t]
		b := cm.getBucket(count)
		if b == nil {
			b = &countBucket{count: count, tiles: make(map[*grid.Tile]struct{})}
			cm.orderedCounts.ReplaceOrInsert(b)
		}
		b.tiles[t] = struct{}{}
		cm.prevCounts[t] = count
	}
	cm.pendingUpdates = make(map[*grid.Tile]struct{})
}

// SuggestNext returns the recommended next reveal set without
// processing any new evidence: the minimum mine-count bucket if it
// reads zero, the full unused interior if the remaining mine budget is
// exhausted, a single random pick from whichever of the frontier or
// the interior has the lower mine probability, or nil if no live chain
// survives or no safe move exists.
func (cm *ChainMap) SuggestNext() []*grid.Tile {
	if len(cm.chains) == 0 || cm.orderedCounts.Len() == 0 {
		return nil
	}

	min := cm.orderedCounts.Min().(*countBucket)
	kMin := min.count
	tilesMin := tileSlice(min.tiles)

	if kMin == 0 {
		return tilesMin
	}

	numChains := len(cm.chains)
	var avgMinesPerChain float64
	if numChains > 0 {
		avgMinesPerChain = float64(cm.totalMineAssertions) / float64(numChains)
	}
	remainingMines := float64(cm.globalMineCount) - avgMinesPerChain

	if remainingMines == 0 && len(cm.unused) > 0 {
		return tileSlice(cm.unused)
	}

	var pUnused float64
	if len(cm.unused) == 0 {
		pUnused = 1
	} else {
		pUnused = remainingMines / float64(len(cm.unused))
	}

	if kMin == numChains && pUnused == 1 {
		return nil
	}

	pFrontier := float64(kMin) / float64(numChains)

	if pFrontier <= pUnused {
		return []*grid.Tile{tilesMin[cm.rng.IntN(len(tilesMin))]}
	}
	unusedSlice := tileSlice(cm.unused)
	return []*grid.Tile{unusedSlice[cm.rng.IntN(len(unusedSlice))]}
}

// ChainCount reports the number of live chains.
func (cm *ChainMap) ChainCount() int { return len(cm.chains) }

// MineCountOf returns the number of live chains asserting t a mine.
func (cm *ChainMap) MineCountOf(t *grid.Tile) int { return cm.mineCount[t] }

// Unused returns the tiles appearing in no chain and not revealed.
func (cm *ChainMap) Unused() []*grid.Tile { return tileSlice(cm.unused) }

// BucketTiles returns the tiles currently indexed at the given
// mine-count, for tests and diagnostics.
func (cm *ChainMap) BucketTiles(count int) []*grid.Tile {
	b := cm.getBucket(count)
	if b == nil {
		return nil
	}
	return tileSlice(b.tiles)
}

func tileSlice(set map[*grid.Tile]struct{}) []*grid.Tile {
	out := make([]*grid.Tile, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	return out
}
