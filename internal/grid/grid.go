// Package grid is the tile graph: an immutable board of tiles with
// 8-neighborhood adjacency. It owns every Tile and never mutates the
// board's shape after construction.
package grid

// neighborOffsets lists the eight grid-adjacent positions around a tile.
var neighborOffsets = [8][2]int{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// Tile is a single cell on the board, identified by its (X, Y)
// position. Number is the revealed adjacency-mine count, or -1 if the
// tile is still hidden. Number transitions hidden -> revealed exactly
// once and never reverts.
type Tile struct {
	X, Y   int
	Number int

	neighbors []*Tile
}

// Hidden indicates that this tile's revealed status.
const Hidden = -1

// Revealed reports whether the tile's adjacency count is known.
func (t *Tile) Revealed() bool {
	return t.Number != Hidden
}

// SetNumber marks the tile revealed with the given adjacency count.
func (t *Tile) SetNumber(n int) {
	t.Number = n
}

// Grid is the immutable board: every tile allocated once, neighbor
// lists precomputed at construction.
type Grid struct {
	width, height int
	tiles         [][]*Tile // tiles[y][x]
}

// NewGrid constructs a width x height board of hidden tiles and wires
// up each tile's 8-neighborhood.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.tiles = make([][]*Tile, height)
	for y := range g.tiles {
		g.tiles[y] = make([]*Tile, width)
		for x := range g.tiles[y] {
			g.tiles[y][x] = &Tile{X: x, Y: y, Number: Hidden}
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[y][x].neighbors = g.computeNeighbors(x, y)
		}
	}
	return g
}

// Width returns the board's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the board's row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TileAt returns the tile at (x, y), or nil if out of bounds.
func (g *Grid) TileAt(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.tiles[y][x]
}

// Neighbors returns the up-to-eight grid-adjacent tiles of t, clipped
// to the board.
func (g *Grid) Neighbors(t *Tile) []*Tile {
	return t.neighbors
}

// Tiles returns every tile on the board, row-major.
func (g *Grid) Tiles() []*Tile {
	all := make([]*Tile, 0, g.width*g.height)
	for _, row := range g.tiles {
		all = append(all, row...)
	}
	return all
}

func (g *Grid) computeNeighbors(x, y int) []*Tile {
	var result []*Tile
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if g.InBounds(nx, ny) {
			result = append(result, g.tiles[ny][nx])
		}
	}
	return result
}
