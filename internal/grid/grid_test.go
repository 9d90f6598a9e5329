package grid

import "testing"

func TestNewGridAllHidden(t *testing.T) {
	g := NewGrid(5, 5)
	for _, tile := range g.Tiles() {
		if tile.Revealed() {
			t.Fatalf("tile (%d,%d) should start hidden", tile.X, tile.Y)
		}
	}
}

func TestNeighborsCorner(t *testing.T) {
	g := NewGrid(5, 5)
	tile := g.TileAt(0, 0)
	neighs := g.Neighbors(tile)
	if len(neighs) != 3 {
		t.Fatalf("corner tile should have 3 neighbors, got %d", len(neighs))
	}
}

func TestNeighborsEdge(t *testing.T) {
	g := NewGrid(5, 5)
	tile := g.TileAt(2, 0)
	neighs := g.Neighbors(tile)
	if len(neighs) != 5 {
		t.Fatalf("edge tile should have 5 neighbors, got %d", len(neighs))
	}
}

func TestNeighborsInterior(t *testing.T) {
	g := NewGrid(5, 5)
	tile := g.TileAt(2, 2)
	neighs := g.Neighbors(tile)
	if len(neighs) != 8 {
		t.Fatalf("interior tile should have 8 neighbors, got %d", len(neighs))
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	if g.TileAt(-1, 0) != nil {
		t.Fatal("TileAt(-1,0) should be nil")
	}
	if g.TileAt(5, 5) != nil {
		t.Fatal("TileAt(5,5) should be nil")
	}
}

func TestSetNumber(t *testing.T) {
	g := NewGrid(2, 2)
	tile := g.TileAt(0, 0)
	tile.SetNumber(3)
	if !tile.Revealed() {
		t.Fatal("tile should be revealed after SetNumber")
	}
	if tile.Number != 3 {
		t.Fatalf("Number = %d, want 3", tile.Number)
	}
}
