// Package refboard is a real minesweeper board: it places mines,
// computes adjacency counts, and flood-fills zero-adjacency regions.
// Its only job is turning a single click into the (x, y, number) batch
// the engine's Board.Reveal expects -- it tracks no flags, no win/loss
// history, no score.
package refboard

import "math/rand/v2"

// Cell is one board position: whether it holds a mine, whether it has
// been uncovered yet, and its adjacency count once uncovered.
type Cell struct {
	Mine     bool
	Revealed bool
	Adjacent int
}

// Outcome reports what a Click produced.
type Outcome int

const (
	// Continue means the clicked cell (and any flood-filled neighbors)
	// were safely uncovered.
	Continue Outcome = iota
	// Mine means the clicked cell was a mine; the game ends.
	Mine
	// AlreadyRevealed means the click targeted a cell already uncovered.
	AlreadyRevealed
	// OutOfBounds means the click fell outside the board.
	OutOfBounds
)

// Reveal is one (x, y, number) pair uncovered by a single Click,
// suitable for feeding to minesweeper.Board.Reveal.
type Reveal struct {
	X, Y   int
	Number int
}

// Board is a real minesweeper board with mines placed lazily on the
// first click, excluding the clicked cell and its neighbors, the way
// the teacher's game does it.
type Board struct {
	cells         [][]Cell // cells[y][x]
	width, height int
	totalMines    int
	firstClick    bool
	revealedCount int
	rng           *rand.Rand
}

// New constructs a width x height board with mineCount mines, not yet
// placed; mines are placed on the first Click.
func New(width, height, mineCount int, rng *rand.Rand) *Board {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Board{
		cells:      cells,
		width:      width,
		height:     height,
		totalMines: mineCount,
		firstClick: true,
		rng:        rng,
	}
}

// Width returns the board's column count.
func (b *Board) Width() int { return b.width }

// Height returns the board's row count.
func (b *Board) Height() int { return b.height }

// TotalMines returns the board's total mine count.
func (b *Board) TotalMines() int { return b.totalMines }

// Solved reports whether every non-mine cell has been uncovered.
func (b *Board) Solved() bool {
	return b.revealedCount == b.width*b.height-b.totalMines
}

// MineAt reports whether (x, y) holds a mine. Meaningless before the
// first Click places mines; used by callers rendering the board after
// a loss, when every mine should be shown regardless of Revealed.
func (b *Board) MineAt(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.cells[y][x].Mine
}

// Click uncovers (x, y). On the first call across the board's
// lifetime, mines are placed avoiding (x, y) and its neighbors. If the
// clicked cell is a mine, Outcome is Mine and reveals is empty.
// Otherwise it flood-fills outward from (x, y) through every connected
// zero-adjacency region and returns every cell uncovered by the click,
// in BFS order.
func (b *Board) Click(x, y int) (Outcome, []Reveal) {
	if !b.inBounds(x, y) {
		return OutOfBounds, nil
	}
	if b.cells[y][x].Revealed {
		return AlreadyRevealed, nil
	}

	if b.firstClick {
		b.placeMines(x, y)
		b.firstClick = false
	}

	if b.cells[y][x].Mine {
		return Mine, nil
	}

	return Continue, b.floodReveal(x, y)
}

func (b *Board) placeMines(safeX, safeY int) {
	excluded := make(map[[2]int]bool)
	for _, n := range b.neighbors(safeX, safeY) {
		excluded[n] = true
	}
	excluded[[2]int{safeX, safeY}] = true

	placed := 0
	for placed < b.totalMines {
		x := b.rng.IntN(b.width)
		y := b.rng.IntN(b.height)
		pos := [2]int{x, y}
		if excluded[pos] || b.cells[y][x].Mine {
			continue
		}
		b.cells[y][x].Mine = true
		placed++
	}
	b.computeAdjacent()
}

func (b *Board) computeAdjacent() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y][x].Mine {
				continue
			}
			count := 0
			for _, n := range b.neighbors(x, y) {
				if b.cells[n[1]][n[0]].Mine {
					count++
				}
			}
			b.cells[y][x].Adjacent = count
		}
	}
}

func (b *Board) floodReveal(x, y int) []Reveal {
	type pos struct{ x, y int }
	queue := []pos{{x, y}}
	var out []Reveal

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		cell := &b.cells[p.y][p.x]
		if cell.Revealed || cell.Mine {
			continue
		}

		cell.Revealed = true
		b.revealedCount++
		out = append(out, Reveal{X: p.x, Y: p.y, Number: cell.Adjacent})

		if cell.Adjacent == 0 {
			for _, n := range b.neighbors(p.x, p.y) {
				if !b.cells[n[1]][n[0]].Revealed {
					queue = append(queue, pos{n[0], n[1]})
				}
			}
		}
	}
	return out
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) neighbors(x, y int) [][2]int {
	var result [][2]int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.inBounds(nx, ny) {
				result = append(result, [2]int{nx, ny})
			}
		}
	}
	return result
}
