package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	minesweeper "github.com/herbhall/minesolve"
	"github.com/herbhall/minesolve/internal/refboard"
	"github.com/herbhall/minesolve/internal/stats"
)

func newBenchCmd(logLevel *string) *cobra.Command {
	var games, width, height, mines int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Self-play the solver against random boards and report a clean-solve rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*logLevel)

			sttStore, err := stats.Load()
			if err != nil {
				return fmt.Errorf("loading stats: %w", err)
			}
			sizeKey := fmt.Sprintf("%dx%dx%d", width, height, mines)

			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
			clean := 0
			for i := 0; i < games; i++ {
				won := selfPlayOneGame(width, height, mines, rng)
				if won {
					clean++
					sttStore.RecordClean(sizeKey)
				} else {
					sttStore.RecordMineHit(sizeKey)
				}
				log.Debug().Int("game", i).Bool("clean", won).Msg("game finished")
			}

			if err := sttStore.Save(); err != nil {
				return fmt.Errorf("saving stats: %w", err)
			}

			log.Info().Int("games", games).Int("clean", clean).Float64("rate", float64(clean)/float64(games)).Msg("bench complete")
			fmt.Printf("%d/%d clean (%.1f%%)\n", clean, games, 100*float64(clean)/float64(games))
			return nil
		},
	}
	cmd.Flags().IntVar(&games, "games", 100, "number of games to self-play")
	cmd.Flags().IntVar(&width, "width", 9, "board width")
	cmd.Flags().IntVar(&height, "height", 9, "board height")
	cmd.Flags().IntVar(&mines, "mines", 10, "mine count")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}

// selfPlayOneGame plays one reference board to completion, always
// taking a uniformly random tile from the solver's suggestion set, or
// a uniformly random hidden tile when it has none. Returns true if every non-mine tile was
// revealed without hitting a mine.
func selfPlayOneGame(width, height, mines int, rng *rand.Rand) bool {
	ref := refboard.New(width, height, mines, rng)
	board := minesweeper.NewBoardWithRand(width, height, mines, rng)

	x, y := rng.IntN(width), rng.IntN(height)
	for {
		outcome, reveals := ref.Click(x, y)
		if outcome == refboard.Mine {
			return false
		}

		pairs := make([]minesweeper.Pair, len(reveals))
		for i, r := range reveals {
			pairs[i] = minesweeper.Pair{X: r.X, Y: r.Y, Number: r.Number}
		}
		suggestion := board.Reveal(pairs)

		if ref.Solved() {
			return true
		}

		if len(suggestion) > 0 {
			t := suggestion[rng.IntN(len(suggestion))]
			x, y = t.X, t.Y
			continue
		}

		hidden := hiddenTiles(board)
		if len(hidden) == 0 {
			return ref.Solved()
		}
		pick := hidden[rng.IntN(len(hidden))]
		x, y = pick[0], pick[1]
	}
}

func hiddenTiles(board *minesweeper.Board) [][2]int {
	var out [][2]int
	for _, t := range board.Tiles() {
		if !t.Revealed() {
			out = append(out, [2]int{t.X, t.Y})
		}
	}
	return out
}
