package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	minesweeper "github.com/herbhall/minesolve"
)

// scenarioReveal is one (x, y, number) entry in a scenario file's batch.
type scenarioReveal struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Number int `json:"number"`
}

// scenario is the JSON shape `solve --scenario` reads: a board size and
// an ordered list of reveal batches, replayed one Board.Reveal call
// per batch.
type scenario struct {
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
	Mines  int                  `json:"mines"`
	Seed   uint64               `json:"seed"`
	Batches [][]scenarioReveal  `json:"batches"`
}

func newSolveCmd(logLevel *string) *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Replay a JSON scenario through the solver and log each suggestion",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*logLevel)

			data, err := os.ReadFile(scenarioPath) //nolint:gosec // G304: path is a user-supplied CLI argument
			if err != nil {
				log.Warn().Err(err).Str("path", scenarioPath).Msg("failed to read scenario file")
				return err
			}
			var sc scenario
			if err := json.Unmarshal(data, &sc); err != nil {
				log.Warn().Err(err).Msg("failed to parse scenario file")
				return err
			}

			board := minesweeper.NewBoardWithRand(sc.Width, sc.Height, sc.Mines, rand.New(rand.NewPCG(sc.Seed, sc.Seed^0x9e3779b9)))

			for i, batch := range sc.Batches {
				pairs := make([]minesweeper.Pair, len(batch))
				for j, r := range batch {
					pairs[j] = minesweeper.Pair{X: r.X, Y: r.Y, Number: r.Number}
				}
				log.Debug().Int("batch", i).Int("tiles", len(pairs)).Msg("processing reveal batch")

				suggestion := board.Reveal(pairs)

				coords := make([][2]int, len(suggestion))
				for j, t := range suggestion {
					coords[j] = [2]int{t.X, t.Y}
				}
				log.Debug().Int("batch", i).Interface("suggestion", coords).Int("chains", board.ChainCount()).Msg("suggestion computed")
				fmt.Printf("batch %d: suggestion=%v chains=%d\n", i, coords, board.ChainCount())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a JSON scenario file (required)")
	cmd.MarkFlagRequired("scenario")
	return cmd
}
