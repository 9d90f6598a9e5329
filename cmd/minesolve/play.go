package main

import (
	"fmt"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/herbhall/minesolve/internal/config"
	"github.com/herbhall/minesolve/internal/stats"
	"github.com/herbhall/minesolve/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var width, height, mines int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Launch the interactive solver visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgStore, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			sttStore, err := stats.Load()
			if err != nil {
				return fmt.Errorf("loading stats: %w", err)
			}

			var model tea.Model
			if width > 0 || height > 0 || mines > 0 {
				if width <= 0 {
					width = cfgStore.Config.Width
				}
				if height <= 0 {
					height = cfgStore.Config.Height
				}
				if mines <= 0 {
					mines = cfgStore.Config.Mines
				}
				if seed == 0 {
					seed = rand.Uint64()
				}
				model = tui.NewWithSize(cfgStore.Config, sttStore, width, height, mines, seed)
			} else {
				model = tui.New(cfgStore.Config, sttStore)
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithFPS(30))
			if _, err := p.Run(); err != nil {
				return err
			}
			return sttStore.Save()
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "board width (starts a custom game immediately if set with --height/--mines)")
	cmd.Flags().IntVar(&height, "height", 0, "board height")
	cmd.Flags().IntVar(&mines, "mines", 0, "mine count")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for the custom game")
	return cmd
}
