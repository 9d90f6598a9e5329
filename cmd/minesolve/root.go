package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "minesolve",
		Short: "A constraint-propagation minesweeper solver",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newSolveCmd(&logLevel))
	root.AddCommand(newBenchCmd(&logLevel))

	return root
}

func newLogger(levelFlag string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
