package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoku-framework/sudoku/cmd/count"
	"github.com/sudoku-framework/sudoku/cmd/generate"
	"github.com/sudoku-framework/sudoku/cmd/options"
	"github.com/sudoku-framework/sudoku/cmd/sat"
	"github.com/sudoku-framework/sudoku/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	var source options.BoardSource
	rootCmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Sudoku board loader, solver and puzzle generator",
		Long: `A Sudoku reasoning toolkit: load boards from the compact byte-string
format, solve them by human-style deduction or SAT, count their solutions,
and generate fresh puzzles with a unique solution.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := source.Load()
			if err != nil {
				return err
			}
			fmt.Print(b)
			fmt.Printf("byte string: %s\n", b.AsByteString())
			return nil
		},
	}
	source.AddFlags(rootCmd)

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(count.NewCountCommand())
	rootCmd.AddCommand(sat.NewSatCommand())
	rootCmd.AddCommand(generate.NewGenerateCommand())

	return rootCmd
}
