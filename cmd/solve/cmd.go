package solve

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoku-framework/sudoku/cmd/options"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/solver"
)

func NewSolveCommand() *cobra.Command {
	var source options.BoardSource
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solves a board by human-style deduction and scores its difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := source.Load()
			if err != nil {
				return err
			}
			solution, err := solver.New().Solve(b)
			if err != nil {
				var incomplete *solver.Incomplete
				if errors.As(err, &incomplete) {
					fmt.Println("known techniques could not finish the board; furthest state:")
					fmt.Print(incomplete.Board)
					return nil
				}
				return err
			}

			for _, move := range solution.Moves {
				fmt.Printf("%s  %s\n", move.Short, move.Long)
			}
			fmt.Printf("points: %d (%s)\n", solution.Points, solution.Difficulty)
			fmt.Print(solution.Board)
			return nil
		},
	}
	source.AddFlags(cmd)
	return cmd
}
