package sat

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoku-framework/sudoku/cmd/options"
	"github.com/sudoku-framework/sudoku/internal/satsolve"
)

func NewSatCommand() *cobra.Command {
	var source options.BoardSource
	cmd := &cobra.Command{
		Use:   "sat",
		Short: "Completes a board with the SAT solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := source.Load()
			if err != nil {
				return err
			}
			solved, err := satsolve.Solve(b)
			if err != nil {
				fmt.Println("no solution found")
				return nil
			}
			fmt.Print(solved)
			return nil
		},
	}
	source.AddFlags(cmd)
	return cmd
}
