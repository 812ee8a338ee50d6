package count

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoku-framework/sudoku/cmd/options"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/solutions"
)

func NewCountCommand() *cobra.Command {
	var source options.BoardSource
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Counts a board's solutions with the bounded enumerator",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := source.Load()
			if err != nil {
				return err
			}
			tree := solutions.Solve(b)
			if tree == nil {
				fmt.Println("no solutions found within budget")
				return nil
			}
			fmt.Printf("solutions: %d\n", tree.NumSolutions())
			fmt.Print(tree.FirstSolution())
			return nil
		},
	}
	source.AddFlags(cmd)
	return cmd
}
