package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoku-framework/sudoku/pkg/sudoku/generator"
)

func NewGenerateCommand() *cobra.Command {
	var seed uint64
	var clues int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			var g *generator.RandomLoader
			if cmd.Flags().Changed("seed") {
				g = generator.FromSeed(seed, generator.WithClueTarget(clues))
			} else {
				g = generator.New(generator.WithClueTarget(clues))
			}
			b, err := g.Load()
			if err != nil {
				return err
			}
			fmt.Print(b)
			fmt.Printf("byte string: %s\n", b.AsByteString())
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "deterministic seed for the random source")
	cmd.Flags().IntVar(&clues, "clues", generator.DefaultClueTarget, "target number of clues to leave on the board")
	return cmd
}
