// Package options holds the board-source flags shared by every command.
package options

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/generator"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/loader"
)

// entropySeed is the NoOptDefVal marker for --rand given without a seed.
const entropySeed = "entropy"

// BoardSource selects where a command's input board comes from: a compact
// byte string, a JSON puzzle file, the random generator, or (with no flag
// at all) an empty board.
type BoardSource struct {
	ByteString string
	File       string
	RandSeed   string
}

// AddFlags registers --byte/-b, --file/-f and --rand/-r on cmd and marks
// them mutually exclusive.
func (o *BoardSource) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ByteString, "byte", "b", "", "load a puzzle from its compact byte-string encoding")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "load a puzzle from a JSON clue file")
	cmd.Flags().StringVarP(&o.RandSeed, "rand", "r", "", "generate a fresh puzzle, optionally from a numeric seed")
	cmd.Flags().Lookup("rand").NoOptDefVal = entropySeed
	cmd.MarkFlagsMutuallyExclusive("byte", "file", "rand")
}

// Load builds the board the flags describe.
func (o *BoardSource) Load() (board.Board, error) {
	switch {
	case o.ByteString != "":
		return loader.ByteStringFromString(o.ByteString).Load()
	case o.File != "":
		l, err := loader.JSONFromFile(o.File)
		if err != nil {
			return board.Board{}, err
		}
		return l.Load()
	case o.RandSeed == entropySeed:
		return generator.New().Load()
	case o.RandSeed != "":
		seed, err := strconv.ParseUint(o.RandSeed, 10, 64)
		if err != nil {
			return board.Board{}, fmt.Errorf("invalid seed %q: %w", o.RandSeed, err)
		}
		return generator.FromSeed(seed).Load()
	default:
		return board.New(), nil
	}
}
