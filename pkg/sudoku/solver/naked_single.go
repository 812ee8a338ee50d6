package solver

import (
	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

// NakedSingle places the digit of any cell whose candidate set has shrunk
// to exactly one entry.
type NakedSingle struct{}

func (NakedSingle) Points() uint64 {
	return 5
}

func (NakedSingle) ShortName() string {
	return "nkds"
}

func (NakedSingle) LongName() string {
	return "Naked Single"
}

func (NakedSingle) ApplyTo(b board.Board) (board.Board, bool) {
	for _, ci := range b.IterUnset() {
		maybes, ok := b.At(ci).MaybeValues()
		if !ok || len(maybes) != 1 {
			continue
		}
		next := b
		next.Set(ci, sudoku.ModeValue, maybes[0])
		return next, true
	}
	return board.Board{}, false
}
