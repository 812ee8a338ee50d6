package solver

import (
	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

// HiddenSingle places a digit that has exactly one remaining home in a row,
// column or box: the cell is not alone in its candidate set, but no other
// cell of the region can still take that digit.
type HiddenSingle struct{}

func (HiddenSingle) Points() uint64 {
	return 10
}

func (HiddenSingle) ShortName() string {
	return "hdns"
}

func (HiddenSingle) LongName() string {
	return "Hidden Single"
}

func (HiddenSingle) ApplyTo(b board.Board) (board.Board, bool) {
	for _, ci := range b.IterUnset() {
		maybes, ok := b.At(ci).MaybeValues()
		if !ok {
			continue
		}
		affected := b.Affected(ci)
		for _, val := range maybes {
			for _, region := range affected.Regions() {
				if countIsOrMaybe(region, val) != 1 {
					continue
				}
				next := b
				next.Set(ci, sudoku.ModeValue, val)
				return next, true
			}
		}
	}
	return board.Board{}, false
}

// countIsOrMaybe counts the region's cells that hold val or have it marked
// Maybe. A count of one means only the candidate cell itself can take val.
func countIsOrMaybe(r board.Region, val uint8) int {
	n := 0
	for _, ic := range r.Cells() {
		if ic.Cell.IsOrMaybe(val) {
			n++
		}
	}
	return n
}
