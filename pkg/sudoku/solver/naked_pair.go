package solver

import (
	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

// NakedPair finds two cells of a region whose candidate sets are the same
// two digits. Those digits are locked into the pair, so they can be
// eliminated from every other cell of the region. One application clears a
// single Maybe mark; the driver re-runs the technique until the region is
// exhausted.
type NakedPair struct{}

func (NakedPair) Points() uint64 {
	return 50
}

func (NakedPair) ShortName() string {
	return "nkpr"
}

func (NakedPair) LongName() string {
	return "Naked Pair"
}

func (NakedPair) ApplyTo(b board.Board) (board.Board, bool) {
	for _, region := range b.Regions() {
		cells := region.Cells()
		for i := range cells {
			first, ok := cells[i].Cell.MaybeValues()
			if !ok || len(first) != 2 {
				continue
			}
			for j := i + 1; j < len(cells); j++ {
				second, ok := cells[j].Cell.MaybeValues()
				if !ok || len(second) != 2 || first[0] != second[0] || first[1] != second[1] {
					continue
				}
				for k := range cells {
					if k == i || k == j {
						continue
					}
					for _, val := range first {
						if cells[k].Cell.Note(val) != sudoku.NoteMaybe {
							continue
						}
						next := b
						// Toggling an existing Maybe clears it.
						next.Set(cells[k].Index, sudoku.ModeMaybe, val)
						return next, true
					}
				}
			}
		}
	}
	return board.Board{}, false
}
