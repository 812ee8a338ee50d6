package generator

import "github.com/sudoku-framework/sudoku/pkg/sudoku/board"

// shuffle applies 4..16 structure-preserving transformations: each one
// swaps two parallel lines inside the same band of boxes, which keeps every
// row, column and box constraint intact.
func (g *RandomLoader) shuffle(work *board.Board) {
	swaps := 4 + g.rng.Intn(13)
	for n := 0; n < swaps; n++ {
		band := 3 * g.rng.Intn(3)
		i := g.rng.Intn(3)
		j := g.rng.Intn(3)
		for j == i {
			j = g.rng.Intn(3)
		}
		if g.rng.Intn(2) == 0 {
			work.SwapRows(band+i, band+j)
		} else {
			work.SwapColumns(band+i, band+j)
		}
	}
}
