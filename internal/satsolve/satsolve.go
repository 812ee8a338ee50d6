// Package satsolve completes a board with a SAT solver instead of the
// backtracking enumerator. One literal exists per (row, column, digit)
// triple; clauses state that every position holds a digit and that no digit
// repeats in a row, column or box, and the board's filled cells become unit
// clauses.
package satsolve

import (
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

const satisfiable = 1

// ErrUnsatisfiable is returned when the clues admit no completion.
var ErrUnsatisfiable = errors.New("board has no completion")

func lit(row, col, num int) z.Lit {
	n := num
	n += col * 9
	n += row * 81
	return z.Var(n + 1).Pos()
}

// Solve returns a completed copy of b, or ErrUnsatisfiable when the clues
// conflict. Filled cells of the input are kept as they are.
func Solve(b board.Board) (board.Board, error) {
	g := gini.New()

	// every position holds a digit
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				g.Add(lit(row, col, n))
			}
			g.Add(0)
		}
	}

	// no digit repeats within a row
	for n := 0; n < 9; n++ {
		for row := 0; row < 9; row++ {
			for colA := 0; colA < 9; colA++ {
				for colB := colA + 1; colB < 9; colB++ {
					g.Add(lit(row, colA, n).Not())
					g.Add(lit(row, colB, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// no digit repeats within a column
	for n := 0; n < 9; n++ {
		for col := 0; col < 9; col++ {
			for rowA := 0; rowA < 9; rowA++ {
				for rowB := rowA + 1; rowB < 9; rowB++ {
					g.Add(lit(rowA, col, n).Not())
					g.Add(lit(rowB, col, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// no digit repeats within a box rooted at (x, y)
	box := func(x, y int) {
		offs := []struct{ x, y int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
		for n := 0; n < 9; n++ {
			for i, offA := range offs {
				for j := i + 1; j < len(offs); j++ {
					offB := offs[j]
					g.Add(lit(x+offA.x, y+offA.y, n).Not())
					g.Add(lit(x+offB.x, y+offB.y, n).Not())
					g.Add(0)
				}
			}
		}
	}
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			box(x, y)
		}
	}

	// clues become unit clauses
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			if val, ok := b.Get(col, row).AsValue(); ok {
				g.Add(lit(row, col, int(val)-1))
				g.Add(0)
			}
		}
	}

	if g.Solve() != satisfiable {
		return board.Board{}, ErrUnsatisfiable
	}

	out := b
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			ci := sudoku.CellIndex{Col: col, Row: row}
			if !out.At(ci).IsUnset() {
				continue
			}
			for n := 0; n < 9; n++ {
				if g.Value(lit(row, col, n)) {
					out.Set(ci, sudoku.ModeValue, uint8(n+1))
					break
				}
			}
		}
	}
	return out, nil
}
