package solver

import "github.com/sudoku-framework/sudoku/pkg/sudoku/board"

// Entropy measures the remaining uncertainty of a noted board: the sum over
// all pencil-marked cells of the factorial of their candidate count. A
// solved board has entropy zero; boards with wider candidate sets score
// disproportionately higher.
func Entropy(b board.Board) uint64 {
	var entropy uint64
	for _, ci := range b.IterUnset() {
		if maybes, ok := b.At(ci).MaybeValues(); ok {
			entropy += factorial(len(maybes))
		}
	}
	return entropy
}

func factorial(n int) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(n) * factorial(n-1)
}
