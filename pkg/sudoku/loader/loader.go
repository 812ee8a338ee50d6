// Package loader builds boards from external puzzle representations: a
// JSON clue list and the compact two-byte-per-clue string format.
package loader

import "github.com/sudoku-framework/sudoku/pkg/sudoku/board"

// Loader is anything that can produce a board of preset clues.
type Loader interface {
	// Load builds the board, or returns a typed error describing why the
	// input is malformed.
	Load() (board.Board, error)
}
