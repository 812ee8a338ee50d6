package board

import "github.com/sudoku-framework/sudoku/pkg/sudoku"

// AutoNote derives Maybe marks for every cell without a concrete digit: a
// digit becomes a candidate when placing it leaves the cell's row, column
// and box valid. Digits already marked Deny are skipped and existing Maybe
// marks are left alone, so the pass is idempotent on a valid board.
//
// The board must be valid on entry. If a mid-pass check finds it invalid
// the pass stops, leaving the notes written so far.
func (b *Board) AutoNote() {
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			if !b.IsValid() {
				return
			}
			ci := sudoku.CellIndex{Col: col, Row: row}
			cell := b.cells[row][col]
			if _, filled := cell.AsValue(); filled {
				continue
			}

			for val := uint8(1); val <= sudoku.Size; val++ {
				if cell.Note(val) != sudoku.NoteUnset {
					continue
				}
				// Trial placement without peer elimination.
				b.cells[row][col] = sudoku.Value(val)
				ok := b.Affected(ci).IsValid()
				b.cells[row][col] = cell
				if ok {
					b.Set(ci, sudoku.ModeMaybe, val)
					cell = b.cells[row][col]
				}
			}
		}
	}
}

// ClearNotes resets every Notes cell back to Empty.
func (b *Board) ClearNotes() {
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			if b.cells[row][col].Kind() == sudoku.KindNotes {
				b.Reset(sudoku.CellIndex{Col: col, Row: row})
			}
		}
	}
}
