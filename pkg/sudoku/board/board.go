// Package board implements the 9x9 Sudoku grid with pencil-mark
// annotations, its row/column/box region views, rule validation and the
// automatic note engine.
package board

import (
	"strings"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
)

// PresetCell names a clue for WithPresets.
type PresetCell struct {
	Index sudoku.CellIndex
	Val   uint8
}

// Board is the 9x9 grid. It is a plain value type: assignment copies the
// whole grid, and the enumerator, solver and generator clone boards freely.
type Board struct {
	cells [sudoku.Size][sudoku.Size]sudoku.Cell
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// WithPresets returns a copy of the board with the given cells marked as
// immutable clues.
func (b Board) WithPresets(presets ...PresetCell) Board {
	for _, p := range presets {
		b.cells[p.Index.Row][p.Index.Col] = sudoku.Preset(p.Val)
	}
	return b
}

// At returns the cell at the given index.
func (b Board) At(ci sudoku.CellIndex) sudoku.Cell {
	return b.cells[ci.Row][ci.Col]
}

// Get returns the cell at (col, row).
func (b Board) Get(col, row int) sudoku.Cell {
	return b.cells[row][col]
}

// Set writes val into the cell at ci according to mode. Preset cells are
// never modified.
//
// ModeValue replaces the cell with Value(val) and, atomically with the
// write, clears val's pencil marks (Maybe and Deny) from every Notes cell
// in the affected row, column and box.
//
// ModeMaybe and ModeDeny toggle the corresponding per-digit mark; an Empty
// cell first becomes a Notes cell, and Value cells are left alone.
func (b *Board) Set(ci sudoku.CellIndex, mode sudoku.NoteMode, val uint8) {
	cell := &b.cells[ci.Row][ci.Col]
	if cell.Kind() == sudoku.KindPreset {
		return
	}

	switch mode {
	case sudoku.ModeValue:
		*cell = sudoku.Value(val)
		b.eliminateNote(ci, val)
	case sudoku.ModeMaybe:
		if cell.Note(val) == sudoku.NoteMaybe {
			*cell = cell.WithNote(val, sudoku.NoteUnset)
		} else {
			*cell = cell.WithNote(val, sudoku.NoteMaybe)
		}
	case sudoku.ModeDeny:
		if cell.Note(val) == sudoku.NoteDeny {
			*cell = cell.WithNote(val, sudoku.NoteUnset)
		} else {
			*cell = cell.WithNote(val, sudoku.NoteDeny)
		}
	}
}

// eliminateNote clears val's mark from every Notes cell seen by ci.
func (b *Board) eliminateNote(ci sudoku.CellIndex, val uint8) {
	clear := func(col, row int) {
		cell := &b.cells[row][col]
		if cell.Kind() == sudoku.KindNotes {
			*cell = cell.WithNote(val, sudoku.NoteUnset)
		}
	}
	for col := 0; col < sudoku.Size; col++ {
		clear(col, ci.Row)
	}
	for row := 0; row < sudoku.Size; row++ {
		clear(ci.Col, row)
	}
	boxCol, boxRow := (ci.Col/3)*3, (ci.Row/3)*3
	for row := boxRow; row < boxRow+3; row++ {
		for col := boxCol; col < boxCol+3; col++ {
			clear(col, row)
		}
	}
}

// Reset clears the cell at ci back to Empty. Preset cells are untouched.
func (b *Board) Reset(ci sudoku.CellIndex) {
	if b.cells[ci.Row][ci.Col].Kind() == sudoku.KindPreset {
		return
	}
	b.cells[ci.Row][ci.Col] = sudoku.Empty()
}

// IterUnset returns the indices of all cells without a concrete digit, in
// row-major order.
func (b Board) IterUnset() []sudoku.CellIndex {
	var unset []sudoku.CellIndex
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			if b.cells[row][col].IsUnset() {
				unset = append(unset, sudoku.CellIndex{Col: col, Row: row})
			}
		}
	}
	return unset
}

// Freeze promotes every Value cell to an immutable Preset, turning a
// carved board into a playable puzzle.
func (b *Board) Freeze() {
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			if b.cells[row][col].Kind() == sudoku.KindValue {
				val, _ := b.cells[row][col].AsValue()
				b.cells[row][col] = sudoku.Preset(val)
			}
		}
	}
}

// SwapRows exchanges two whole rows.
func (b *Board) SwapRows(row1, row2 int) {
	b.cells[row1], b.cells[row2] = b.cells[row2], b.cells[row1]
}

// SwapColumns exchanges two whole columns, row by row.
func (b *Board) SwapColumns(col1, col2 int) {
	for row := 0; row < sudoku.Size; row++ {
		b.cells[row][col1], b.cells[row][col2] = b.cells[row][col2], b.cells[row][col1]
	}
}

// String renders the grid with box separators. Cells without a concrete
// digit render as blanks.
func (b Board) String() string {
	rule := "+" + strings.Repeat("-", 17) + "+\n"
	var sb strings.Builder
	sb.WriteString(rule)
	for row := 0; row < sudoku.Size; row++ {
		if row > 0 && row%3 == 0 {
			sb.WriteString(rule)
		}
		glyphs := make([]string, sudoku.Size)
		for col := 0; col < sudoku.Size; col++ {
			if v, ok := b.cells[row][col].AsValue(); ok {
				glyphs[col] = string(rune('0' + v))
			} else {
				glyphs[col] = " "
			}
		}
		sb.WriteString("|" + strings.Join(glyphs[0:3], " ") +
			"|" + strings.Join(glyphs[3:6], " ") +
			"|" + strings.Join(glyphs[6:9], " ") + "|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}
