package sudoku

import "fmt"

// Size is the edge length of the grid. Rows, columns and digits all range
// over 0..Size-1 (digits are stored 1..Size).
const Size = 9

// CellIndex addresses a cell on the grid as (column, row), both in 0..8.
type CellIndex struct {
	Col int
	Row int
}

// Index returns the row-major position of the cell in 0..80.
func (ci CellIndex) Index() int {
	return ci.Row*Size + ci.Col
}

func (ci CellIndex) String() string {
	return fmt.Sprintf("(%d,%d)", ci.Col, ci.Row)
}

// NoteMode selects how a digit is written into a cell by Board.Set.
type NoteMode int

const (
	// ModeValue writes a concrete digit into the cell.
	ModeValue NoteMode = iota
	// ModeMaybe toggles the digit's Maybe pencil mark.
	ModeMaybe
	// ModeDeny toggles the digit's Deny pencil mark.
	ModeDeny
)

// NoteStatus is the per-digit annotation on a pencil-marked cell.
type NoteStatus uint8

const (
	// NoteUnset means the digit carries no annotation.
	NoteUnset NoteStatus = iota
	// NoteMaybe marks the digit as a candidate for the cell.
	NoteMaybe
	// NoteDeny marks the digit as ruled out for the cell.
	NoteDeny
)

// CellKind discriminates the four cell variants.
type CellKind uint8

const (
	// KindEmpty is a cell with no value and no notes.
	KindEmpty CellKind = iota
	// KindPreset is an immutable clue fixed by the puzzle.
	KindPreset
	// KindValue is a digit entered by the user or a solver.
	KindValue
	// KindNotes is a cell holding per-digit pencil marks.
	KindNotes
)

// Cell is one position of the grid. It is a small value type; boards copy
// cells freely.
type Cell struct {
	kind  CellKind
	value uint8
	notes [Size]NoteStatus
}

// Empty returns the empty cell.
func Empty() Cell {
	return Cell{kind: KindEmpty}
}

// Preset returns an immutable clue cell holding val.
func Preset(val uint8) Cell {
	return Cell{kind: KindPreset, value: val}
}

// Value returns a user-set cell holding val.
func Value(val uint8) Cell {
	return Cell{kind: KindValue, value: val}
}

// Notes returns a pencil-marked cell with the given per-digit statuses.
func Notes(status [Size]NoteStatus) Cell {
	return Cell{kind: KindNotes, notes: status}
}

// Kind returns the cell's variant.
func (c Cell) Kind() CellKind {
	return c.kind
}

// AsValue returns the concrete digit of a Preset or Value cell.
func (c Cell) AsValue() (uint8, bool) {
	switch c.kind {
	case KindPreset, KindValue:
		return c.value, true
	}
	return 0, false
}

// Note returns the annotation for val on a Notes cell, NoteUnset otherwise.
func (c Cell) Note(val uint8) NoteStatus {
	if c.kind != KindNotes {
		return NoteUnset
	}
	return c.notes[val-1]
}

// MaybeValues returns the digits marked Maybe, in ascending order. The
// second return is false unless the cell is a Notes cell.
func (c Cell) MaybeValues() ([]uint8, bool) {
	if c.kind != KindNotes {
		return nil, false
	}
	var vals []uint8
	for i, s := range c.notes {
		if s == NoteMaybe {
			vals = append(vals, uint8(i+1))
		}
	}
	return vals, true
}

// DeniedValues returns the digits marked Deny, in ascending order. The
// second return is false unless the cell is a Notes cell.
func (c Cell) DeniedValues() ([]uint8, bool) {
	if c.kind != KindNotes {
		return nil, false
	}
	var vals []uint8
	for i, s := range c.notes {
		if s == NoteDeny {
			vals = append(vals, uint8(i+1))
		}
	}
	return vals, true
}

// IsOrMaybe reports whether the cell holds val or has val marked Maybe.
func (c Cell) IsOrMaybe(val uint8) bool {
	switch c.kind {
	case KindPreset, KindValue:
		return c.value == val
	case KindNotes:
		return c.notes[val-1] == NoteMaybe
	}
	return false
}

// IsUnset reports whether the cell has no concrete digit.
func (c Cell) IsUnset() bool {
	return c.kind == KindEmpty || c.kind == KindNotes
}

// WithNote returns the cell with the annotation for val replaced by status.
// Value and Preset cells are returned unchanged. An Empty cell becomes a
// Notes cell when a mark is set; a Notes cell whose last mark is cleared
// collapses back to Empty.
func (c Cell) WithNote(val uint8, status NoteStatus) Cell {
	switch c.kind {
	case KindPreset, KindValue:
		return c
	case KindEmpty:
		if status == NoteUnset {
			return c
		}
		next := Cell{kind: KindNotes}
		next.notes[val-1] = status
		return next
	}
	c.notes[val-1] = status
	for _, s := range c.notes {
		if s != NoteUnset {
			return c
		}
	}
	return Empty()
}

// IndexedCell pairs a cell with its position on the board.
type IndexedCell struct {
	Index CellIndex
	Cell  Cell
}
