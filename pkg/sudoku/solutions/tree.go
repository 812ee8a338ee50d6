// Package solutions implements the bounded backtracking enumerator used to
// count completions of a board and to prove puzzle uniqueness.
package solutions

import (
	"errors"
	"time"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

const (
	// DefaultMaxSolutions bounds how many completions are materialised.
	DefaultMaxSolutions = 128
	// DefaultTimeout bounds the wall-clock time of one enumeration.
	DefaultTimeout = 500 * time.Millisecond
)

// errBudget aborts the whole construction from deep inside the recursion.
var errBudget = errors.New("solution budget exceeded")

// Tree holds the completions discovered by one bounded enumeration, in the
// order the search visited them.
type Tree struct {
	leaves []board.Board
}

// NumSolutions returns the number of completions found.
func (t *Tree) NumSolutions() int {
	return len(t.leaves)
}

// FirstSolution returns the completion reached first by the digit-ascending
// traversal. Given the same input board, it is always the same completion.
func (t *Tree) FirstSolution() board.Board {
	return t.leaves[0]
}

// Solutions returns all completions found, in traversal order.
func (t *Tree) Solutions() []board.Board {
	return t.leaves
}

// Option configures one enumeration.
type Option func(e *enumerator)

// WithMaxSolutions overrides the completion cap.
func WithMaxSolutions(n int) Option {
	return func(e *enumerator) {
		e.max = n
	}
}

// WithTimeout overrides the wall-clock budget.
func WithTimeout(d time.Duration) Option {
	return func(e *enumerator) {
		e.timeout = d
	}
}

type enumerator struct {
	max      int
	timeout  time.Duration
	deadline time.Time
	leaves   []board.Board
}

// Solve enumerates the completions of b. It returns nil when the input has
// no completion, when more than the configured maximum exist, or when the
// deadline expires first; otherwise the returned tree holds every
// completion of b.
//
// Cells are filled in row-major order and digits are tried ascending, so
// the traversal order is deterministic.
func Solve(b board.Board, opts ...Option) *Tree {
	if !b.IsValid() {
		return nil
	}

	e := &enumerator{max: DefaultMaxSolutions, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	e.deadline = time.Now().Add(e.timeout)

	if err := e.expand(b); err != nil {
		return nil
	}
	if len(e.leaves) == 0 {
		return nil
	}
	return &Tree{leaves: e.leaves}
}

func (e *enumerator) expand(b board.Board) error {
	if time.Now().After(e.deadline) {
		return errBudget
	}

	ci, found := firstUnset(b)
	if !found {
		if b.IsVictory() {
			e.leaves = append(e.leaves, b)
			if len(e.leaves) > e.max {
				return errBudget
			}
		}
		return nil
	}

	for val := uint8(1); val <= sudoku.Size; val++ {
		next := b
		next.Set(ci, sudoku.ModeValue, val)
		// The parent board is valid, so only the three regions touched by
		// the placement can have become invalid.
		if next.Affected(ci).IsValid() {
			if err := e.expand(next); err != nil {
				return err
			}
		}
		if time.Now().After(e.deadline) {
			return errBudget
		}
	}
	return nil
}

func firstUnset(b board.Board) (sudoku.CellIndex, bool) {
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			ci := sudoku.CellIndex{Col: col, Row: row}
			if b.At(ci).IsUnset() {
				return ci, true
			}
		}
	}
	return sudoku.CellIndex{}, false
}

// CanBeCompleted reports whether b still has at least one completion: after
// auto-noting, no unset cell may be left without candidates and the
// enumerator must reach at least one leaf within its time budget. Unlike
// Solve, boards with many completions still report true; the search stops
// at the first leaf.
func CanBeCompleted(b board.Board, opts ...Option) bool {
	work := b
	if !work.IsValid() {
		return false
	}
	work.AutoNote()
	for _, ci := range work.IterUnset() {
		cell := work.At(ci)
		if cell.Kind() == sudoku.KindEmpty {
			return false
		}
		if maybes, ok := cell.MaybeValues(); ok && len(maybes) == 0 {
			return false
		}
	}

	e := &enumerator{max: 0, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	e.max = 0 // abort as soon as the first leaf is reached
	e.deadline = time.Now().Add(e.timeout)
	_ = e.expand(work)
	return len(e.leaves) > 0
}
