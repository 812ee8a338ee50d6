// Package generator produces playable puzzles with a unique solution: a
// full grid is built by propagation-guided random placement, shuffled with
// validity-preserving line swaps, then carved down to a clue target while
// the enumerator confirms uniqueness after every removal.
package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/solutions"
)

// DefaultClueTarget is the number of presets a generated puzzle aims for.
const DefaultClueTarget = 24

var (
	// ErrSelectedCellAlreadySet indicates the fill phase drew a cell that
	// already held a digit. The pool bookkeeping rules this out, so seeing
	// it means a bug in the generator itself.
	ErrSelectedCellAlreadySet = errors.New("selected cell already set")
	// ErrInvalidBoardCreated indicates the fill phase produced a board that
	// breaks the Sudoku rules, which placement propagation rules out.
	ErrInvalidBoardCreated = errors.New("generator created an invalid board")
	// ErrCorruptedBoardIntractable indicates the fill phase unwound its
	// entire undo stack without reaching a completable state.
	ErrCorruptedBoardIntractable = errors.New("board intractable: undo stack exhausted")
)

// RandomLoader builds a fresh puzzle from a random source. It satisfies the
// same Loader contract as the file-based loaders.
type RandomLoader struct {
	rng        *rand.Rand
	clueTarget int
	enumOpts   []solutions.Option
}

// Option configures a RandomLoader.
type Option func(g *RandomLoader)

// WithClueTarget overrides the number of clues left after carving.
func WithClueTarget(n int) Option {
	return func(g *RandomLoader) {
		g.clueTarget = n
	}
}

// WithEnumeratorOptions forwards options to every enumerator call made
// while proving completability and uniqueness.
func WithEnumeratorOptions(opts ...solutions.Option) Option {
	return func(g *RandomLoader) {
		g.enumOpts = opts
	}
}

// New returns a generator seeded from OS entropy.
func New(opts ...Option) *RandomLoader {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand never fails on supported platforms; if it somehow
		// does, the zero seed still yields a well-formed puzzle.
		return FromSeed(0, opts...)
	}
	return FromSeed(binary.LittleEndian.Uint64(seed[:]), opts...)
}

// FromSeed returns a deterministic generator: the same seed and options
// always produce the same puzzle.
func FromSeed(seed uint64, opts ...Option) *RandomLoader {
	g := &RandomLoader{
		rng:        rand.New(rand.NewSource(int64(seed))),
		clueTarget: DefaultClueTarget,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load builds the puzzle: fill, shuffle, carve, freeze.
func (g *RandomLoader) Load() (board.Board, error) {
	work, err := g.fill()
	if err != nil {
		return board.Board{}, err
	}
	g.shuffle(&work)
	g.carve(&work)
	work.Freeze()
	return work, nil
}

// fill completes an empty board by repeatedly placing a random candidate in
// a random cell, undoing placements whenever the board stops being
// completable.
func (g *RandomLoader) fill() (board.Board, error) {
	work := board.New()
	work.AutoNote()

	pool := allCells()
	var undo []sudoku.CellIndex

	for !work.IsVictory() {
		if len(pool) == 0 {
			return board.Board{}, ErrCorruptedBoardIntractable
		}
		ci := g.drawCell(&pool)

		cell := work.At(ci)
		if cell.Kind() != sudoku.KindNotes {
			return board.Board{}, ErrSelectedCellAlreadySet
		}
		maybes, _ := cell.MaybeValues()
		if len(maybes) == 0 {
			return board.Board{}, ErrInvalidBoardCreated
		}

		val := maybes[g.rng.Intn(len(maybes))]
		work.Set(ci, sudoku.ModeValue, val)
		undo = append(undo, ci)

		for !solutions.CanBeCompleted(work, g.enumOpts...) {
			if len(undo) == 0 {
				return board.Board{}, ErrCorruptedBoardIntractable
			}
			top := undo[len(undo)-1]
			undo = undo[:len(undo)-1]
			work.Reset(top)
			work.AutoNote()
			pool = append(pool, top)
		}
	}

	if !work.IsValid() {
		return board.Board{}, ErrInvalidBoardCreated
	}
	return work, nil
}

// carve removes clues as long as the puzzle keeps a single solution, until
// the clue target is met or no removable cell remains. Cells whose removal
// was rejected are parked in a buffer and become candidates again after the
// next successful removal.
func (g *RandomLoader) carve(work *board.Board) {
	pool := allCells()
	var buffer []sudoku.CellIndex
	removed := 0

	for removed < len(allCells())-g.clueTarget && len(pool) > 0 {
		ci := g.drawCell(&pool)

		next := *work
		next.Reset(ci)
		tree := solutions.Solve(next, g.enumOpts...)
		if tree != nil && tree.NumSolutions() == 1 {
			*work = next
			removed++
			pool = append(pool, buffer...)
			buffer = buffer[:0]
		} else {
			buffer = append(buffer, ci)
		}
	}
}

// drawCell removes and returns a uniformly random entry of the pool.
func (g *RandomLoader) drawCell(pool *[]sudoku.CellIndex) sudoku.CellIndex {
	i := g.rng.Intn(len(*pool))
	ci := (*pool)[i]
	*pool = append((*pool)[:i], (*pool)[i+1:]...)
	return ci
}

func allCells() []sudoku.CellIndex {
	cells := make([]sudoku.CellIndex, 0, sudoku.Size*sudoku.Size)
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			cells = append(cells, sudoku.CellIndex{Col: col, Row: row})
		}
	}
	return cells
}
