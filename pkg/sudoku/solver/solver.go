// Package solver implements the logical Sudoku solver: an ordered pipeline
// of human-style deduction techniques that rewrites the board until either
// it is solved or no technique applies, scoring difficulty along the way.
package solver

import (
	"sort"
	"time"

	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

// DefaultTimeout bounds the wall clock of one logical solve.
const DefaultTimeout = 500 * time.Millisecond

// Difficulty buckets the accumulated technique points.
type Difficulty int

const (
	// Easy covers 0..999 points.
	Easy Difficulty = iota
	// Medium covers 1000..1999 points.
	Medium
	// Hard covers 2000..2999 points.
	Hard
	// Expert covers 3000..3999 points.
	Expert
	// Pro covers everything above.
	Pro
)

// DifficultyFromPoints buckets a point total.
func DifficultyFromPoints(points uint64) Difficulty {
	switch {
	case points < 1000:
		return Easy
	case points < 2000:
		return Medium
	case points < 3000:
		return Hard
	case points < 4000:
		return Expert
	default:
		return Pro
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Expert:
		return "Expert"
	case Pro:
		return "Pro"
	}
	return "Unknown"
}

// Technique is one sound deduction rule. ApplyTo attempts a single
// application: on success it returns a new board in which at least one cell
// became more constrained; the second return is false when the technique
// does not apply. Every transition must be a logical consequence of the
// rules, never a guess.
type Technique interface {
	// Points is the difficulty weight of one application.
	Points() uint64
	// ShortName is the technique's identifier in the move log.
	ShortName() string
	// LongName is the technique's display name.
	LongName() string
	// ApplyTo attempts one application against the board.
	ApplyTo(b board.Board) (board.Board, bool)
}

// Move records one applied technique by its (short, long) names.
type Move struct {
	Short string
	Long  string
}

// Solution is the outcome of a successful logical solve.
type Solution struct {
	Board      board.Board
	Points     uint64
	Difficulty Difficulty
	Moves      []Move
}

// Incomplete is returned when the known techniques reach a fixpoint (or the
// deadline) before completing the board. It carries the furthest board
// reached.
type Incomplete struct {
	Board board.Board
}

func (e *Incomplete) Error() string {
	return "known techniques could not complete the board"
}

// Solver drives an ordered list of techniques to a fixpoint.
type Solver struct {
	techniques []Technique
	timeout    time.Duration
}

// Option configures a Solver.
type Option func(s *Solver)

// WithTimeout overrides the per-solve wall-clock budget.
func WithTimeout(d time.Duration) Option {
	return func(s *Solver) {
		s.timeout = d
	}
}

// WithTechniques replaces the default technique set.
func WithTechniques(techniques ...Technique) Option {
	return func(s *Solver) {
		s.techniques = techniques
	}
}

// New returns a Solver with the standard techniques. Techniques are kept
// sorted by points ascending, so the cheapest deduction always fires first
// and the accumulated score is the minimum one.
func New(opts ...Option) *Solver {
	s := &Solver{
		techniques: []Technique{
			NakedSingle{},
			HiddenSingle{},
			NakedPair{},
		},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	sort.SliceStable(s.techniques, func(i, j int) bool {
		return s.techniques[i].Points() < s.techniques[j].Points()
	})
	return s
}

// Solve attempts to complete the board by deduction alone. The input is
// untouched: the solver works on its own copy, clearing any user notes and
// re-deriving candidates first. On success the Solution carries the solved
// board, the point total, its difficulty bucket and the ordered move log.
// Otherwise the returned error is an *Incomplete holding the partial board.
func (s *Solver) Solve(b board.Board) (*Solution, error) {
	work := b
	work.ClearNotes()
	work.AutoNote()

	var points uint64
	var moves []Move
	deadline := time.Now().Add(s.timeout)

	progress := true
	for progress {
		progress = false
		for _, technique := range s.techniques {
			if time.Now().After(deadline) {
				break
			}
			next, ok := technique.ApplyTo(work)
			if !ok {
				continue
			}
			points += technique.Points()
			moves = append(moves, Move{Short: technique.ShortName(), Long: technique.LongName()})
			work = next
			progress = true
			break
		}
	}

	if !work.IsVictory() {
		return nil, &Incomplete{Board: work}
	}
	return &Solution{
		Board:      work,
		Points:     points,
		Difficulty: DifficultyFromPoints(points),
		Moves:      moves,
	}, nil
}
