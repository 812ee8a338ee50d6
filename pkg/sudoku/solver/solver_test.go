package solver_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/solutions"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/solver"
)

func TestSolver(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Solver Suite")
}

func presetBoard(rows [9]string) board.Board {
	var presets []board.PresetCell
	for row, line := range rows {
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			presets = append(presets, board.PresetCell{
				Index: sudoku.CellIndex{Col: col, Row: row},
				Val:   uint8(ch - '0'),
			})
		}
	}
	return board.New().WithPresets(presets...)
}

var solvedRows = [9]string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

// oneMissing returns the solved grid with a single cell blanked out.
func oneMissing(col, row int) board.Board {
	rows := solvedRows
	line := []byte(rows[row])
	line[col] = '.'
	rows[row] = string(line)
	return presetBoard(rows)
}

var _ = Describe("Solver", func() {
	It("solves a lone empty cell with a naked single", func() {
		s := solver.New()
		solution, err := s.Solve(oneMissing(0, 0))
		Expect(err).To(BeNil())

		Expect(solution.Moves).To(Equal([]solver.Move{{Short: "nkds", Long: "Naked Single"}}))
		Expect(solution.Points).To(Equal(uint64(5)))
		Expect(solution.Difficulty).To(Equal(solver.Easy))
		Expect(solution.Board.Get(0, 0)).To(Equal(sudoku.Value(5)))
		Expect(solution.Board.IsVictory()).To(BeTrue())
	})

	It("solves a lone empty cell with a hidden single when naked single is absent", func() {
		s := solver.New(solver.WithTechniques(solver.HiddenSingle{}))
		solution, err := s.Solve(oneMissing(4, 0))
		Expect(err).To(BeNil())

		Expect(solution.Moves).To(Equal([]solver.Move{{Short: "hdns", Long: "Hidden Single"}}))
		Expect(solution.Points).To(Equal(uint64(10)))
		Expect(solution.Board.Get(4, 0)).To(Equal(sudoku.Value(7)))
	})

	It("prefers the cheapest technique", func() {
		// Both techniques can fill the cell; the naked single is cheaper
		// and must win, regardless of registration order.
		s := solver.New(solver.WithTechniques(solver.HiddenSingle{}, solver.NakedSingle{}))
		solution, err := s.Solve(oneMissing(0, 0))
		Expect(err).To(BeNil())
		Expect(solution.Moves[0].Short).To(Equal("nkds"))
	})

	It("accumulates points over multiple moves", func() {
		rows := solvedRows
		rows[0] = "..4678912"
		s := solver.New()
		solution, err := s.Solve(presetBoard(rows))
		Expect(err).To(BeNil())

		Expect(solution.Moves).To(HaveLen(2))
		Expect(solution.Points).To(Equal(uint64(10)))
		Expect(solution.Difficulty).To(Equal(solver.Easy))
		Expect(solution.Board.IsVictory()).To(BeTrue())
	})

	It("returns the partial board when techniques run out", func() {
		// Every cell of an empty board keeps all nine candidates, so no
		// technique applies.
		s := solver.New()
		_, err := s.Solve(board.New())
		var incomplete *solver.Incomplete
		Expect(errors.As(err, &incomplete)).To(BeTrue())
		Expect(incomplete.Board.IsVictory()).To(BeFalse())
	})

	It("never produces a wrong answer on a uniquely solvable puzzle", func() {
		puzzle := presetBoard([9]string{
			"53..7....",
			"6..195...",
			".98....6.",
			"8...6...3",
			"4..8.3..1",
			"7...2...6",
			".6....28.",
			"...419..5",
			"....8..79",
		})
		unique := solutions.Solve(puzzle, solutions.WithTimeout(3*time.Second))
		Expect(unique).ToNot(BeNil())
		Expect(unique.NumSolutions()).To(Equal(1))
		want := unique.FirstSolution()

		s := solver.New(solver.WithTimeout(10 * time.Second))
		solution, err := s.Solve(puzzle)
		if err != nil {
			var incomplete *solver.Incomplete
			Expect(errors.As(err, &incomplete)).To(BeTrue())
			// The partial board must stay consistent with the unique
			// completion.
			Expect(incomplete.Board.IsValid()).To(BeTrue())
			for row := 0; row < 9; row++ {
				for col := 0; col < 9; col++ {
					if val, ok := incomplete.Board.Get(col, row).AsValue(); ok {
						wantVal, _ := want.Get(col, row).AsValue()
						Expect(val).To(Equal(wantVal))
					}
				}
			}
		} else {
			Expect(solution.Board).To(Equal(want))
		}
	})

	It("leaves the input board untouched", func() {
		puzzle := oneMissing(0, 0)
		before := puzzle
		_, err := solver.New().Solve(puzzle)
		Expect(err).To(BeNil())
		Expect(puzzle).To(Equal(before))
	})
})

var _ = Describe("Difficulty", func() {
	It("buckets point totals", func() {
		Expect(solver.DifficultyFromPoints(0)).To(Equal(solver.Easy))
		Expect(solver.DifficultyFromPoints(999)).To(Equal(solver.Easy))
		Expect(solver.DifficultyFromPoints(1000)).To(Equal(solver.Medium))
		Expect(solver.DifficultyFromPoints(1999)).To(Equal(solver.Medium))
		Expect(solver.DifficultyFromPoints(2000)).To(Equal(solver.Hard))
		Expect(solver.DifficultyFromPoints(3000)).To(Equal(solver.Expert))
		Expect(solver.DifficultyFromPoints(4000)).To(Equal(solver.Pro))
		Expect(solver.DifficultyFromPoints(1 << 40)).To(Equal(solver.Pro))
	})

	It("has readable names", func() {
		Expect(solver.Easy.String()).To(Equal("Easy"))
		Expect(solver.Pro.String()).To(Equal("Pro"))
	})
})
