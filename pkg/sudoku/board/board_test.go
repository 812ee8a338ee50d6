package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

// presetBoard builds a board from nine strings of digits and dots, all
// digits becoming Preset cells.
func presetBoard(t *testing.T, rows [9]string) board.Board {
	t.Helper()
	var presets []board.PresetCell
	for row, line := range rows {
		require.Len(t, line, 9)
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			require.True(t, ch >= '1' && ch <= '9')
			presets = append(presets, board.PresetCell{
				Index: sudoku.CellIndex{Col: col, Row: row},
				Val:   uint8(ch - '0'),
			})
		}
	}
	return board.New().WithPresets(presets...)
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := board.New()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			assert.Equal(t, sudoku.KindEmpty, b.Get(col, row).Kind())
		}
	}
	assert.Len(t, b.IterUnset(), 81)
}

func TestWithPresets(t *testing.T) {
	b := board.New().WithPresets(
		board.PresetCell{Index: sudoku.CellIndex{Col: 0, Row: 0}, Val: 5},
		board.PresetCell{Index: sudoku.CellIndex{Col: 8, Row: 8}, Val: 9},
	)
	assert.Equal(t, sudoku.Preset(5), b.Get(0, 0))
	assert.Equal(t, sudoku.Preset(9), b.Get(8, 8))
	assert.Len(t, b.IterUnset(), 79)
}

func TestSetValueIsIdempotent(t *testing.T) {
	b := board.New()
	ci := sudoku.CellIndex{Col: 3, Row: 4}
	b.Set(ci, sudoku.ModeValue, 7)
	once := b
	b.Set(ci, sudoku.ModeValue, 7)
	assert.Equal(t, once, b)
}

func TestSetValueEliminatesPeerNotes(t *testing.T) {
	b := board.New()
	// Notes in the same row, column and box as (4,4), plus one out of
	// sight at (0,8).
	peers := []sudoku.CellIndex{
		{Col: 0, Row: 4}, // row peer
		{Col: 4, Row: 0}, // column peer
		{Col: 3, Row: 3}, // box peer
	}
	unseen := sudoku.CellIndex{Col: 0, Row: 8}
	for _, ci := range append(peers, unseen) {
		b.Set(ci, sudoku.ModeMaybe, 6)
		b.Set(ci, sudoku.ModeMaybe, 2)
	}

	b.Set(sudoku.CellIndex{Col: 4, Row: 4}, sudoku.ModeValue, 6)

	for _, ci := range peers {
		assert.Equal(t, sudoku.NoteUnset, b.At(ci).Note(6), "peer %v", ci)
		assert.Equal(t, sudoku.NoteMaybe, b.At(ci).Note(2), "peer %v", ci)
	}
	assert.Equal(t, sudoku.NoteMaybe, b.At(unseen).Note(6))
}

func TestSetValueEliminationCollapsesEmptiedNotes(t *testing.T) {
	b := board.New()
	peer := sudoku.CellIndex{Col: 0, Row: 0}
	b.Set(peer, sudoku.ModeMaybe, 9)

	b.Set(sudoku.CellIndex{Col: 8, Row: 0}, sudoku.ModeValue, 9)

	assert.Equal(t, sudoku.KindEmpty, b.At(peer).Kind())
}

func TestSetMaybeTogglesAndCollapses(t *testing.T) {
	b := board.New()
	ci := sudoku.CellIndex{Col: 2, Row: 2}

	b.Set(ci, sudoku.ModeMaybe, 4)
	assert.Equal(t, sudoku.KindNotes, b.At(ci).Kind())
	assert.Equal(t, sudoku.NoteMaybe, b.At(ci).Note(4))

	b.Set(ci, sudoku.ModeMaybe, 4)
	assert.Equal(t, sudoku.KindEmpty, b.At(ci).Kind())
}

func TestSetDenyToggles(t *testing.T) {
	b := board.New()
	ci := sudoku.CellIndex{Col: 5, Row: 1}

	b.Set(ci, sudoku.ModeDeny, 3)
	assert.Equal(t, sudoku.NoteDeny, b.At(ci).Note(3))

	b.Set(ci, sudoku.ModeDeny, 3)
	assert.Equal(t, sudoku.KindEmpty, b.At(ci).Kind())
}

func TestSetIgnoresValueCellsForNotes(t *testing.T) {
	b := board.New()
	ci := sudoku.CellIndex{Col: 1, Row: 1}
	b.Set(ci, sudoku.ModeValue, 8)
	b.Set(ci, sudoku.ModeMaybe, 3)
	assert.Equal(t, sudoku.Value(8), b.At(ci))
}

func TestPresetCellsAreImmutable(t *testing.T) {
	ci := sudoku.CellIndex{Col: 0, Row: 0}
	b := board.New().WithPresets(board.PresetCell{Index: ci, Val: 5})

	b.Set(ci, sudoku.ModeValue, 1)
	assert.Equal(t, sudoku.Preset(5), b.At(ci))

	b.Set(ci, sudoku.ModeMaybe, 1)
	assert.Equal(t, sudoku.Preset(5), b.At(ci))

	b.Reset(ci)
	assert.Equal(t, sudoku.Preset(5), b.At(ci))
}

func TestResetClearsValueAndNotes(t *testing.T) {
	b := board.New()
	b.Set(sudoku.CellIndex{Col: 1, Row: 0}, sudoku.ModeValue, 2)
	b.Set(sudoku.CellIndex{Col: 2, Row: 0}, sudoku.ModeMaybe, 2)

	b.Reset(sudoku.CellIndex{Col: 1, Row: 0})
	b.Reset(sudoku.CellIndex{Col: 2, Row: 0})

	assert.Equal(t, sudoku.KindEmpty, b.Get(1, 0).Kind())
	assert.Equal(t, sudoku.KindEmpty, b.Get(2, 0).Kind())
}

func TestIterUnsetIsRowMajor(t *testing.T) {
	b := presetBoard(t, [9]string{
		".23456789",
		"456789123",
		"789123456",
		"214365897",
		"365897214",
		"89721.365",
		"531642978",
		"642978531",
		"97853164.",
	})
	assert.Equal(t, []sudoku.CellIndex{
		{Col: 0, Row: 0},
		{Col: 5, Row: 5},
		{Col: 8, Row: 8},
	}, b.IterUnset())
}

func TestSwapsPreserveVictory(t *testing.T) {
	b := presetBoard(t, solvedRows)
	require.True(t, b.IsVictory())

	b.SwapRows(0, 2)
	assert.True(t, b.IsVictory())

	b.SwapColumns(3, 5)
	assert.True(t, b.IsVictory())
}

func TestSwapColumnsExchangesCells(t *testing.T) {
	b := presetBoard(t, solvedRows)
	left, right := b.Get(0, 4), b.Get(1, 4)
	b.SwapColumns(0, 1)
	assert.Equal(t, left, b.Get(1, 4))
	assert.Equal(t, right, b.Get(0, 4))
}

func TestFreezePromotesValues(t *testing.T) {
	b := board.New()
	b.Set(sudoku.CellIndex{Col: 4, Row: 4}, sudoku.ModeValue, 3)
	b.Set(sudoku.CellIndex{Col: 0, Row: 1}, sudoku.ModeMaybe, 9)

	b.Freeze()

	assert.Equal(t, sudoku.Preset(3), b.Get(4, 4))
	assert.Equal(t, sudoku.KindNotes, b.Get(0, 1).Kind())
}

func TestStringRendersGrid(t *testing.T) {
	b := presetBoard(t, solvedRows)
	want := "+-----------------+\n" +
		"|5 3 4|6 7 8|9 1 2|\n" +
		"|6 7 2|1 9 5|3 4 8|\n" +
		"|1 9 8|3 4 2|5 6 7|\n" +
		"+-----------------+\n" +
		"|8 5 9|7 6 1|4 2 3|\n" +
		"|4 2 6|8 5 3|7 9 1|\n" +
		"|7 1 3|9 2 4|8 5 6|\n" +
		"+-----------------+\n" +
		"|9 6 1|5 3 7|2 8 4|\n" +
		"|2 8 7|4 1 9|6 3 5|\n" +
		"|3 4 5|2 8 6|1 7 9|\n" +
		"+-----------------+\n"
	assert.Equal(t, want, b.String())
}

// solvedRows is a canonical completed grid used across the package tests.
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
