package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

// JSONLoader parses a clue list of the form
//
//	[{"x": <column>, "y": <row>, "val": <digit>}, ...]
//
// with 0-based coordinates and digits in 1..9.
type JSONLoader struct {
	data []byte
}

// JSONFromString returns a loader over the given JSON text.
func JSONFromString(s string) *JSONLoader {
	return &JSONLoader{data: []byte(s)}
}

// JSONFromFile returns a loader over the contents of the file at path.
func JSONFromFile(path string) (*JSONLoader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file %q: %w", path, err)
	}
	return &JSONLoader{data: data}, nil
}

type jsonCell struct {
	X   int   `json:"x"`
	Y   int   `json:"y"`
	Val uint8 `json:"val"`
}

// Load implements Loader.
func (l *JSONLoader) Load() (board.Board, error) {
	var entries []jsonCell
	if err := json.Unmarshal(l.data, &entries); err != nil {
		return board.Board{}, fmt.Errorf("parsing puzzle JSON: %w", err)
	}

	presets := make([]board.PresetCell, 0, len(entries))
	for i, entry := range entries {
		if entry.X < 0 || entry.X >= sudoku.Size {
			return board.Board{}, &RangeError{Entry: i, Field: "x", Value: entry.X}
		}
		if entry.Y < 0 || entry.Y >= sudoku.Size {
			return board.Board{}, &RangeError{Entry: i, Field: "y", Value: entry.Y}
		}
		if entry.Val < 1 || entry.Val > sudoku.Size {
			return board.Board{}, &RangeError{Entry: i, Field: "val", Value: int(entry.Val)}
		}
		presets = append(presets, board.PresetCell{
			Index: sudoku.CellIndex{Col: entry.X, Row: entry.Y},
			Val:   entry.Val,
		})
	}
	return board.New().WithPresets(presets...), nil
}
