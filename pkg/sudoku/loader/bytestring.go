package loader

import (
	"errors"
	"fmt"

	"github.com/sudoku-framework/sudoku/pkg/sudoku"
	"github.com/sudoku-framework/sudoku/pkg/sudoku/board"
)

// Byte-string streams encode one clue per two bytes. Both bytes carry 01 in
// their top two bits so the stream stays printable ASCII; the remaining
// twelve payload bits are three 4-bit fields, high byte first:
//
//	x = column+1, y = row+1, val = digit+1
//
// A payload of all zeroes (the bytes 0x40 0x40) terminates the stream.

var (
	// ErrOddByteCount marks a stream that cannot split into byte pairs.
	ErrOddByteCount = errors.New("odd number of bytes in byte string")
	// ErrMissingSentinel marks a stream that ended before the 0x40 0x40
	// sentinel pair.
	ErrMissingSentinel = errors.New("byte string ended before sentinel")
)

// RangeError reports a decoded field outside its legal range.
type RangeError struct {
	Entry int
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("clue %d: field %q out of range: %d", e.Entry, e.Field, e.Value)
}

// ByteStringLoader parses the compact clue encoding.
type ByteStringLoader struct {
	bytes []byte
}

// ByteStringFromString returns a loader over the given encoded string.
func ByteStringFromString(s string) *ByteStringLoader {
	return &ByteStringLoader{bytes: []byte(s)}
}

// Load implements Loader.
func (l *ByteStringLoader) Load() (board.Board, error) {
	if len(l.bytes)%2 != 0 {
		return board.Board{}, ErrOddByteCount
	}

	var presets []board.PresetCell
	terminated := false
	for i := 0; i+1 < len(l.bytes); i += 2 {
		high := l.bytes[i] &^ 0xC0
		low := l.bytes[i+1] &^ 0xC0
		payload := uint16(high)<<6 | uint16(low)
		if payload == 0 {
			terminated = true
			break
		}

		entry := i / 2
		x := int(payload >> 8 & 0xF)
		y := int(payload >> 4 & 0xF)
		val := int(payload & 0xF)
		if x < 1 || x > sudoku.Size {
			return board.Board{}, &RangeError{Entry: entry, Field: "x", Value: x}
		}
		if y < 1 || y > sudoku.Size {
			return board.Board{}, &RangeError{Entry: entry, Field: "y", Value: y}
		}
		if val < 2 || val > sudoku.Size+1 {
			return board.Board{}, &RangeError{Entry: entry, Field: "val", Value: val}
		}

		presets = append(presets, board.PresetCell{
			Index: sudoku.CellIndex{Col: x - 1, Row: y - 1},
			Val:   uint8(val - 1),
		})
	}
	if !terminated {
		return board.Board{}, ErrMissingSentinel
	}
	return board.New().WithPresets(presets...), nil
}
