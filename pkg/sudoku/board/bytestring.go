package board

import "github.com/sudoku-framework/sudoku/pkg/sudoku"

// AsByteString encodes every filled cell into the compact two-byte clue
// format. Each byte has its top bits set to 01, keeping the stream 7-bit
// safe. The twelve payload bits hold three 4-bit fields: column+1, row+1
// and digit+1, high byte first. The stream ends with the 0x40 0x40
// sentinel.
func (b Board) AsByteString() string {
	var buf []byte
	for row := 0; row < sudoku.Size; row++ {
		for col := 0; col < sudoku.Size; col++ {
			val, ok := b.cells[row][col].AsValue()
			if !ok {
				continue
			}
			x := col + 1
			y := row + 1
			v := int(val) + 1
			high := byte(0x40 | (x << 2) | (y >> 2))
			low := byte(0x40 | ((y << 4) & 0x30) | v)
			buf = append(buf, high, low)
		}
	}
	buf = append(buf, 0x40, 0x40)
	return string(buf)
}
