package board

import "github.com/sudoku-framework/sudoku/pkg/sudoku"

// InvalidCells returns the indices of every filled cell that participates
// in a digit collision within the region.
func (r Region) InvalidCells() []sudoku.CellIndex {
	type slot struct {
		first sudoku.CellIndex
		seen  bool
		dup   bool
	}
	var found [sudoku.Size]slot
	var invalid []sudoku.CellIndex

	for _, ic := range r.cells {
		val, ok := ic.Cell.AsValue()
		if !ok {
			continue
		}
		s := &found[val-1]
		switch {
		case !s.seen:
			s.seen = true
			s.first = ic.Index
		case !s.dup:
			invalid = append(invalid, s.first, ic.Index)
			s.dup = true
		default:
			invalid = append(invalid, ic.Index)
		}
	}
	return invalid
}

// IsValid reports whether no digit appears twice among the region's filled
// cells.
func (r Region) IsValid() bool {
	var seen [sudoku.Size]bool
	for _, ic := range r.cells {
		val, ok := ic.Cell.AsValue()
		if !ok {
			continue
		}
		if seen[val-1] {
			return false
		}
		seen[val-1] = true
	}
	return true
}

// IsComplete reports whether every digit 1..9 appears exactly once in the
// region.
func (r Region) IsComplete() bool {
	var count [sudoku.Size]int
	for _, ic := range r.cells {
		val, ok := ic.Cell.AsValue()
		if !ok {
			continue
		}
		count[val-1]++
	}
	for _, n := range count {
		if n != 1 {
			return false
		}
	}
	return true
}

// IsValid reports whether all 27 regions of the board are valid.
func (b Board) IsValid() bool {
	for _, region := range b.Regions() {
		if !region.IsValid() {
			return false
		}
	}
	return true
}

// InvalidCells returns the indices of every cell participating in a
// collision in any region, each index at most once, in first-seen order.
func (b Board) InvalidCells() []sudoku.CellIndex {
	seen := make(map[sudoku.CellIndex]struct{})
	var invalid []sudoku.CellIndex
	for _, region := range b.Regions() {
		for _, ci := range region.InvalidCells() {
			if _, ok := seen[ci]; ok {
				continue
			}
			seen[ci] = struct{}{}
			invalid = append(invalid, ci)
		}
	}
	return invalid
}

// IsComplete reports whether all 27 regions of the board are complete.
func (b Board) IsComplete() bool {
	for _, region := range b.Regions() {
		if !region.IsComplete() {
			return false
		}
	}
	return true
}

// IsVictory reports whether the board is both valid and complete.
func (b Board) IsVictory() bool {
	return b.IsValid() && b.IsComplete()
}
