package board

import "github.com/sudoku-framework/sudoku/pkg/sudoku"

// RegionKind distinguishes the three region shapes.
type RegionKind int

const (
	// RegionRow is one of the nine horizontal lines.
	RegionRow RegionKind = iota
	// RegionColumn is one of the nine vertical lines.
	RegionColumn
	// RegionBox is one of the nine 3x3 sub-grids.
	RegionBox
)

// Region is a non-owning view over nine cells of a board. The cells are
// captured by value in their natural visiting order: left to right for
// rows, top to bottom for columns, row-major within a box.
type Region struct {
	kind  RegionKind
	cells []sudoku.IndexedCell
}

// Kind returns the region's shape.
func (r Region) Kind() RegionKind {
	return r.kind
}

// Cells returns the region's (index, cell) pairs in visiting order.
func (r Region) Cells() []sudoku.IndexedCell {
	return r.cells
}

// Row returns the view over row index, or false when index is out of range.
func (b Board) Row(index int) (Region, bool) {
	if index < 0 || index >= sudoku.Size {
		return Region{}, false
	}
	cells := make([]sudoku.IndexedCell, 0, sudoku.Size)
	for col := 0; col < sudoku.Size; col++ {
		cells = append(cells, sudoku.IndexedCell{
			Index: sudoku.CellIndex{Col: col, Row: index},
			Cell:  b.cells[index][col],
		})
	}
	return Region{kind: RegionRow, cells: cells}, true
}

// Column returns the view over column index, or false when index is out of
// range.
func (b Board) Column(index int) (Region, bool) {
	if index < 0 || index >= sudoku.Size {
		return Region{}, false
	}
	cells := make([]sudoku.IndexedCell, 0, sudoku.Size)
	for row := 0; row < sudoku.Size; row++ {
		cells = append(cells, sudoku.IndexedCell{
			Index: sudoku.CellIndex{Col: index, Row: row},
			Cell:  b.cells[row][index],
		})
	}
	return Region{kind: RegionColumn, cells: cells}, true
}

// Box returns the view over the 3x3 box at (boxCol, boxRow), both in 0..2,
// or false when either is out of range.
func (b Board) Box(boxCol, boxRow int) (Region, bool) {
	if boxCol < 0 || boxCol > 2 || boxRow < 0 || boxRow > 2 {
		return Region{}, false
	}
	cells := make([]sudoku.IndexedCell, 0, sudoku.Size)
	for row := boxRow * 3; row < boxRow*3+3; row++ {
		for col := boxCol * 3; col < boxCol*3+3; col++ {
			cells = append(cells, sudoku.IndexedCell{
				Index: sudoku.CellIndex{Col: col, Row: row},
				Cell:  b.cells[row][col],
			})
		}
	}
	return Region{kind: RegionBox, cells: cells}, true
}

// Rows returns all nine row views in order.
func (b Board) Rows() []Region {
	regions := make([]Region, 0, sudoku.Size)
	for i := 0; i < sudoku.Size; i++ {
		r, _ := b.Row(i)
		regions = append(regions, r)
	}
	return regions
}

// Columns returns all nine column views in order.
func (b Board) Columns() []Region {
	regions := make([]Region, 0, sudoku.Size)
	for i := 0; i < sudoku.Size; i++ {
		c, _ := b.Column(i)
		regions = append(regions, c)
	}
	return regions
}

// Boxes returns all nine box views, box-row major.
func (b Board) Boxes() []Region {
	regions := make([]Region, 0, sudoku.Size)
	for boxRow := 0; boxRow < 3; boxRow++ {
		for boxCol := 0; boxCol < 3; boxCol++ {
			bx, _ := b.Box(boxCol, boxRow)
			regions = append(regions, bx)
		}
	}
	return regions
}

// Regions returns all 27 regions: rows, then columns, then boxes.
func (b Board) Regions() []Region {
	regions := make([]Region, 0, 27)
	regions = append(regions, b.Rows()...)
	regions = append(regions, b.Columns()...)
	regions = append(regions, b.Boxes()...)
	return regions
}

// Affected bundles the row, column and box seen by one cell.
type Affected struct {
	Row    Region
	Column Region
	Box    Region
}

// Affected returns the three regions containing ci.
func (b Board) Affected(ci sudoku.CellIndex) Affected {
	row, _ := b.Row(ci.Row)
	col, _ := b.Column(ci.Col)
	box, _ := b.Box(ci.Col/3, ci.Row/3)
	return Affected{Row: row, Column: col, Box: box}
}

// IsValid reports whether all three affected regions are free of collisions.
func (a Affected) IsValid() bool {
	return a.Row.IsValid() && a.Column.IsValid() && a.Box.IsValid()
}

// Regions returns the affected regions as a slice, row first.
func (a Affected) Regions() []Region {
	return []Region{a.Row, a.Column, a.Box}
}
