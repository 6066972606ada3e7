package game

// Grid is the settled-block surface. Dimensions are fixed at creation and cells are
// addressed as (col, row) with row 0 at the top.
type Grid struct {
	width  int
	height int
	rows   [][]bool
}

// NewGrid creates an empty width×height grid. Non-positive dimensions panic.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("game: grid dimensions must be positive")
	}
	return &Grid{
		width:  width,
		height: height,
		rows:   emptyRows(width, height),
	}
}

func emptyRows(width, count int) [][]bool {
	rows := make([][]bool, count)
	for i := range rows {
		rows[i] = make([]bool, width)
	}
	return rows
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// IsOccupied reports whether a settled block rests at (col, row). Coordinates
// outside the grid are never occupied; wall and floor limits are the piece's concern.
func (g *Grid) IsOccupied(col, row int) bool {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return false
	}
	return g.rows[row][col]
}

// Set writes a single cell. The caller guarantees (col, row) is inside the grid.
func (g *Grid) Set(col, row int, occupied bool) {
	g.rows[row][col] = occupied
}

// RowIsFull reports whether every column of row is occupied.
func (g *Grid) RowIsFull(row int) bool {
	if row < 0 || row >= g.height {
		return false
	}
	for _, cell := range g.rows[row] {
		if !cell {
			return false
		}
	}
	return true
}

// ClearRow empties every cell of row in place.
func (g *Grid) ClearRow(row int) {
	clear(g.rows[row])
}

// FullRows returns the indices of all full rows, top to bottom.
func (g *Grid) FullRows() []int {
	full, _ := g.Partition()
	return full
}

// Partition splits the row indices into full rows and remaining rows, both in
// top-to-bottom order.
func (g *Grid) Partition() (full, remaining []int) {
	for row := range g.rows {
		if g.RowIsFull(row) {
			full = append(full, row)
		} else {
			remaining = append(remaining, row)
		}
	}
	return full, remaining
}

// RemoveRows discards the given rows and lets everything above them fall: the
// result is one empty row per removed row, followed by the kept rows in their
// original order. The grid contents are replaced in a single assignment.
// Out-of-range and duplicate indices are ignored.
func (g *Grid) RemoveRows(rows ...int) int {
	drop := make(map[int]bool, len(rows))
	for _, row := range rows {
		if row >= 0 && row < g.height {
			drop[row] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}

	next := emptyRows(g.width, len(drop))
	for row, cells := range g.rows {
		if !drop[row] {
			next = append(next, cells)
		}
	}
	g.rows = next
	return len(drop)
}

// ShiftRowsDown removes count rows starting at fromRow and inserts count empty
// rows at the top. A non-positive count is a no-op.
func (g *Grid) ShiftRowsDown(fromRow, count int) int {
	if count <= 0 {
		return 0
	}
	rows := make([]int, 0, count)
	for row := fromRow; row < fromRow+count; row++ {
		rows = append(rows, row)
	}
	return g.RemoveRows(rows...)
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, cells := range g.rows {
		for _, cell := range cells {
			if cell {
				n++
			}
		}
	}
	return n
}

// Cells returns a deep copy of the grid as rows of columns.
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.height)
	for row, cells := range g.rows {
		out[row] = append([]bool(nil), cells...)
	}
	return out
}

// Clear empties the whole grid.
func (g *Grid) Clear() {
	g.rows = emptyRows(g.width, g.height)
}
