package game

// Placement is a shape at a grid position.
type Placement struct {
	Shape Shape
	Pos   Position
}

// TryRotate rotates shape and corrects its position. Each occupied cell is
// visited in row-major order: a cell left of the wall pushes the piece right one
// column at a time, a cell right of the wall pushes it left, and a cell below
// the floor pushes it up. If the corrected placement overlaps settled blocks,
// one row up is tried once. When that fails too the original shape and
// position are returned with false.
//
// This is not a kick table. Rotations a full rotation system would allow near
// walls or stacks may be refused here.
func TryRotate(shape Shape, pos Position, grid *Grid, clockwise bool) (Placement, bool) {
	unchanged := Placement{Shape: shape, Pos: pos}
	rotated := shape.Rotate(clockwise)

	next := pos
	for _, c := range rotated.Cells() {
		for next.Col+c.Col < 0 {
			next.Col++
		}
		for next.Col+c.Col >= grid.Width() {
			next.Col--
		}
		for next.Row+c.Row >= grid.Height() {
			next.Row--
		}
	}
	if !inBounds(rotated, next, grid) {
		return unchanged, false
	}

	if overlaps(rotated, next, grid) {
		next.Row--
		if overlaps(rotated, next, grid) {
			return unchanged, false
		}
	}
	return Placement{Shape: rotated, Pos: next}, true
}
