package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedShape is returned when a shape matrix is empty, ragged or has no cells.
var ErrMalformedShape = errors.New("malformed shape")

// Shape is a rectangular occupancy matrix indexed as [row][col].
type Shape [][]bool

// ParseShape builds a Shape from rows of 0/1 values.
func ParseShape(rows [][]int) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrMalformedShape)
	}

	width := len(rows[0])
	shape := make(Shape, len(rows))
	cells := 0
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedShape, y, len(row), width)
		}
		shape[y] = make([]bool, width)
		for x, v := range row {
			switch v {
			case 0:
			case 1:
				shape[y][x] = true
				cells++
			default:
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrMalformedShape, v, x, y)
			}
		}
	}
	if cells == 0 {
		return nil, fmt.Errorf("%w: no occupied cells", ErrMalformedShape)
	}
	return shape, nil
}

// MustShape is like ParseShape but panics on malformed input.
func MustShape(rows [][]int) Shape {
	shape, err := ParseShape(rows)
	if err != nil {
		panic(err)
	}
	return shape
}

func (s Shape) Height() int { return len(s) }

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Cells returns the (col, row) offsets of every occupied cell in row-major order.
func (s Shape) Cells() []Position {
	var cells []Position
	for y, row := range s {
		for x, v := range row {
			if v {
				cells = append(cells, Position{Col: x, Row: y})
			}
		}
	}
	return cells
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90 degrees. Clockwise transposes and then
// reverses each row; counter-clockwise transposes and then reverses the row order.
func (s Shape) Rotate(clockwise bool) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
	}

	for y := range h {
		for x := range w {
			if clockwise {
				out[x][h-1-y] = s[y][x]
			} else {
				out[w-1-x][y] = s[y][x]
			}
		}
	}
	return out
}

func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	OrangeRicky Kind = iota
	BlueRicky
	ClevelandZ
	RhodeIslandZ
	Hero
	Teewee
	SmashBoy

	NumKinds = 7
)

var kindNames = [NumKinds]string{
	"orangeRicky",
	"blueRicky",
	"clevelandZ",
	"rhodeIslandZ",
	"hero",
	"teewee",
	"smashBoy",
}

var kindShapes = [NumKinds]Shape{
	OrangeRicky: MustShape([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 1},
	}),
	BlueRicky: MustShape([][]int{
		{0, 1, 1},
		{0, 1, 0},
		{0, 1, 0},
	}),
	ClevelandZ: MustShape([][]int{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}),
	RhodeIslandZ: MustShape([][]int{
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	}),
	Hero: MustShape([][]int{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	}),
	Teewee: MustShape([][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	}),
	SmashBoy: MustShape([][]int{
		{1, 1},
		{1, 1},
	}),
}

// Kinds returns all seven kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) Valid() bool { return k < NumKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Shape returns a fresh copy of the kind's spawn orientation.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		panic(fmt.Sprintf("game: unknown piece kind %d", uint8(k)))
	}
	return kindShapes[k].Clone()
}
