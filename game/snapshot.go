package game

// PieceView is the renderable part of a piece. Ghost is where a hard drop
// would land it.
type PieceView struct {
	Kind  Kind
	Shape Shape
	Pos   Position
	Ghost Position
}

// Snapshot is a self-contained copy of everything a renderer needs for one
// frame. NextShape is the preview kind in spawn orientation and Clearing lists
// the rows flashed by a cascade in flight.
type Snapshot struct {
	Frame     uint64
	Width     int
	Height    int
	Cells     [][]bool
	Piece     *PieceView
	Next      Kind
	NextShape Shape

	Progress
	Paused   bool
	GameOver bool
	Clearing []int
}

// Occupied reports whether (col, row) shows a block, either settled or part of
// the active piece.
func (s Snapshot) Occupied(col, row int) bool {
	if row >= 0 && row < len(s.Cells) && col >= 0 && col < len(s.Cells[row]) && s.Cells[row][col] {
		return true
	}
	return s.PieceAt(col, row)
}

// PieceAt reports whether the active piece covers (col, row).
func (s Snapshot) PieceAt(col, row int) bool {
	if s.Piece == nil {
		return false
	}
	c, r := col-s.Piece.Pos.Col, row-s.Piece.Pos.Row
	return r >= 0 && r < s.Piece.Shape.Height() && c >= 0 && c < s.Piece.Shape.Width() && s.Piece.Shape[r][c]
}

// GhostAt reports whether the landing preview of the active piece covers (col, row).
func (s Snapshot) GhostAt(col, row int) bool {
	if s.Piece == nil {
		return false
	}
	c, r := col-s.Piece.Ghost.Col, row-s.Piece.Ghost.Row
	return r >= 0 && r < s.Piece.Shape.Height() && c >= 0 && c < s.Piece.Shape.Width() && s.Piece.Shape[r][c]
}

// IsClearing reports whether row is flashing.
func (s Snapshot) IsClearing(row int) bool {
	for _, r := range s.Clearing {
		if r == row {
			return true
		}
	}
	return false
}

// Renderer draws snapshots. It is called once at the end of every frame.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }
