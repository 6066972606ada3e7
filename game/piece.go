package game

// Position is a piece anchor: the grid cell of the shape's top-left corner.
// Row may be negative while the piece is above the visible board.
type Position struct {
	Col int
	Row int
}

func (p Position) Add(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// PieceState is the lifecycle state of a piece.
type PieceState uint8

const (
	PieceActive PieceState = iota
	PieceLocked
	PieceGameOver
)

func (s PieceState) String() string {
	switch s {
	case PieceActive:
		return "active"
	case PieceLocked:
		return "locked"
	case PieceGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Piece is the falling tetromino. It reads the grid but never writes to it;
// merging a disabled piece is the session's job.
type Piece struct {
	kind      Kind
	shape     Shape
	pos       Position
	state     PieceState
	grid      *Grid
	onDisable []func()
}

// NewPiece spawns kind on grid, centred over spawnCol at row 0.
func NewPiece(kind Kind, grid *Grid, spawnCol int) *Piece {
	shape := kind.Shape()
	return &Piece{
		kind:  kind,
		shape: shape,
		pos:   Position{Col: spawnCol - shape.Width()/2, Row: 0},
		grid:  grid,
	}
}

func (p *Piece) Kind() Kind         { return p.kind }
func (p *Piece) Shape() Shape       { return p.shape }
func (p *Piece) Position() Position { return p.pos }
func (p *Piece) State() PieceState  { return p.state }
func (p *Piece) Enabled() bool      { return p.state == PieceActive }

// OnDisable registers fn to run synchronously when the piece locks.
func (p *Piece) OnDisable(fn func()) {
	p.onDisable = append(p.onDisable, fn)
}

// Cells returns the absolute grid coordinates of every occupied cell.
func (p *Piece) Cells() []Position {
	cells := p.shape.Cells()
	for i, c := range cells {
		cells[i] = p.pos.Add(c.Col, c.Row)
	}
	return cells
}

// CanMoveHorizontal reports whether shifting by dir columns keeps every cell
// inside the walls and off settled blocks. It has no side effects.
func (p *Piece) CanMoveHorizontal(dir int) bool {
	if !p.Enabled() {
		return false
	}
	for _, c := range p.shape.Cells() {
		col := p.pos.Col + dir + c.Col
		if col < 0 || col >= p.grid.Width() {
			return false
		}
		if p.grid.IsOccupied(col, p.pos.Row+c.Row) {
			return false
		}
	}
	return true
}

// MoveHorizontal shifts the piece by dir columns if legal.
func (p *Piece) MoveHorizontal(dir int) bool {
	if !p.CanMoveHorizontal(dir) {
		return false
	}
	p.pos.Col += dir
	return true
}

// CanMoveVertical reports whether shifting by dir rows is legal. A failed check
// against the floor or settled blocks locks the piece.
func (p *Piece) CanMoveVertical(dir int) bool {
	if !p.Enabled() {
		return false
	}
	for _, c := range p.shape.Cells() {
		row := p.pos.Row + dir + c.Row
		if row >= p.grid.Height() || p.grid.IsOccupied(p.pos.Col+c.Col, row) {
			p.Lock()
			return false
		}
	}
	return true
}

// MoveVertical shifts the piece by dir rows if legal.
func (p *Piece) MoveVertical(dir int) bool {
	if !p.CanMoveVertical(dir) {
		return false
	}
	p.pos.Row += dir
	return true
}

// DropOne moves the piece down one row, locking it if it cannot fall.
func (p *Piece) DropOne() bool {
	return p.MoveVertical(1)
}

// HardDrop drops the piece until it locks and returns the rows travelled.
func (p *Piece) HardDrop() int {
	rows := 0
	for p.DropOne() {
		rows++
	}
	return rows
}

// DropDistance returns how many rows the piece can fall without locking it.
func (p *Piece) DropDistance() int {
	if !p.Enabled() {
		return 0
	}
	n := 0
	for fits(p.shape, p.pos.Add(0, n+1), p.grid) {
		n++
	}
	return n
}

// CollidesWithGrid reports whether the piece offset by (dx, dy) overlaps a
// settled block.
func (p *Piece) CollidesWithGrid(dx, dy int) bool {
	return overlaps(p.shape, p.pos.Add(dx, dy), p.grid)
}

// Rotate turns the piece with the limited wall correction of TryRotate.
// A rotation with no legal placement leaves the piece unchanged.
func (p *Piece) Rotate(clockwise bool) bool {
	if !p.Enabled() {
		return false
	}
	placement, ok := TryRotate(p.shape, p.pos, p.grid, clockwise)
	if !ok {
		return false
	}
	p.shape = placement.Shape
	p.pos = placement.Pos
	return true
}

// Lock disables the piece. A piece resting with any cell on row 0 or above
// ends the game.
func (p *Piece) Lock() {
	if !p.Enabled() {
		return
	}
	p.state = PieceLocked
	for _, c := range p.shape.Cells() {
		if p.pos.Row+c.Row <= 0 {
			p.state = PieceGameOver
			break
		}
	}

	hooks := p.onDisable
	p.onDisable = nil
	for _, fn := range hooks {
		fn()
	}
}

func overlaps(shape Shape, pos Position, grid *Grid) bool {
	for _, c := range shape.Cells() {
		if grid.IsOccupied(pos.Col+c.Col, pos.Row+c.Row) {
			return true
		}
	}
	return false
}

func inBounds(shape Shape, pos Position, grid *Grid) bool {
	for _, c := range shape.Cells() {
		col, row := pos.Col+c.Col, pos.Row+c.Row
		if col < 0 || col >= grid.Width() || row >= grid.Height() {
			return false
		}
	}
	return true
}

func fits(shape Shape, pos Position, grid *Grid) bool {
	return inBounds(shape, pos, grid) && !overlaps(shape, pos, grid)
}
