package rules

import "errors"

// ErrInvalidBounds is returned when a board cannot hold a game.
var ErrInvalidBounds = errors.New("rules: invalid board bounds")

// Cell is one grid-aligned square, addressed by its top left corner in the
// same units as the board bounds.
type Cell struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Equal checks if 2 cells are the same x,y coordinate
func (c Cell) Equal(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Cell) key() int64 {
	return int64(c.X)<<32 | int64(uint32(c.Y))
}

// Bounds is the size of the board. Width and Height are multiples of
// CellSize.
type Bounds struct {
	Width    int32 `json:"width"`
	Height   int32 `json:"height"`
	CellSize int32 `json:"cellSize"`
}

// Columns is the number of cells across the board.
func (b Bounds) Columns() int32 {
	return b.Width / b.CellSize
}

// Rows is the number of cells down the board.
func (b Bounds) Rows() int32 {
	return b.Height / b.CellSize
}

// Contains reports whether c lies in [0, Width) x [0, Height).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Aligned reports whether c sits on the grid.
func (b Bounds) Aligned(c Cell) bool {
	return c.X%b.CellSize == 0 && c.Y%b.CellSize == 0
}

// Validate checks the board is large enough for a starting snake.
func (b Bounds) Validate() error {
	if b.CellSize <= 0 || b.Width <= 0 || b.Height <= 0 {
		return ErrInvalidBounds
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return ErrInvalidBounds
	}
	if b.Columns() < int32(len(StartingBody)) {
		return ErrInvalidBounds
	}
	return nil
}
