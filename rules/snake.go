package rules

import "errors"

// ErrEmptySnake is returned when a snake is built without any cells.
var ErrEmptySnake = errors.New("rules: snake has no cells")

// Snake is the ordered list of cells the snake occupies, head first.
type Snake struct {
	Body []Cell `json:"body"`
}

// NewSnake returns a snake occupying body. body must not be empty.
func NewSnake(body ...Cell) (Snake, error) {
	if len(body) == 0 {
		return Snake{}, ErrEmptySnake
	}
	return Snake{Body: append([]Cell(nil), body...)}, nil
}

// Head returns the first cell in the body
func (s Snake) Head() Cell {
	return s.Body[0]
}

// Tail returns the last cell in the body
func (s Snake) Tail() Cell {
	return s.Body[len(s.Body)-1]
}

// Len is the number of cells in the body.
func (s Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment is on c.
func (s Snake) Contains(c Cell) bool {
	for _, b := range s.Body {
		if b.Equal(c) {
			return true
		}
	}
	return false
}

// Advance returns the cell one step from head along v.
func Advance(head Cell, v Velocity) Cell {
	return Cell{X: head.X + v.DX, Y: head.Y + v.DY}
}

// Grow returns a new snake with head prepended. The body of s is not shared.
func Grow(s Snake, head Cell) Snake {
	body := make([]Cell, 0, len(s.Body)+1)
	body = append(body, head)
	body = append(body, s.Body...)
	return Snake{Body: body}
}

// Shrink returns s without its last cell. A single cell snake is returned
// unchanged so the body is never empty.
func Shrink(s Snake) Snake {
	if len(s.Body) <= 1 {
		return s
	}
	return Snake{Body: s.Body[:len(s.Body)-1]}
}
