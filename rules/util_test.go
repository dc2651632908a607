package rules

var commonBounds = Bounds{
	Width:    400,
	Height:   300,
	CellSize: 10,
}

// stubPlacer hands out cells in order and records what it was asked.
type stubPlacer struct {
	cells    []Cell
	err      error
	occupied [][]Cell
}

func (sp *stubPlacer) Place(occupied []Cell, bounds Bounds) (Cell, error) {
	sp.occupied = append(sp.occupied, append([]Cell(nil), occupied...))
	if sp.err != nil {
		return Cell{}, sp.err
	}
	c := sp.cells[0]
	sp.cells = sp.cells[1:]
	return c, nil
}
