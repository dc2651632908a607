package rules

import (
	"errors"
	"math/rand"

	"github.com/kamstrup/intmap"
)

// ErrNoFreeCell is returned when every cell on the board is occupied.
var ErrNoFreeCell = errors.New("rules: no unoccupied cell left for food")

// DefaultMaxSamples is how many random cells are tried before falling back
// to picking from the enumerated free cells.
const DefaultMaxSamples = 64

// FoodPlacer picks the cell the next piece of food goes on.
type FoodPlacer interface {
	Place(occupied []Cell, bounds Bounds) (Cell, error)
}

// RandomFoodPlacer samples grid aligned cells uniformly until it finds a free
// one. After MaxSamples misses it enumerates the free cells and picks one of
// them, so it always terminates.
type RandomFoodPlacer struct {
	Rand       *rand.Rand
	MaxSamples int
}

// NewRandomFoodPlacer returns a placer seeded with seed.
func NewRandomFoodPlacer(seed int64, maxSamples int) *RandomFoodPlacer {
	if maxSamples < 0 {
		maxSamples = 0
	}
	return &RandomFoodPlacer{
		Rand:       rand.New(rand.NewSource(seed)),
		MaxSamples: maxSamples,
	}
}

// Place returns a cell inside bounds that is not in occupied.
func (p *RandomFoodPlacer) Place(occupied []Cell, bounds Bounds) (Cell, error) {
	index := indexOccupied(occupied, bounds)
	total := int(bounds.Columns()) * int(bounds.Rows())
	if index.Len() >= total {
		return Cell{}, ErrNoFreeCell
	}

	for i := 0; i < p.MaxSamples; i++ {
		c := p.sample(bounds)
		if _, taken := index.Get(c.key()); !taken {
			return c, nil
		}
	}

	free := getFreeCells(bounds, index)
	if len(free) == 0 {
		return Cell{}, ErrNoFreeCell
	}
	return free[p.Rand.Intn(len(free))], nil
}

func (p *RandomFoodPlacer) sample(bounds Bounds) Cell {
	return Cell{
		X: int32(p.Rand.Intn(int(bounds.Columns()))) * bounds.CellSize,
		Y: int32(p.Rand.Intn(int(bounds.Rows()))) * bounds.CellSize,
	}
}

// indexOccupied keys the on-board occupied cells. Cells off the board or off
// the grid can never be picked, so they are left out of the count.
func indexOccupied(occupied []Cell, bounds Bounds) *intmap.Map[int64, struct{}] {
	index := intmap.New[int64, struct{}](len(occupied))
	for _, c := range occupied {
		if !bounds.Contains(c) || !bounds.Aligned(c) {
			continue
		}
		index.Put(c.key(), struct{}{})
	}
	return index
}

func getFreeCells(bounds Bounds, index *intmap.Map[int64, struct{}]) []Cell {
	total := int(bounds.Columns()) * int(bounds.Rows())
	candidates := make([]Cell, 0, total-index.Len())

	for x := int32(0); x < bounds.Width; x += bounds.CellSize {
		for y := int32(0); y < bounds.Height; y += bounds.CellSize {
			c := Cell{X: x, Y: y}
			if _, taken := index.Get(c.key()); !taken {
				candidates = append(candidates, c)
			}
		}
	}

	return candidates
}
