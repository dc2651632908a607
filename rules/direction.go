package rules

// Direction is a movement intent, free of any input device vocabulary.
type Direction uint8

// Directions the snake can be steered in. The zero value is not a direction
// and is ignored by the DirectionController.
const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// Velocity is the per tick displacement of the head, one of four unit vectors
// scaled by the cell size.
type Velocity struct {
	DX int32 `json:"dx"`
	DY int32 `json:"dy"`
}

// Opposite reports whether v points exactly against other.
func (v Velocity) Opposite(other Velocity) bool {
	return v.DX == -other.DX && v.DY == -other.DY
}

// Velocity returns the unit vector for d in cellSize units. ok is false for
// unknown directions.
func (d Direction) Velocity(cellSize int32) (v Velocity, ok bool) {
	switch d {
	case DirectionUp:
		return Velocity{DX: 0, DY: -cellSize}, true
	case DirectionDown:
		return Velocity{DX: 0, DY: cellSize}, true
	case DirectionLeft:
		return Velocity{DX: -cellSize, DY: 0}, true
	case DirectionRight:
		return Velocity{DX: cellSize, DY: 0}, true
	}
	return Velocity{}, false
}

// DirectionController turns direction intents into a velocity. It accepts at
// most one change between two calls to Unlock, and never a reversal.
type DirectionController struct {
	cellSize int32
	velocity Velocity
	locked   bool
}

// NewDirectionController returns an unlocked controller heading in initial.
func NewDirectionController(initial Velocity, cellSize int32) *DirectionController {
	return &DirectionController{
		cellSize: cellSize,
		velocity: initial,
	}
}

// Unlock starts a new tick window.
func (dc *DirectionController) Unlock() {
	dc.locked = false
}

// Locked reports whether a change was already accepted in this tick window.
func (dc *DirectionController) Locked() bool {
	return dc.locked
}

// Velocity is the velocity the next tick will use.
func (dc *DirectionController) Velocity() Velocity {
	return dc.velocity
}

// OnInput applies d if the controller is unlocked and d does not reverse the
// current velocity. It reports whether d was accepted.
func (dc *DirectionController) OnInput(d Direction) bool {
	if dc.locked {
		return false
	}
	v, ok := d.Velocity(dc.cellSize)
	if !ok {
		return false
	}
	if v.Opposite(dc.velocity) {
		return false
	}
	dc.velocity = v
	dc.locked = true
	return true
}
