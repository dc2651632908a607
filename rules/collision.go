package rules

// SelfCollisionOffset is the first body index the head can collide with.
// Segments 1 to 3 never count as a self collision.
const SelfCollisionOffset = 4

// CollisionCause says why a game ended.
type CollisionCause string

const (
	// CollisionNone means the snake is still alive
	CollisionNone CollisionCause = ""
	// CollisionWall is when the head runs off the board
	CollisionWall CollisionCause = "wall-collision"
	// CollisionSelf is when the head runs into its own body
	CollisionSelf CollisionCause = "self-collision"
	// CollisionBoardFull is when there is no free cell left to place food on
	CollisionBoardFull CollisionCause = "board-full"
)

// CheckCollision looks at the head of the snake and returns why it died, or
// CollisionNone. Walls are checked before the body.
func CheckCollision(s Snake, b Bounds) CollisionCause {
	if len(s.Body) == 0 {
		return CollisionNone
	}
	head := s.Head()
	if collisionByOutOfBounds(head, b) {
		return CollisionWall
	}
	for i := SelfCollisionOffset; i < len(s.Body); i++ {
		if collisionByBody(head, s.Body[i]) {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// IsCollision reports whether the snake has hit a wall or itself.
func IsCollision(s Snake, b Bounds) bool {
	return CheckCollision(s, b) != CollisionNone
}

func collisionByOutOfBounds(head Cell, b Bounds) bool {
	return (head.X < 0) || (head.X >= b.Width) || (head.Y < 0) || (head.Y >= b.Height)
}

func collisionByBody(head, body Cell) bool {
	return head.Equal(body)
}
