package game

import "math"

// DirectionFromDrag translates a pointer drag, measured from the centre of the player's
// cell, into a move request. Drags that stay within one cell on both axes are ignored.
func DirectionFromDrag(dx, dy, cellSize float64) (Direction, bool) {
	if cellSize <= 0 {
		return 0, false
	}

	absDx, absDy := math.Abs(dx), math.Abs(dy)
	if absDx <= cellSize && absDy <= cellSize {
		return 0, false
	}

	if absDx > absDy {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}

	if dy > 0 {
		return Down, true
	}
	return Up, true
}
