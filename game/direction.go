package game

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-runner/game/maze"
)

// Direction is a directional move request.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// grid returns the maze direction name the request corresponds to.
func (d Direction) grid() string {
	switch d {
	case Up:
		return maze.North
	case Down:
		return maze.South
	case Left:
		return maze.West
	case Right:
		return maze.East
	default:
		return ""
	}
}

// ParseDirection accepts up/down/left/right as well as the compass names.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "north":
		return Up, nil
	case "down", "south":
		return Down, nil
	case "left", "west":
		return Left, nil
	case "right", "east":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
