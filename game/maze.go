package game

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-runner/game/maze"
)

// Maze defines the methods the session needs from a generated maze.
type Maze interface {
	Width() int
	Height() int
	HasWall(pos maze.CellPosition, dir string) bool
	WallState(col, row int) (maze.Walls, error)
	Render(marks map[maze.CellPosition]byte) string
}

// MazeFactory builds a freshly carved maze of the given dimensions.
type MazeFactory func(cols, rows int, rng *rand.Rand) (Maze, error)

// BacktrackerFactory carves mazes with the randomized depth-first backtracker.
func BacktrackerFactory(cols, rows int, rng *rand.Rand) (Maze, error) {
	m, err := maze.New(cols, rows, rng)
	if err != nil {
		return nil, err
	}
	return m, nil
}
