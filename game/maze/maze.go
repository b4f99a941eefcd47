/*
Package maze provides tools for creating and navigating rectangular perfect mazes.

It defines the `Maze` structure, a flat arena of `Cell` values with shared wall flags, and
a randomized depth-first backtracker that carves a spanning tree into a fully walled grid.

Neighbour relationships are coordinate math over the arena, and the visited marks used while
carving live in a set scoped to one generation pass, never on the cells themselves.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxDimension bounds the width and height of a maze.
	MaxDimension = 100
)

// Direction names understood by the grid.
const (
	North = "North"
	South = "South"
	East  = "East"
	West  = "West"
)

var (
	// Directions maps each direction to its row/column offset.
	Directions = map[string]CellPosition{
		North: {Row: -1, Col: 0},
		South: {Row: 1, Col: 0},
		East:  {Row: 0, Col: 1},
		West:  {Row: 0, Col: -1},
	}

	// directionOrder fixes the order in which candidate neighbours are collected so a
	// seeded generator always sees the same candidate list.
	directionOrder = []string{North, South, West, East}

	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent in the given direction")
)

// Maze is a rectangular grid of cells.
// Cells are stored row-major in a single slice: cell (row, col) lives at row*width+col.
type Maze struct {
	width  int    // number of columns
	height int    // number of rows
	cells  []Cell // row-major cell arena
}

// NewGrid allocates a width x height grid with every wall standing.
func NewGrid(width, height int) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = closedCell()
	}

	return &Maze{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBound reports whether (row, col) lies inside the maze.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

func (m *Maze) index(pos CellPosition) int {
	return pos.Row*m.width + pos.Col
}

// Cell returns a copy of the cell at pos.
func (m *Maze) Cell(pos CellPosition) (Cell, error) {
	if !m.InBound(pos.Row, pos.Col) {
		return Cell{}, ErrOutOfBounds
	}
	return m.cells[m.index(pos)], nil
}

// WallState returns the wall flags of the cell at (col, row).
func (m *Maze) WallState(col, row int) (Walls, error) {
	cell, err := m.Cell(CellPosition{Row: row, Col: col})
	if err != nil {
		return Walls{}, err
	}
	return cell.Walls(), nil
}

// HasWall reports whether the cell at pos has a wall on the dir side.
// Positions outside the maze are treated as fully walled.
func (m *Maze) HasWall(pos CellPosition, dir string) bool {
	cell, err := m.Cell(pos)
	if err != nil {
		return true
	}

	switch dir {
	case North:
		return cell.NorthWall
	case South:
		return cell.SouthWall
	case East:
		return cell.EastWall
	case West:
		return cell.WestWall
	default:
		return true
	}
}

// unvisitedNeighbors finds every move from pos to an in-bound cell not yet in visited.
func (m *Maze) unvisitedNeighbors(pos CellPosition, visited map[CellPosition]struct{}) []Move {
	var result []Move
	for _, dir := range directionOrder {
		neighbor := pos.Step(dir)
		if !m.InBound(neighbor.Row, neighbor.Col) {
			continue
		}
		if _, seen := visited[neighbor]; seen {
			continue
		}
		result = append(result, Move{From: pos, To: neighbor, Direction: dir})
	}
	return result
}

// openWall removes the wall pair between two adjacent cells.
// Callers must only pass moves built by unvisitedNeighbors; anything else is a defect.
func (m *Maze) openWall(move Move) {
	if !m.InBound(move.From.Row, move.From.Col) || !m.InBound(move.To.Row, move.To.Col) ||
		move.From.Step(move.Direction) != move.To {
		panic(fmt.Errorf("%w: %+v", ErrNotAdjacent, move))
	}

	from := &m.cells[m.index(move.From)]
	to := &m.cells[m.index(move.To)]
	switch move.Direction {
	case North:
		from.NorthWall = false
		to.SouthWall = false
	case South:
		from.SouthWall = false
		to.NorthWall = false
	case East:
		from.EastWall = false
		to.WestWall = false
	case West:
		from.WestWall = false
		to.EastWall = false
	}
}

// OpenPassages counts the wall pairs that have been removed.
func (m *Maze) OpenPassages() int {
	open := 0
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			cell := m.cells[row*m.width+col]
			// Count each pair once, from its top or left cell.
			if !cell.SouthWall && row+1 < m.height {
				open++
			}
			if !cell.EastWall && col+1 < m.width {
				open++
			}
		}
	}
	return open
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(nil)
}

// Render draws the maze as ASCII, placing marks[pos] in the middle of marked cells.
func (m *Maze) Render(marks map[CellPosition]byte) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < m.width; col++ {
		if m.cells[col].NorthWall {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		if m.cells[row*m.width].WestWall {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < m.width; col++ {
			cell := m.cells[row*m.width+col]
			if mark, ok := marks[CellPosition{Row: row, Col: col}]; ok {
				output.WriteString(" " + string(mark) + " ")
			} else {
				output.WriteString("   ")
			}

			if cell.EastWall {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.width; col++ {
			if m.cells[row*m.width+col].SouthWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
