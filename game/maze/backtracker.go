package maze

import (
	"math/rand"
	"time"
)

// NewRand returns a random source seeded with seed, or with the clock when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// New initializes a new maze of the given dimensions and carves its layout with rng.
func New(width, height int, rng *rand.Rand) (*Maze, error) {
	m, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	m.Carve(rng)
	return m, nil
}

// Carve turns a fully walled grid into a perfect maze using a randomized depth-first
// backtracker rooted at (0,0). It returns the order in which cells were first visited.
func (m *Maze) Carve(rng *rand.Rand) []CellPosition {
	current := CellPosition{Row: 0, Col: 0}
	visited := map[CellPosition]struct{}{current: {}}
	order := make([]CellPosition, 0, m.width*m.height)
	order = append(order, current)

	var stack []CellPosition
	for {
		candidates := m.unvisitedNeighbors(current, visited)
		if len(candidates) > 0 {
			move := pick(rng, candidates)
			m.openWall(move)
			stack = append(stack, current)
			visited[move.To] = struct{}{}
			order = append(order, move.To)
			current = move.To
			continue
		}

		if len(stack) == 0 {
			break
		}
		current = pop(&stack)
	}

	return order
}

// pick selects one move uniformly at random. An empty slice is a generator defect.
func pick(rng *rand.Rand, moves []Move) Move {
	if len(moves) == 0 {
		panic("maze: selecting a neighbour from an empty candidate set")
	}
	return moves[rng.Intn(len(moves))]
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
