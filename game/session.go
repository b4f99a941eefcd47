package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/beka-birhanu/vinom-runner/game/maze"
	"github.com/sirupsen/logrus"
)

// Session-related errors.
var (
	ErrInvalidDirection      = errors.New("invalid direction")
	ErrNotBigEnoughDimension = errors.New("dimension is not big enough")
)

// Session constants.
const (
	DefaultCols = 7  // Default number of maze columns.
	DefaultRows = 10 // Default number of maze rows.

	minCells = 2 // A maze must hold a start and a distinct exit.
)

// Config holds the settings for creating a new Session.
type Config struct {
	Cols        int           // Number of maze columns.
	Rows        int           // Number of maze rows.
	Rand        *rand.Rand    // Random source for generation; seeded from the clock when nil.
	MazeFactory MazeFactory   // Maze builder; BacktrackerFactory when nil.
	Logger      *logrus.Entry // Session logger; the standard logger when nil.
}

// MoveResult describes the outcome of a move request.
type MoveResult struct {
	Moved       bool              `json:"moved"`       // The player changed cell.
	Regenerated bool              `json:"regenerated"` // The exit was reached and a new maze built.
	Player      maze.CellPosition `json:"player"`      // Player position after the request.
}

// Snapshot is a consistent copy of the session state for renderers.
type Snapshot struct {
	Cols       int               `json:"cols"`
	Rows       int               `json:"rows"`
	Player     maze.CellPosition `json:"player"`
	Start      maze.CellPosition `json:"start"`
	Exit       maze.CellPosition `json:"exit"`
	Generation int               `json:"generation"`
	Moves      int               `json:"moves"`
	Walls      [][]maze.Walls    `json:"walls"` // Indexed [row][col].
}

// Session tracks one player walking through a maze from the start to the exit.
// Reaching the exit replaces the maze with a fresh one and sends the player back to start.
type Session struct {
	cols, rows   int
	rng          *rand.Rand
	factory      MazeFactory
	logger       *logrus.Entry
	maze         Maze              // Current maze.
	player       maze.CellPosition // Current player cell.
	start        maze.CellPosition // Fixed start cell.
	exit         maze.CellPosition // Fixed exit cell.
	generation   int               // Number of mazes built so far.
	moves        int               // Accepted moves in the current maze.
	sync.RWMutex                   // Serializes move-then-regenerate against other requests.
}

// ValidateDimensions reports whether a cols x rows maze can back a session.
func ValidateDimensions(cols, rows int) error {
	if min(cols, rows) <= 0 || max(cols, rows) > maze.MaxDimension {
		return fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, cols, rows)
	}
	if cols*rows < minCells {
		return fmt.Errorf("%w: %dx%d", ErrNotBigEnoughDimension, cols, rows)
	}
	return nil
}

// NewSession validates c and builds the first maze.
func NewSession(c Config) (*Session, error) {
	if err := ValidateDimensions(c.Cols, c.Rows); err != nil {
		return nil, err
	}

	s := &Session{
		cols:    c.Cols,
		rows:    c.Rows,
		rng:     c.Rand,
		factory: c.MazeFactory,
		logger:  c.Logger,
		start:   maze.CellPosition{Row: 0, Col: 0},
		exit:    maze.CellPosition{Row: c.Rows - 1, Col: c.Cols - 1},
	}
	if s.rng == nil {
		s.rng = maze.NewRand(0)
	}
	if s.factory == nil {
		s.factory = BacktrackerFactory
	}
	if s.logger == nil {
		s.logger = logrus.NewEntry(logrus.StandardLogger())
	}

	if err := s.regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// regenerate swaps in a new maze and resets the player. Callers hold the lock.
func (s *Session) regenerate() error {
	m, err := s.factory(s.cols, s.rows, s.rng)
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}
	if m.Width() != s.cols || m.Height() != s.rows {
		return fmt.Errorf("%w: factory built %dx%d, want %dx%d",
			maze.ErrInvalidDimensions, m.Width(), m.Height(), s.cols, s.rows)
	}

	s.maze = m
	s.player = s.start
	s.moves = 0
	s.generation++
	s.logger.WithField("generation", s.generation).Info("maze generated")
	return nil
}

// RequestMove moves the player one cell in d unless a wall blocks the way.
// A blocked move leaves the state untouched and is not an error.
func (s *Session) RequestMove(d Direction) MoveResult {
	s.Lock()
	defer s.Unlock()

	dir := d.grid()
	if dir == "" || s.maze.HasWall(s.player, dir) {
		s.logger.WithFields(logrus.Fields{
			"direction": d.String(),
			"row":       s.player.Row,
			"col":       s.player.Col,
		}).Debug("move rejected")
		return MoveResult{Player: s.player}
	}

	s.player = s.player.Step(dir)
	s.moves++
	result := MoveResult{Moved: true, Player: s.player}

	if s.player == s.exit {
		s.logger.WithField("moves", s.moves).Info("exit reached")
		if err := s.regenerate(); err != nil {
			// The factory succeeded for these dimensions once already.
			panic(err)
		}
		result.Regenerated = true
		result.Player = s.player
	}

	return result
}

// Cols returns the number of maze columns.
func (s *Session) Cols() int {
	return s.cols
}

// Rows returns the number of maze rows.
func (s *Session) Rows() int {
	return s.rows
}

// Start returns the start cell.
func (s *Session) Start() maze.CellPosition {
	return s.start
}

// Exit returns the exit cell.
func (s *Session) Exit() maze.CellPosition {
	return s.exit
}

// Player returns the current player cell.
func (s *Session) Player() maze.CellPosition {
	s.RLock()
	defer s.RUnlock()
	return s.player
}

// Generation returns how many mazes have been built in this session.
func (s *Session) Generation() int {
	s.RLock()
	defer s.RUnlock()
	return s.generation
}

// Moves returns the number of accepted moves in the current maze.
func (s *Session) Moves() int {
	s.RLock()
	defer s.RUnlock()
	return s.moves
}

// WallState returns the wall flags of the cell at (col, row) in the current maze.
func (s *Session) WallState(col, row int) (maze.Walls, error) {
	s.RLock()
	defer s.RUnlock()
	return s.maze.WallState(col, row)
}

// Snapshot copies the public state under one read lock.
func (s *Session) Snapshot() Snapshot {
	s.RLock()
	defer s.RUnlock()

	walls := make([][]maze.Walls, s.rows)
	for row := range walls {
		walls[row] = make([]maze.Walls, s.cols)
		for col := range walls[row] {
			w, err := s.maze.WallState(col, row)
			if err != nil {
				// Loop bounds match the maze dimensions checked in regenerate.
				panic(err)
			}
			walls[row][col] = w
		}
	}

	return Snapshot{
		Cols:       s.cols,
		Rows:       s.rows,
		Player:     s.player,
		Start:      s.start,
		Exit:       s.exit,
		Generation: s.generation,
		Moves:      s.moves,
		Walls:      walls,
	}
}

// String renders the current maze with the player as P and the exit as E.
func (s *Session) String() string {
	s.RLock()
	defer s.RUnlock()
	return s.maze.Render(map[maze.CellPosition]byte{s.exit: 'E', s.player: 'P'})
}
