package service

import (
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-runner/game"
	"github.com/beka-birhanu/vinom-runner/game/maze"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, seed int64) *GameSessionManager {
	t.Helper()
	logger, _ := test.NewNullLogger()
	gsm, err := NewGameSessionManager(&Config{
		Cols:   7,
		Rows:   10,
		Seed:   seed,
		TTL:    time.Hour,
		Logger: logrus.NewEntry(logger),
	})
	require.NoError(t, err)
	return gsm
}

func TestGameSessionManager(t *testing.T) {
	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := NewGameSessionManager(&Config{Cols: 0, Rows: 10})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)

		_, err = NewGameSessionManager(&Config{Cols: 1, Rows: 1})
		assert.ErrorIs(t, err, game.ErrNotBigEnoughDimension)

		_, err = NewGameSessionManager(&Config{Cols: maze.MaxDimension + 1, Rows: 2})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("new session starts at the start cell", func(t *testing.T) {
		gsm := newTestManager(t, 1)
		id, snap, err := gsm.NewSession()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, maze.CellPosition{}, snap.Player)
		assert.Equal(t, maze.CellPosition{Row: 9, Col: 6}, snap.Exit)
		assert.Equal(t, 1, gsm.Count())
	})

	t.Run("move and state", func(t *testing.T) {
		gsm := newTestManager(t, 2)
		id, _, err := gsm.NewSession()
		require.NoError(t, err)

		res, snap, err := gsm.Move(id, game.Up)
		require.NoError(t, err)
		assert.False(t, res.Moved)
		assert.Equal(t, snap.Player, res.Player)

		state, err := gsm.State(id)
		require.NoError(t, err)
		assert.Equal(t, snap, state)

		board, err := gsm.Render(id)
		require.NoError(t, err)
		assert.Contains(t, board, " P ")
	})

	t.Run("unknown session", func(t *testing.T) {
		gsm := newTestManager(t, 3)
		_, _, err := gsm.Move(uuid.New(), game.Down)
		assert.ErrorIs(t, err, ErrNoSession)
		_, err = gsm.State(uuid.New())
		assert.ErrorIs(t, err, ErrNoSession)
		_, err = gsm.Render(uuid.New())
		assert.ErrorIs(t, err, ErrNoSession)
		assert.ErrorIs(t, gsm.End(uuid.New()), ErrNoSession)
	})

	t.Run("end removes the session", func(t *testing.T) {
		gsm := newTestManager(t, 4)
		id, _, err := gsm.NewSession()
		require.NoError(t, err)
		require.NoError(t, gsm.End(id))
		assert.Equal(t, 0, gsm.Count())
		_, err = gsm.State(id)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("seeded sessions are reproducible", func(t *testing.T) {
		a := newTestManager(t, 9)
		b := newTestManager(t, 9)
		_, sa, err := a.NewSession()
		require.NoError(t, err)
		_, sb, err := b.NewSession()
		require.NoError(t, err)
		assert.Equal(t, sa.Walls, sb.Walls)
	})
}

func TestSweep(t *testing.T) {
	gsm := newTestManager(t, 5)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	gsm.now = func() time.Time { return now }

	stale, _, err := gsm.NewSession()
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	fresh, _, err := gsm.NewSession()
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, gsm.Sweep())

	_, err = gsm.State(stale)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = gsm.State(fresh)
	assert.NoError(t, err)
}
