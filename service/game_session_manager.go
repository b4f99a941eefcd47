package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-runner/game"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultSessionTTL = 24 * time.Hour
)

var (
	ErrNoSession = errors.New("no session")
)

type sessionEntry struct {
	session  *game.Session
	lastSeen time.Time
}

// GameSessionManager keeps the live maze sessions indexed by ID.
type GameSessionManager struct {
	sessions map[uuid.UUID]*sessionEntry
	cols     int
	rows     int
	seed     int64
	created  int64
	ttl      time.Duration
	now      func() time.Time
	logger   *logrus.Entry
	sync.RWMutex
}

// Config holds the settings for a GameSessionManager.
type Config struct {
	Cols   int           // Maze columns for every session.
	Rows   int           // Maze rows for every session.
	Seed   int64         // Base seed; zero seeds each session from the clock.
	TTL    time.Duration // Idle time after which a session is swept.
	Logger *logrus.Entry
}

// NewGameSessionManager validates the maze dimensions and returns an empty manager.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if err := game.ValidateDimensions(c.Cols, c.Rows); err != nil {
		return nil, err
	}

	gsm := &GameSessionManager{
		sessions: make(map[uuid.UUID]*sessionEntry),
		cols:     c.Cols,
		rows:     c.Rows,
		seed:     c.Seed,
		ttl:      c.TTL,
		now:      time.Now,
		logger:   c.Logger,
	}
	if gsm.ttl <= 0 {
		gsm.ttl = defaultSessionTTL
	}
	if gsm.logger == nil {
		gsm.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return gsm, nil
}

// NewSession starts a maze session and returns its ID and initial state.
func (g *GameSessionManager) NewSession() (uuid.UUID, game.Snapshot, error) {
	g.Lock()
	defer g.Unlock()

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	var rng *rand.Rand
	if g.seed != 0 {
		// Each session gets its own reproducible stream derived from the base seed.
		rng = rand.New(rand.NewSource(g.seed + g.created))
	}

	session, err := game.NewSession(game.Config{
		Cols:   g.cols,
		Rows:   g.rows,
		Rand:   rng,
		Logger: g.logger.WithField("session", sessionID.String()),
	})
	if err != nil {
		g.logger.WithError(err).Error("creating maze session")
		return uuid.Nil, game.Snapshot{}, err
	}

	g.created++
	g.sessions[sessionID] = &sessionEntry{session: session, lastSeen: g.now()}
	g.logger.WithField("session", sessionID.String()).Info("started new maze session")
	return sessionID, session.Snapshot(), nil
}

// lookup returns the session for id and marks it as used.
func (g *GameSessionManager) lookup(id uuid.UUID) (*game.Session, error) {
	g.Lock()
	defer g.Unlock()
	entry, ok := g.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	entry.lastSeen = g.now()
	return entry.session, nil
}

// Move forwards a move request to the session.
func (g *GameSessionManager) Move(id uuid.UUID, d game.Direction) (game.MoveResult, game.Snapshot, error) {
	session, err := g.lookup(id)
	if err != nil {
		return game.MoveResult{}, game.Snapshot{}, err
	}

	result := session.RequestMove(d)
	return result, session.Snapshot(), nil
}

// State returns the current state of the session.
func (g *GameSessionManager) State(id uuid.UUID) (game.Snapshot, error) {
	session, err := g.lookup(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// Render returns the ASCII board of the session.
func (g *GameSessionManager) Render(id uuid.UUID) (string, error) {
	session, err := g.lookup(id)
	if err != nil {
		return "", err
	}
	return session.String(), nil
}

// End removes the session.
func (g *GameSessionManager) End(id uuid.UUID) error {
	g.Lock()
	defer g.Unlock()
	if _, ok := g.sessions[id]; !ok {
		return ErrNoSession
	}
	delete(g.sessions, id)
	g.logger.WithField("session", id.String()).Info("ended maze session")
	return nil
}

// Count returns the number of live sessions.
func (g *GameSessionManager) Count() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many were removed.
func (g *GameSessionManager) Sweep() int {
	g.Lock()
	defer g.Unlock()

	cutoff := g.now().Add(-g.ttl)
	removed := 0
	for id, entry := range g.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(g.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		g.logger.WithField("removed", removed).Info("swept idle sessions")
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (g *GameSessionManager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Sweep()
		}
	}
}
