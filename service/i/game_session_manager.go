package i

import (
	"github.com/beka-birhanu/vinom-runner/game"
	"github.com/google/uuid"
)

// GameSessionManager creates maze sessions and routes player requests to them.
type GameSessionManager interface {
	// NewSession starts a maze session and returns its ID.
	NewSession() (uuid.UUID, game.Snapshot, error)

	// Move forwards a move request to the session.
	Move(id uuid.UUID, d game.Direction) (game.MoveResult, game.Snapshot, error)

	// State returns the current state of the session.
	State(id uuid.UUID) (game.Snapshot, error)

	// Render returns the ASCII board of the session.
	Render(id uuid.UUID) (string, error)

	// End removes the session.
	End(id uuid.UUID) error
}
