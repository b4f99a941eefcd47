// Package gameapi exposes maze sessions over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/vinom-runner/game"
	"github.com/google/uuid"
)

// MoveRequest asks to move the player one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// DragRequest carries a pointer drag measured from the centre of the player's cell.
type DragRequest struct {
	DX       float64 `json:"dx"`
	DY       float64 `json:"dy"`
	CellSize float64 `json:"cell_size" binding:"required,gt=0"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID    uuid.UUID     `json:"id"`
	Token string        `json:"token"`
	State game.Snapshot `json:"state"`
}

// MoveResponse reports a move outcome together with the resulting state.
type MoveResponse struct {
	Result game.MoveResult `json:"result"`
	State  game.Snapshot   `json:"state"`
}
