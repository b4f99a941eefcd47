package gameapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-runner/api/identity"
	"github.com/beka-birhanu/vinom-runner/game"
	"github.com/beka-birhanu/vinom-runner/service"
	"github.com/beka-birhanu/vinom-runner/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionController manages maze session routes.
type SessionController struct {
	gameSessionManager i.GameSessionManager
	tokenizer          i.Tokenizer
	tokenTTL           time.Duration
}

// NewSessionController initializes a SessionController.
func NewSessionController(gsm i.GameSessionManager, t i.Tokenizer, tokenTTL time.Duration) (*SessionController, error) {
	if gsm == nil || t == nil {
		return nil, errors.New("session controller needs a session manager and a tokenizer")
	}
	return &SessionController{
		gameSessionManager: gsm,
		tokenizer:          t,
		tokenTTL:           tokenTTL,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SessionController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/sessions", sc.create)
}

// RegisterProtected registers protected routes.
func (sc *SessionController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.GET("/state", sc.state)
		sessions.GET("/render", sc.render)
		sessions.POST("/moves", sc.move)
		sessions.POST("/drags", sc.drag)
		sessions.DELETE("", sc.end)
	}
}

// create starts a session and hands back a token bound to it.
func (sc *SessionController) create(ctx *gin.Context) {
	id, snapshot, err := sc.gameSessionManager.NewSession()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating session"})
		return
	}

	token, err := sc.tokenizer.Generate(map[string]interface{}{identity.SessionIDClaim: id.String()}, sc.tokenTTL)
	if err != nil {
		_ = sc.gameSessionManager.End(id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating session"})
		return
	}

	ctx.JSON(http.StatusCreated, &SessionResponse{ID: id, Token: token, State: snapshot})
}

// state returns the session snapshot.
func (sc *SessionController) state(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	snapshot, err := sc.gameSessionManager.State(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

// render returns the ASCII board.
func (sc *SessionController) render(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	board, err := sc.gameSessionManager.Render(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, board)
}

// move handles a directional move request.
func (sc *SessionController) move(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	direction, err := game.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sc.applyMove(ctx, id, direction)
}

// drag translates a pointer drag into a move request.
func (sc *SessionController) drag(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request DragRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	direction, ok := game.DirectionFromDrag(request.DX, request.DY, request.CellSize)
	if !ok {
		ctx.Status(http.StatusNoContent)
		return
	}

	sc.applyMove(ctx, id, direction)
}

func (sc *SessionController) applyMove(ctx *gin.Context, id uuid.UUID, d game.Direction) {
	result, snapshot, err := sc.gameSessionManager.Move(id, d)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &MoveResponse{Result: result, State: snapshot})
}

// end removes the session.
func (sc *SessionController) end(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := sc.gameSessionManager.End(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := identity.SessionID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
	return id, ok
}

func writeError(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrNoSession) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
