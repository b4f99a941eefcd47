package gameapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-runner/api"
	apii "github.com/beka-birhanu/vinom-runner/api/i"
	"github.com/beka-birhanu/vinom-runner/api/identity"
	"github.com/beka-birhanu/vinom-runner/game"
	"github.com/beka-birhanu/vinom-runner/game/maze"
	"github.com/beka-birhanu/vinom-runner/infrastruture/token"
	"github.com/beka-birhanu/vinom-runner/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := test.NewNullLogger()
	gsm, err := service.NewGameSessionManager(&service.Config{
		Cols:   7,
		Rows:   10,
		Seed:   21,
		Logger: logrus.NewEntry(logger),
	})
	require.NoError(t, err)

	tokenizer := token.NewJwtService("test-secret", "test-issuer")
	controller, err := NewSessionController(gsm, tokenizer, time.Hour)
	require.NoError(t, err)

	return api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []apii.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	}).Engine()
}

func do(engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, engine *gin.Engine) SessionResponse {
	t.Helper()
	rec := do(engine, http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSessionRoutes(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("create", func(t *testing.T) {
		resp := createSession(t, engine)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, 7, resp.State.Cols)
		assert.Equal(t, 10, resp.State.Rows)
		assert.Equal(t, maze.CellPosition{}, resp.State.Player)
		assert.Equal(t, maze.CellPosition{Row: 9, Col: 6}, resp.State.Exit)
		assert.Len(t, resp.State.Walls, 10)
	})

	t.Run("protected routes need a token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(engine, http.MethodGet, "/api/v1/sessions/state", "", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, do(engine, http.MethodGet, "/api/v1/sessions/state", "garbage", nil).Code)
	})

	t.Run("state and render", func(t *testing.T) {
		resp := createSession(t, engine)

		rec := do(engine, http.MethodGet, "/api/v1/sessions/state", resp.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var snap game.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, resp.State, snap)

		rec = do(engine, http.MethodGet, "/api/v1/sessions/render", resp.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), " P ")
		assert.Contains(t, rec.Body.String(), " E ")
	})

	t.Run("move into boundary wall is rejected", func(t *testing.T) {
		resp := createSession(t, engine)

		rec := do(engine, http.MethodPost, "/api/v1/sessions/moves", resp.Token, MoveRequest{Direction: "up"})
		require.Equal(t, http.StatusOK, rec.Code)
		var moved MoveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
		assert.False(t, moved.Result.Moved)
		assert.Equal(t, maze.CellPosition{}, moved.State.Player)
	})

	t.Run("move through open wall", func(t *testing.T) {
		resp := createSession(t, engine)
		start := resp.State.Walls[0][0]

		direction, want := "right", maze.CellPosition{Row: 0, Col: 1}
		if start.Right {
			direction, want = "down", maze.CellPosition{Row: 1, Col: 0}
		}
		rec := do(engine, http.MethodPost, "/api/v1/sessions/moves", resp.Token, MoveRequest{Direction: direction})
		require.Equal(t, http.StatusOK, rec.Code)
		var moved MoveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
		assert.True(t, moved.Result.Moved)
		assert.Equal(t, want, moved.State.Player)
		assert.Equal(t, 1, moved.State.Moves)
	})

	t.Run("invalid direction", func(t *testing.T) {
		resp := createSession(t, engine)
		rec := do(engine, http.MethodPost, "/api/v1/sessions/moves", resp.Token, MoveRequest{Direction: "sideways"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("drag", func(t *testing.T) {
		resp := createSession(t, engine)

		rec := do(engine, http.MethodPost, "/api/v1/sessions/drags", resp.Token, DragRequest{DX: 5, DY: 5, CellSize: 40})
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(engine, http.MethodPost, "/api/v1/sessions/drags", resp.Token, DragRequest{DX: -90, DY: 0, CellSize: 40})
		require.Equal(t, http.StatusOK, rec.Code)
		var moved MoveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
		assert.False(t, moved.Result.Moved)

		rec = do(engine, http.MethodPost, "/api/v1/sessions/drags", resp.Token, map[string]float64{"dx": 90})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("end", func(t *testing.T) {
		resp := createSession(t, engine)
		assert.Equal(t, http.StatusNoContent, do(engine, http.MethodDelete, "/api/v1/sessions", resp.Token, nil).Code)
		assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/api/v1/sessions/state", resp.Token, nil).Code)
	})
}

func TestNewSessionControllerRequiresDependencies(t *testing.T) {
	_, err := NewSessionController(nil, nil, time.Hour)
	assert.Error(t, err)
}
