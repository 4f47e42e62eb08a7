package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-bot/internal/solver"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(logger, service.NewBotService(solver.WithRandom(func(int) int { return 0 })))
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	return rec
}

func TestServer_Ping(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestBotHandler_Move(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCell   int
	}{
		{
			name:       "Hard bot blocks",
			body:       map[string]any{"board": []string{"X", "X", "", "O", "", "", "", "", ""}, "difficulty": "hard"},
			wantStatus: http.StatusOK,
			wantCell:   2,
		},
		{
			name:       "Medium bot takes the win",
			body:       map[string]any{"board": []string{"X", "X", "", "O", "O", "", "X", "", ""}, "difficulty": "medium"},
			wantStatus: http.StatusOK,
			wantCell:   5,
		},
		{
			name:       "Bot playing X with lowercase marks",
			body:       map[string]any{"board": []string{"", "", "", "", "", "", "", "", ""}, "difficulty": "easy", "bot": "x"},
			wantStatus: http.StatusOK,
			wantCell:   0,
		},
		{
			name:       "Missing board",
			body:       map[string]any{"difficulty": "hard"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Short board",
			body:       map[string]any{"board": []string{"X", "O"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown mark",
			body:       map[string]any{"board": []string{"Z", "", "", "", "", "", "", "", ""}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown bot mark",
			body:       map[string]any{"board": []string{"", "", "", "", "", "", "", "", ""}, "bot": "-"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Full drawn board",
			body:       map[string]any{"board": []string{"X", "O", "X", "X", "O", "O", "O", "X", "X"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Decided board",
			body:       map[string]any{"board": []string{"X", "X", "X", "O", "O", "", "", "", ""}},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/api/v1/move", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus != http.StatusOK {
				var errResp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp["error"])
				return
			}

			var resp moveResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCell, resp.Cell)
		})
	}
}

func TestBotHandler_Evaluate(t *testing.T) {
	srv := newTestServer()

	t.Run("Empty board is a draw", func(t *testing.T) {
		body := map[string]any{"board": []string{"", "", "", "", "", "", "", "", ""}, "bot": "X"}

		rec := doJSON(t, srv, http.MethodPost, "/api/v1/evaluate", body)

		require.Equal(t, http.StatusOK, rec.Code)

		var move solver.Move
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &move))
		assert.Equal(t, solver.Move{Cell: 0, Score: solver.DrawScore}, move)
	})

	t.Run("Human to move on a lost position", func(t *testing.T) {
		body := map[string]any{
			"board":   []string{"O", "O", "", "X", "X", "", "", "", ""},
			"bot":     "O",
			"to_move": "X",
		}

		rec := doJSON(t, srv, http.MethodPost, "/api/v1/evaluate", body)

		require.Equal(t, http.StatusOK, rec.Code)

		var move solver.Move
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &move))
		assert.Equal(t, solver.LossScore, move.Score)
	})

	t.Run("Terminal board", func(t *testing.T) {
		body := map[string]any{"board": []string{"X", "X", "X", "O", "O", "", "", "", ""}}

		rec := doJSON(t, srv, http.MethodPost, "/api/v1/evaluate", body)

		require.Equal(t, http.StatusOK, rec.Code)

		var move solver.Move
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &move))
		assert.Equal(t, solver.Move{Cell: solver.NoMove, Score: solver.LossScore}, move)
	})

	t.Run("Invalid side to move", func(t *testing.T) {
		body := map[string]any{"board": []string{"", "", "", "", "", "", "", "", ""}, "to_move": "Q"}

		rec := doJSON(t, srv, http.MethodPost, "/api/v1/evaluate", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
