package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	moves, err := usecase.NewMoveUseCase(logger, tictactoe.StrategyAlphaBeta, nil)
	require.NoError(t, err)

	return New(logger, moves)
}

func postMove(t *testing.T, server *Server, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestExecuteMove(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: a board X already won
		server := newTestServer(t)
		body := `{"move":0,"azurePlayerSymbol":"O","humanPlayerSymbol":"X",
			"gameBoard":["X","O","O","X","?","?","X","?","?"],"message":"no message"}`

		// When: posting it
		rec := postMove(t, server, "/api/v1/ttt/executemove", body)

		// Then: the response should report X and the winning line without a move
		require.Equal(t, http.StatusOK, rec.Code)

		var output OutputPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
		assert.Nil(t, output.Move)
		assert.Equal(t, "X", output.Winner)
		assert.Equal(t, []string{"0", "3", "6"}, output.WinPositions)
		assert.Equal(t, []string{"X", "O", "O", "X", "?", "?", "X", "?", "?"}, output.GameBoard)
		assert.Equal(t, "O", output.AzurePlayerSymbol)
		assert.Equal(t, "X", output.HumanPlayerSymbol)
		assert.Equal(t, "azure player: O, human: X", output.Message)
	})

	t.Run("Tie keeps null fields on the wire", func(t *testing.T) {
		server := newTestServer(t)
		body := `{"azurePlayerSymbol":"X","humanPlayerSymbol":"O","gameBoard":["X","O","X","X","O","X","O","X","O"]}`

		rec := postMove(t, server, "/api/v1/ttt/executemove", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"move":null`)
		assert.Contains(t, rec.Body.String(), `"winPositions":null`)
		assert.Contains(t, rec.Body.String(), `"winner":"tie"`)
	})

	t.Run("AI moves on an open board", func(t *testing.T) {
		// Given: an empty board with the AI playing X
		server := newTestServer(t)
		body := `{"azurePlayerSymbol":"X","humanPlayerSymbol":"O","gameBoard":["?","?","?","?","?","?","?","?","?"]}`

		// When: posting it with the plain minimax strategy
		rec := postMove(t, server, "/api/v1/ttt/executemove?strategy=minimax", body)

		// Then: X should be placed on the first cell
		require.Equal(t, http.StatusOK, rec.Code)

		var output OutputPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
		require.NotNil(t, output.Move)
		assert.Equal(t, 0, *output.Move)
		assert.Equal(t, "inconclusive", output.Winner)
		assert.Equal(t, "X", output.GameBoard[0])
	})

	t.Run("Bad requests", func(t *testing.T) {
		tests := map[string]struct {
			target string
			body   string
		}{
			"invalid marker": {
				"/api/v1/ttt/executemove",
				`{"azurePlayerSymbol":"X","humanPlayerSymbol":"O","gameBoard":["!","O","?","?","?","?","?","?","?"]}`,
			},
			"both players X": {
				"/api/v1/ttt/executemove",
				`{"azurePlayerSymbol":"X","humanPlayerSymbol":"X","gameBoard":["X","O","?","?","?","?","?","?","?"]}`,
			},
			"too many O": {
				"/api/v1/ttt/executemove",
				`{"azurePlayerSymbol":"X","humanPlayerSymbol":"O","gameBoard":["O","O","?","?","?","?","?","?","?"]}`,
			},
			"short board": {
				"/api/v1/ttt/executemove",
				`{"azurePlayerSymbol":"X","humanPlayerSymbol":"O","gameBoard":["?","?"]}`,
			},
			"unknown strategy": {
				"/api/v1/ttt/executemove?strategy=random",
				`{"azurePlayerSymbol":"X","humanPlayerSymbol":"O","gameBoard":["?","?","?","?","?","?","?","?","?"]}`,
			},
			"malformed json": {
				"/api/v1/ttt/executemove",
				`{"gameBoard":`,
			},
		}

		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				server := newTestServer(t)

				rec := postMove(t, server, tt.target, tt.body)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "400", strings.TrimSpace(rec.Body.String()))
			})
		}
	})
}
