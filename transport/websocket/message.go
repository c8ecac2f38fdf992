package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/transport/rest"
)

const (
	actionMove  = "game:move"
	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload is the payload of a game:move request: the REST body plus an optional strategy.
type MovePayload struct {
	rest.InputPayload
	Strategy string `json:"strategy,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadBytes}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, message string) error {
	return that.sendMessage(conn, action, ErrorPayload{Error: message})
}
