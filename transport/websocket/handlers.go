package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/transport/rest"
)

func (that *Server) handleMove(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMove")

	var payloadReq MovePayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		log.Info("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "invalid payload")
	}

	resp, err := that.moves.ExecuteMove(ctx, payloadReq.ToRequest(payloadReq.Strategy))
	if err != nil {
		if apperror.IsClientError(err) {
			log.Info("rejected move request", "error", err)
			return that.sendErrorResponse(conn, msg.Action, err.Error())
		}

		log.Error("failed to execute move", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to execute move")
	}

	if err = that.sendMessage(conn, msg.Action, rest.NewOutputPayload(resp)); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}
