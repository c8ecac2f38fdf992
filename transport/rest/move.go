package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

type moveUseCase interface {
	ExecuteMove(ctx context.Context, req *usecase.MoveRequest) (*usecase.MoveResponse, error)
}

type MoveHandler interface {
	ExecuteMove(ctx echo.Context) error
}

type moveHandler struct {
	logger *slog.Logger

	moves moveUseCase
}

func NewMoveHandler(logger *slog.Logger, moves moveUseCase) MoveHandler {
	return &moveHandler{
		logger: logger,
		moves:  moves,
	}
}

// ExecuteMove - answers a board with the AI's move. Client errors are answered with a bare 400 body.
func (that *moveHandler) ExecuteMove(ctx echo.Context) error {
	log := that.logger.With("method", "ExecuteMove")

	var input InputPayload
	if err := ctx.Bind(&input); err != nil {
		log.Info("failed to bind payload", "error", err)
		return ctx.JSON(http.StatusBadRequest, http.StatusBadRequest)
	}

	resp, err := that.moves.ExecuteMove(ctx.Request().Context(), input.ToRequest(ctx.QueryParam("strategy")))
	if err != nil {
		if apperror.IsClientError(err) {
			log.Info("rejected move request", "error", err)
			return ctx.JSON(http.StatusBadRequest, http.StatusBadRequest)
		}

		log.Error("failed to execute move", "error", err)
		return ctx.String(http.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(http.StatusOK, NewOutputPayload(resp))
}
