package rest

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

// InputPayload is the request body of the execute move endpoint.
type InputPayload struct {
	Move              int      `json:"move"`
	AzurePlayerSymbol string   `json:"azurePlayerSymbol"`
	HumanPlayerSymbol string   `json:"humanPlayerSymbol"`
	GameBoard         []string `json:"gameBoard"`
	Message           string   `json:"message"`
}

// OutputPayload is the response body of the execute move endpoint. Move and WinPositions are null
// when there is nothing to report.
type OutputPayload struct {
	Move              *int     `json:"move"`
	AzurePlayerSymbol string   `json:"azurePlayerSymbol"`
	HumanPlayerSymbol string   `json:"humanPlayerSymbol"`
	Winner            string   `json:"winner"`
	WinPositions      []string `json:"winPositions"`
	GameBoard         []string `json:"gameBoard"`
	Message           string   `json:"message"`
}

func (that *InputPayload) ToRequest(strategy string) *usecase.MoveRequest {
	return &usecase.MoveRequest{
		Board:       that.GameBoard,
		AISymbol:    that.AzurePlayerSymbol,
		HumanSymbol: that.HumanPlayerSymbol,
		Strategy:    strategy,
	}
}

func NewOutputPayload(resp *usecase.MoveResponse) *OutputPayload {
	return &OutputPayload{
		Move:              resp.Move,
		AzurePlayerSymbol: resp.AI.String(),
		HumanPlayerSymbol: resp.Human.String(),
		Winner:            resp.Status.WinnerString(),
		WinPositions:      resp.Status.PositionStrings(),
		GameBoard:         resp.Board.Strings(),
		Message:           fmt.Sprintf("azure player: %s, human: %s", resp.AI, resp.Human),
	}
}
