package cli

import (
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-ai/transport/rest"
)

// tictactoe move
func Move() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move --board B",
		Short: "Print the AI's move for a board",
		Long: heredoc.Doc(`move runs a single search and prints the result in the same
			JSON form the REST API answers with.

			The board is given either as nine comma separated tokens
			("X,O,?,?,?,?,?,?,?") or as nine characters ("XO???????"),
			where "?" marks an empty cell.`),
		Example: heredoc.Doc(`
			$ tictactoe move --board "X????????" --ai O --human X
			$ tictactoe move --board "?????????" --strategy minimax`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			rawBoard, _ := cmd.Flags().GetString("board")
			ai, _ := cmd.Flags().GetString("ai")
			human, _ := cmd.Flags().GetString("human")
			strategy, _ := cmd.Flags().GetString("strategy")

			board, err := entity.ParseBoardString(rawBoard)
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			moves, err := initMoveUseCase(cmd)
			if err != nil {
				return err
			}

			resp, err := moves.ExecuteMove(cmd.Context(), &usecase.MoveRequest{
				Board:       board.Strings(),
				AISymbol:    ai,
				HumanSymbol: human,
				Strategy:    strategy,
			})
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(rest.NewOutputPayload(resp))
		},
	}

	cmd.Flags().StringP("board", "b", "", "Board to move on")
	cmd.Flags().String("ai", entity.TokenX, "Mark played by the AI")
	cmd.Flags().String("human", entity.TokenO, "Mark played by the human")
	cmd.Flags().StringP("strategy", "s", "", "Search strategy: minimax or alphabeta (default from config)")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}
