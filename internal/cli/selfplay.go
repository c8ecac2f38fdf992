package cli

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const spinnerCharSet = 14

// tictactoe selfplay
func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play both sides",
		Long: heredoc.Doc(`selfplay plays optimal moves for X and O in turn until the game
			ends, printing every position on the way. Starting from the
			empty board, perfect play always ends in a tie.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			rawBoard, _ := cmd.Flags().GetString("board")
			strategy, _ := cmd.Flags().GetString("strategy")

			var board entity.Board
			if rawBoard != "" {
				var err error
				if board, err = entity.ParseBoardString(rawBoard); err != nil {
					return fmt.Errorf("failed to parse board: %w", err)
				}
			}

			moves, err := initMoveUseCase(cmd)
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = " searching"

			s.Start()
			positions, status, err := moves.SelfPlay(cmd.Context(), board, strategy)
			s.Stop()

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, position := range positions {
				fmt.Fprintf(out, "position %d:\n%s\n", i, position)
			}

			fmt.Fprintf(out, "result: %s\n", status.WinnerString())

			return nil
		},
	}

	cmd.Flags().StringP("board", "b", "", "Starting board (default empty)")
	cmd.Flags().StringP("strategy", "s", "", "Search strategy: minimax or alphabeta (default from config)")

	return cmd
}
