package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Perfect-play tic-tac-toe engine",
		Long: heredoc.Doc(`tictactoe computes the optimal move for the AI player on a
			3x3 board using an exhaustive minimax search, with or without
			alpha-beta pruning.

			Run it as a server with "serve", or ask for a single move with
			"move". "selfplay" lets the engine play both sides.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", "", "Path to the config file")

	root.AddCommand(Serve())
	root.AddCommand(Move())
	root.AddCommand(SelfPlay())

	return root
}
