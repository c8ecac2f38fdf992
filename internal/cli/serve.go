package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-ai/internal"
)

// tictactoe serve
func Serve() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket servers",
		Long: heredoc.Doc(`serve starts the REST API on the configured http-port and the
			WebSocket API on socket-port. Both answer with the AI's move for
			the posted board.

			When redis.enabled is set, search results are cached in Redis.
			The servers shut down on SIGINT or SIGTERM.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := initConfig(cmd)
			if err != nil {
				return err
			}

			if err = app.RunApp(initLogger(conf, os.Stdout), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}
}
