package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

const configName = "config.yml"

// configPath - the --config flag, then ./config.yml, then $XDG_CONFIG_HOME/tictactoe/config.yml.
// An empty path means the configuration comes from the environment only.
func configPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	if path := filepath.Join(baseDir, configName); fileExists(path) {
		return path, nil
	}

	if path, err := xdg.SearchConfigFile(filepath.Join("tictactoe", configName)); err == nil {
		return path, nil
	}

	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// initialize config.
func initConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}

	return config.Load(path)
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

// initMoveUseCase - a cache-less use case for one-shot commands. Logs go to stderr so stdout stays clean.
func initMoveUseCase(cmd *cobra.Command) (*usecase.MoveUseCase, error) {
	conf, err := initConfig(cmd)
	if err != nil {
		return nil, err
	}

	strategy, err := tictactoe.ParseStrategy(conf.Search.Strategy)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return usecase.NewMoveUseCase(initLogger(conf, cmd.ErrOrStderr()), strategy, nil)
}
