package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/tui-snake/internal/config"
	"github.com/arcadeworks/tui-snake/internal/core"
	"github.com/arcadeworks/tui-snake/internal/platform/tui"
	"github.com/arcadeworks/tui-snake/internal/snake"
)

func runPlay(cmd *cobra.Command, args []string) error {
	if flagDebug {
		if closeFn, err := setupDebugLog(); err == nil {
			defer closeFn()
		} else {
			log.Warn("debug logging unavailable", "err", err)
		}
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("snake needs an interactive terminal")
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("could not detect terminal size: %w", err)
	}
	if width < cfg.Board.MinScreenW || height < cfg.Board.MinScreenH {
		return fmt.Errorf("terminal is %dx%d, please resize to at least %dx%d characters",
			width, height, cfg.Board.MinScreenW, cfg.Board.MinScreenH)
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	game := snake.New(cfg)
	log.Debug("starting game", "game", game.Title(),
		"screen", fmt.Sprintf("%dx%d", width, height),
		"seed", rt.Seed, "interval_ms", cfg.Speed.NormalIntervalMs)

	if err := tui.Run(game, rt, cfg); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

// setupDebugLog redirects the default logger to a file at debug level.
// Returns a close function for the file.
func setupDebugLog() (func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".tui-snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	return func() { f.Close() }, nil
}
