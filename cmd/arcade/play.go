package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/penguin-arcade/internal/config"
	"github.com/vovakirdan/penguin-arcade/internal/core"
	"github.com/vovakirdan/penguin-arcade/internal/games/shooter"
	"github.com/vovakirdan/penguin-arcade/internal/platform/tui"
	"github.com/vovakirdan/penguin-arcade/internal/registry"
	"github.com/vovakirdan/penguin-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: shooter).

Controls:
  Left/A, Right/D  - Steer the shooter
  Down/S           - Stop steering
  Space/Up/W       - Shoot
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More shots and fewer rows
  normal - Default settings
  hard   - Fewer shots and faster bubbles
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play
  arcade play shooter --difficulty hard
  arcade play --config ./my-shooter.yaml
  arcade play --log-file /tmp/arcade.log -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	switch flagDifficulty {
	case "", "easy", "normal", "hard", "fixed":
	default:
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	// The game falls back to defaults on a bad config; report it up front instead.
	if _, err := config.LoadShooter(flagConfig); err != nil {
		return err
	}
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works, scores are just not kept.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("play", "game", gameID, "size", fmt.Sprintf("%dx%d", width, height),
		"fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
