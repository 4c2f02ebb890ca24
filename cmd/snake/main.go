// snake is a terminal snake game.
//
// Usage:
//
//	snake
//
// Steer with WASD, the arrow keys or hjkl; q quits. Settings are read from
// $SNAKE_CONFIG, ~/.snake/config.yaml or ./configs/snake.yaml.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around the board",
	Long: `Snake is a terminal game. Eat items to grow and score; hitting a
wall or your own body ends the game.

Controls:
  W/Up/K     - Up
  S/Down/J   - Down
  A/Left/H   - Left
  D/Right/L  - Right
  Q/Ctrl+C   - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	logger, closeLog, logErr := logging.Open(cfg.Log)
	defer closeLog() //nolint:errcheck // Best-effort close of the log file
	if logErr != nil {
		// Continue without logging - the game still works
		fmt.Fprintf(os.Stderr, "Warning: %v\n", logErr)
	}
	logger = logger.With("session", uuid.NewString())

	// Get terminal size; Bubble Tea sends the real size once running
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = cfg.FPS

	res, err := tui.Run(rc, tui.ThemeFromConfig(cfg.Theme), logger)
	if err != nil {
		logger.Error("game aborted", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}

	logger.Info("session ended", "score", res.Score, "quit", res.Quit, "cause", res.Cause)
	return nil
}
