package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/session"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Default controls (see 'shooter config' for the full list):
  Left/Right, A/D  - Move
  Space            - Fire
  1-4 or X/C/V/B   - Basic, double, targeting, laser
  G                - God mode
  Esc              - Debug overlay
  R                - Restart
  Q/Ctrl+C         - Quit

The terminal belongs to the game while it runs, so logs are discarded
unless --log-file is given.

Examples:
  shooter play
  shooter play --seed 7
  shooter play --log-file shooter.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	s, err := playGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e := s.Engine()
	if e.GameOver() {
		fmt.Printf("Game over! Final score: %d\n", e.Score())
	} else {
		fmt.Printf("Score: %d\n", e.Score())
	}
}

// playGame runs the TUI until the player quits. The log file is closed
// before it returns.
func playGame(cfg config.Config) (*session.Session, error) {
	logOut, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		return nil, err
	}
	defer closeLog()
	logger := newLogger(logOut, cfg)

	rc := cfg.Runtime()
	rc.Seed = resolveSeed(cfg)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Info("starting",
		"seed", rc.Seed,
		"tick", rc.TickInterval,
		"tps", rc.TickRate(),
		"size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH),
	)

	s := session.New(rc.Seed, logger)
	if err := tui.Run(s, tui.NewKeyMap(cfg.Keys), rc); err != nil {
		return nil, fmt.Errorf("running game: %w", err)
	}
	return s, nil
}

// openLogOutput opens path for appending. An empty path discards logs.
func openLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
