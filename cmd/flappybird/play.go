package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ProneilS/flappyBird/internal/config"
	"github.com/ProneilS/flappyBird/internal/platform/tui"
)

var (
	flagLogFile string
	flagNoColor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start an interactive game session in the terminal.

Controls:
  Space/Up/W   - Flap (starts a run from the menu)
  Left click   - Flap
  R            - Restart
  Q/Esc/Ctrl+C - Quit

Examples:
  flappybird play
  flappybird play --fps 30
  flappybird play --seed 42 --log-file session.log
  flappybird play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := sessionLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Get terminal size early; resize messages keep it current afterwards
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Width:    width,
		Height:   height,
		Logger:   logger,
	}

	if err := tui.Run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// sessionLogger builds the play-session logger. The alternate screen owns
// the terminal during play, so logs go to a file or nowhere.
func sessionLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappybird",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
