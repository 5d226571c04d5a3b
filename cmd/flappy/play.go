package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagNoBell bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W  - Flap (starts the game, restarts after game over)
  Click       - Flap
  T           - Switch theme
  Ctrl+S      - Screenshot (clipboard, or ~/.arcade/screenshots)
  Q/Ctrl+C    - Quit

A summary of the session's rounds is printed on exit.

Examples:
  flappy play
  flappy play --theme dark
  flappy play --god
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Do not ring the terminal bell on game over")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The alternate screen owns stderr while playing
	logger, closeLog, err := newLogger("flappy", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Get terminal size early so the first frame fits
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var mixer *assets.Mixer
	if !flagNoBell {
		mixer = assets.NewMixer(assets.NewBellSink(os.Stdout), cfg.Audio.Volume, logger)
	}

	final, runErr := tui.Run(tui.Options{
		Config:    cfg,
		Runtime:   rt,
		Store:     store,
		Mixer:     mixer,
		Logger:    logger,
		Clipboard: true,
	})

	if mixer != nil {
		mixer.Close()
	}

	if store != nil {
		printSummary(store, final.Session())
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// printSummary prints the rounds of session and the run log totals.
func printSummary(store *storage.Store, session string) {
	runs, err := store.SessionRuns(session, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read run log: %v\n", err)
		return
	}
	stats, _ := store.Stats()
	fmt.Print(tui.RenderSummary(runs, stats))
}
