package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagWidth  int
	flagHeight int
	flagMute   bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open the game in a resizable desktop window.

Controls:
  Space/Up/W/Click/Tap  - Flap
  T                     - Switch theme
  Q/Esc                 - Quit

Examples:
  flappy window
  flappy window --width 720 --height 960
  flappy window --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 480, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 640, "Initial window height in pixels")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("flappy", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		store = nil
	}

	var mixer *assets.Mixer
	if !flagMute {
		mixer = assets.NewMixer(window.NewToneSink(), cfg.Audio.Volume, logger)
	}

	host, runErr := window.Run(window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  flagWidth,
			ScreenH:  flagHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Mixer:  mixer,
		Logger: logger,
	})

	if mixer != nil {
		mixer.Close()
	}

	if store != nil {
		printSummary(store, host.Session())
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
