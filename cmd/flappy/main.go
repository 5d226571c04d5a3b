// flappy is a Flappy Bird-style game for the terminal, a native window and
// SSH.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy window            - Play in a native window
//	flappy serve             - Start SSH server for remote play
//	flappy themes            - List available themes
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible pipe gaps
//	--config <path>     - Load a custom config YAML
//	--theme <id>        - Override the initial theme
//	--god               - Disable collisions and flapping
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagTheme    string
	flagGod      bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly a bird through the pipes",
	Long: `Flappy is a Flappy Bird-style game. Flap to keep the bird in the air
and fly through the gaps between the pipes. Each pipe cleared is worth half
a point.

Available commands:
  play     - Play in this terminal
  window   - Play in a native window
  serve    - Start SSH server for remote play
  themes   - List available themes
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --theme dark --seed 42
  flappy window
  flappy serve --ssh :2222
  flappy config > ~/.arcade/configs/flappy.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Initial theme (overrides the config)")
	rootCmd.PersistentFlags().BoolVar(&flagGod, "god", false, "God mode: no collisions, no flapping")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the global overrides.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		if !assets.Exists(flagTheme) {
			return cfg, fmt.Errorf("unknown theme %q (run 'flappy themes')", flagTheme)
		}
		cfg.Theme = flagTheme
	}
	if flagGod {
		cfg.GodMode = true
	}
	return cfg, nil
}

// newLogger creates the process logger. Logs go to --log-file when set and
// to fallback otherwise. The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
