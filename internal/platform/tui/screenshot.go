package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
)

// takeScreenshot copies the board as plain text to the clipboard, or saves it
// under ~/.arcade/screenshots when the clipboard is unavailable. Returns the
// status line to show.
func (m *Model) takeScreenshot() string {
	text := m.screen.String()

	if m.opts.Clipboard && !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			return "screenshot copied to clipboard"
		}
		m.logger.Debug("clipboard unavailable", "error", err)
	}

	path, err := saveScreenshot(text, time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return "screenshot failed"
	}
	return "screenshot saved to " + path
}

// saveScreenshot writes text to a timestamped file and returns its path.
func saveScreenshot(text string, at time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", at.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}
