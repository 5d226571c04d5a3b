// Package assets provides the sprite and sound handles the game draws and
// plays, the embedded visual themes, and the fire-and-forget cue mixer.
//
// There is no asset pipeline: a sprite is a glyph plus a color for terminal
// hosts and a flat RGB color for the window host. Handles still go through a
// load step so hosts exercise the deferred-draw path the game relies on.
package assets

import (
	"errors"
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SpriteDef describes how one sprite looks in each host.
type SpriteDef struct {
	Glyph string `yaml:"glyph"` // Single rune used by terminal hosts
	Color string `yaml:"color"` // Terminal color name ("green", "bright_yellow")
	RGB   string `yaml:"rgb"`   // Window color, "#rrggbb"
}

// ThemeSprites groups the four sprites of a theme.
type ThemeSprites struct {
	Bird       SpriteDef `yaml:"bird"`
	Background SpriteDef `yaml:"background"`
	TopPipe    SpriteDef `yaml:"top_pipe"`
	BottomPipe SpriteDef `yaml:"bottom_pipe"`
}

// HUDDef is the text color of the score line and banner.
type HUDDef struct {
	Color string `yaml:"color"`
	RGB   string `yaml:"rgb"`
}

// Theme is a complete visual definition.
type Theme struct {
	ID      string       `yaml:"id"`
	Title   string       `yaml:"title"`
	Sprites ThemeSprites `yaml:"sprites"`
	HUD     HUDDef       `yaml:"hud"`
}

// colorNames maps theme color names to terminal colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ParseColor resolves a terminal color name.
func ParseColor(name string) (core.Color, error) {
	if name == "" {
		return core.ColorDefault, nil
	}
	c, ok := colorNames[name]
	if !ok {
		return core.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// ParseRGB resolves a "#rrggbb" window color.
func ParseRGB(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid rgb %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseTheme decodes and validates a theme definition.
func ParseTheme(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("assets: parse theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Validate checks that every sprite can be drawn by every host.
func (t Theme) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}

	check := func(name string, d SpriteDef) {
		if utf8.RuneCountInString(d.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("%s.glyph must be a single rune, got %q", name, d.Glyph))
		}
		if _, err := ParseColor(d.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s.color: %w", name, err))
		}
		if _, err := ParseRGB(d.RGB); err != nil {
			errs = append(errs, fmt.Errorf("%s.rgb: %w", name, err))
		}
	}
	check("bird", t.Sprites.Bird)
	check("background", t.Sprites.Background)
	check("top_pipe", t.Sprites.TopPipe)
	check("bottom_pipe", t.Sprites.BottomPipe)

	if _, err := ParseColor(t.HUD.Color); err != nil {
		errs = append(errs, fmt.Errorf("hud.color: %w", err))
	}
	if _, err := ParseRGB(t.HUD.RGB); err != nil {
		errs = append(errs, fmt.Errorf("hud.rgb: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("assets: invalid theme %q: %w", t.ID, errors.Join(errs...))
	}
	return nil
}

// HUDColor returns the terminal HUD color. Themes are validated on load.
func (t Theme) HUDColor() core.Color {
	c, _ := ParseColor(t.HUD.Color)
	return c
}

// HUDRGB returns the window HUD color.
func (t Theme) HUDRGB() color.RGBA {
	c, _ := ParseRGB(t.HUD.RGB)
	return c
}
