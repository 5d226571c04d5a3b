package assets

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    core.Color
		wantErr bool
	}{
		{"", core.ColorDefault, false},
		{"green", core.ColorGreen, false},
		{"bright_yellow", core.ColorBrightYellow, false},
		{"gray", core.ColorGray, false},
		{"chartreuse", core.ColorDefault, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestParseRGB(t *testing.T) {
	got, err := ParseRGB("#5ee270")
	if err != nil {
		t.Fatalf("ParseRGB failed: %v", err)
	}
	want := color.RGBA{R: 0x5e, G: 0xe2, B: 0x70, A: 0xff}
	if got != want {
		t.Errorf("ParseRGB = %v, expected %v", got, want)
	}

	if _, err := ParseRGB("green"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestParseThemeRejectsBadSprites(t *testing.T) {
	data := []byte(`
id: broken
title: Broken
sprites:
  bird: {glyph: "@@", color: yellow, rgb: "#ffff00"}
  background: {glyph: " ", color: default, rgb: "#000000"}
  top_pipe: {glyph: "#", color: mauve, rgb: "#00ff00"}
  bottom_pipe: {glyph: "#", color: green, rgb: "nope"}
hud: {color: white, rgb: "#ffffff"}
`)
	_, err := ParseTheme(data)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"bird.glyph", "top_pipe.color", "bottom_pipe.rgb"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestParseThemeRequiresID(t *testing.T) {
	if _, err := ParseTheme([]byte("title: Anonymous\n")); err == nil {
		t.Error("expected error for theme without id")
	}
}

func TestThemeHUDColors(t *testing.T) {
	th, err := Lookup("classic")
	if err != nil {
		t.Fatal(err)
	}
	if th.HUDColor() != core.ColorBrightWhite {
		t.Errorf("HUDColor = %v", th.HUDColor())
	}
	if th.HUDRGB() != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("HUDRGB = %v", th.HUDRGB())
	}
}
