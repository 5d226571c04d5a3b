package tui

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/viewport"
)

// fallbackGlyph draws images that carry no terminal glyph.
const fallbackGlyph = '#'

// screenSurface draws board units onto a cell screen.
type screenSurface struct {
	screen *core.Screen
	grid   viewport.Grid
	hud    core.Color
}

var _ flappy.Surface = (*screenSurface)(nil)

func newScreenSurface(screen *core.Screen) *screenSurface {
	return &screenSurface{screen: screen, hud: core.ColorBrightWhite}
}

// Clear blanks the whole screen, margins included.
func (s *screenSurface) Clear() {
	s.screen.Clear()
}

// DrawImage fills the cells covered by the image with its glyph.
func (s *screenSurface) DrawImage(img flappy.Image, x, y, w, h float64) {
	glyph, color := rune(fallbackGlyph), core.ColorDefault
	if sp, ok := img.(*assets.Sprite); ok {
		glyph, color = sp.Glyph(), sp.Color()
	}
	s.screen.DrawRect(s.grid.Rect(x, y, w, h), glyph, color)
}

// DrawText writes text on the row holding the middle of the glyph box that
// ends at baseline y. Font size cannot be honoured on a cell grid.
func (s *screenSurface) DrawText(text string, x, y, size float64) {
	row := s.grid.Row(y - size/2)
	if row < 0 {
		row = 0
	}
	s.screen.DrawTextColored(s.grid.Col(x), row, text, s.hud)
}
