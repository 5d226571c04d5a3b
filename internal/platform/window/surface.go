package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	marginColor   = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	fallbackColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// imageSurface draws board units onto the Ebitengine screen. One board unit
// is one pixel; the board is centered horizontally.
type imageSurface struct {
	dst     *ebiten.Image
	offsetX float64
	hud     color.RGBA
	face    font.Face
}

var _ flappy.Surface = (*imageSurface)(nil)

func newImageSurface() *imageSurface {
	return &imageSurface{
		hud:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		face: basicfont.Face7x13,
	}
}

// boardOffset returns the left margin that centers a board of boardW pixels
// in a window viewW pixels wide.
func boardOffset(viewW, boardW float64) float64 {
	if viewW <= boardW {
		return 0
	}
	return (viewW - boardW) / 2
}

// spriteColor returns the fill color of img.
func spriteColor(img flappy.Image) color.RGBA {
	if sp, ok := img.(*assets.Sprite); ok {
		return sp.RGB()
	}
	return fallbackColor
}

// Clear fills the whole window, margins included.
func (s *imageSurface) Clear() {
	s.dst.Fill(marginColor)
}

// DrawImage fills the rectangle covered by the image with its color.
func (s *imageSurface) DrawImage(img flappy.Image, x, y, w, h float64) {
	vector.FillRect(s.dst,
		float32(s.offsetX+x), float32(y),
		float32(w), float32(h),
		spriteColor(img), false)
}

// DrawText draws text with its baseline at y. basicfont has a single size.
func (s *imageSurface) DrawText(str string, x, y, _ float64) {
	text.Draw(s.dst, str, s.face, int(s.offsetX+x), int(y), s.hud)
}
