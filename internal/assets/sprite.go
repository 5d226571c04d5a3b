package assets

import (
	"image/color"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sprite is an image handle. It starts unloaded; hosts call Resolve once the
// backing resource exists. Handles are owned by the host's main goroutine.
type Sprite struct {
	name  string
	glyph rune
	color core.Color
	rgb   color.RGBA

	ready   bool
	pending func()
}

// NewSprite builds an unloaded handle from a validated definition.
func NewSprite(name string, def SpriteDef) *Sprite {
	s := &Sprite{name: name, glyph: ' '}
	for _, r := range def.Glyph {
		s.glyph = r
		break
	}
	s.color, _ = ParseColor(def.Color)
	s.rgb, _ = ParseRGB(def.RGB)
	return s
}

// Name returns the sprite role ("bird", "top_pipe", ...).
func (s *Sprite) Name() string { return s.name }

// Glyph returns the rune terminal hosts fill the sprite with.
func (s *Sprite) Glyph() rune { return s.glyph }

// Color returns the terminal color.
func (s *Sprite) Color() core.Color { return s.color }

// RGB returns the window color.
func (s *Sprite) RGB() color.RGBA { return s.rgb }

// Ready reports whether the sprite has loaded.
func (s *Sprite) Ready() bool { return s.ready }

// OnReady registers fn to run when the sprite loads. Only the latest
// registration is kept. On a loaded sprite fn is not called.
func (s *Sprite) OnReady(fn func()) {
	if s.ready {
		return
	}
	s.pending = fn
}

// Resolve marks the sprite loaded and runs the pending callback, if any.
// Later calls are no-ops.
func (s *Sprite) Resolve() {
	if s.ready {
		return
	}
	s.ready = true
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}
