package flappy

// Surface is the per-frame render target supplied by the host.
// Coordinates are board units; the host maps them to cells or pixels.
// For DrawText, y is the text baseline.
type Surface interface {
	Clear()
	DrawImage(img Image, x, y, w, h float64)
	DrawText(text string, x, y, size float64)
}

// Image is an opaque sprite handle that may still be loading.
type Image interface {
	Ready() bool
	// OnReady registers the callback run once the image has loaded.
	// A handle keeps one pending callback; registering again replaces it.
	OnReady(fn func())
}

// Sound is a fire-and-forget audio cue.
type Sound interface {
	Play()
}

// Assets binds the handles the game draws and plays. Swapping the whole set
// is how the host switches themes. Nil handles are skipped.
type Assets struct {
	Bird       Image
	Background Image
	TopPipe    Image
	BottomPipe Image

	Hit   Sound
	Die   Sound
	Point Sound
	Wing  Sound
}

// Cue names a game notification.
type Cue string

const (
	CueWing  Cue = "wing"  // Flap
	CuePoint Cue = "point" // Pipe cleared
	CueHit   Cue = "hit"   // Pipe collision
	CueDie   Cue = "die"   // Fell off the board
)

// sound returns the handle bound to c.
func (a Assets) sound(c Cue) Sound {
	switch c {
	case CueWing:
		return a.Wing
	case CuePoint:
		return a.Point
	case CueHit:
		return a.Hit
	case CueDie:
		return a.Die
	}
	return nil
}

// pipe returns the image for an obstacle variant.
func (a Assets) pipe(v Variant) Image {
	if v == VariantUpper {
		return a.TopPipe
	}
	return a.BottomPipe
}
