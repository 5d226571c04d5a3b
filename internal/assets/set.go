package assets

import (
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Set holds the handles of one theme.
type Set struct {
	Theme Theme

	Bird       *Sprite
	Background *Sprite
	TopPipe    *Sprite
	BottomPipe *Sprite

	Hit   *Sound
	Die   *Sound
	Point *Sound
	Wing  *Sound
}

// NewSet builds unloaded sprite handles for theme and binds the cue sounds
// to mixer.
func NewSet(theme Theme, mixer *Mixer) *Set {
	return &Set{
		Theme:      theme,
		Bird:       NewSprite("bird", theme.Sprites.Bird),
		Background: NewSprite("background", theme.Sprites.Background),
		TopPipe:    NewSprite("top_pipe", theme.Sprites.TopPipe),
		BottomPipe: NewSprite("bottom_pipe", theme.Sprites.BottomPipe),
		Hit:        NewSound(flappy.CueHit, mixer),
		Die:        NewSound(flappy.CueDie, mixer),
		Point:      NewSound(flappy.CuePoint, mixer),
		Wing:       NewSound(flappy.CueWing, mixer),
	}
}

// Sprites returns the sprite handles in draw order.
func (s *Set) Sprites() []*Sprite {
	return []*Sprite{s.Background, s.TopPipe, s.BottomPipe, s.Bird}
}

// Ready reports whether every sprite has loaded.
func (s *Set) Ready() bool {
	for _, sp := range s.Sprites() {
		if !sp.Ready() {
			return false
		}
	}
	return true
}

// Resolve marks every sprite loaded, firing pending deferred draws.
func (s *Set) Resolve() {
	for _, sp := range s.Sprites() {
		sp.Resolve()
	}
}

// Assets returns the handles in the shape the game binds.
func (s *Set) Assets() flappy.Assets {
	return flappy.Assets{
		Bird:       s.Bird,
		Background: s.Background,
		TopPipe:    s.TopPipe,
		BottomPipe: s.BottomPipe,
		Hit:        s.Hit,
		Die:        s.Die,
		Point:      s.Point,
		Wing:       s.Wing,
	}
}

// Library caches one Set per theme so toggling back to a theme reuses its
// loaded handles.
type Library struct {
	mixer *Mixer
	sets  map[string]*Set
}

// NewLibrary creates a library whose sets play through mixer.
func NewLibrary(mixer *Mixer) *Library {
	return &Library{
		mixer: mixer,
		sets:  make(map[string]*Set),
	}
}

// Load returns the set for theme id. The second result is true when the set
// was created by this call and still has to be resolved by the host.
func (l *Library) Load(id string) (*Set, bool, error) {
	if s, ok := l.sets[id]; ok {
		return s, false, nil
	}
	theme, err := Lookup(id)
	if err != nil {
		return nil, false, err
	}
	s := NewSet(theme, l.mixer)
	l.sets[id] = s
	return s, true, nil
}
