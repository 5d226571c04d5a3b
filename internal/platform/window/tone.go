package window

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const sampleRate = 44100

// tone is a decaying sine blip.
type tone struct {
	freq float64 // Hz
	dur  float64 // seconds
}

var cueTones = map[flappy.Cue]tone{
	flappy.CueWing:  {freq: 660, dur: 0.08},
	flappy.CuePoint: {freq: 880, dur: 0.12},
	flappy.CueHit:   {freq: 196, dur: 0.20},
	flappy.CueDie:   {freq: 131, dur: 0.45},
}

// synthesize renders t as 16-bit little-endian stereo PCM.
func synthesize(t tone, rate int) []byte {
	samples := int(float64(rate) * t.dur)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		at := float64(i) / float64(rate)
		env := math.Exp(-3.4 * at / t.dur)
		s := uint16(int16(math.Sin(2*math.Pi*t.freq*at) * env * 0.8 * math.MaxInt16))
		binary.LittleEndian.PutUint16(data[i*4:], s)
		binary.LittleEndian.PutUint16(data[i*4+2:], s)
	}
	return data
}

// ToneSink plays a synthesized tone per cue through the Ebitengine audio
// context.
type ToneSink struct {
	ctx   *audio.Context
	clips map[flappy.Cue][]byte
}

var _ assets.Sink = (*ToneSink)(nil)

// NewToneSink renders the cue tones. Ebitengine allows one audio context per
// process, so an existing context is reused.
func NewToneSink() *ToneSink {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	clips := make(map[flappy.Cue][]byte, len(cueTones))
	for cue, t := range cueTones {
		clips[cue] = synthesize(t, ctx.SampleRate())
	}
	return &ToneSink{ctx: ctx, clips: clips}
}

// Emit starts the tone of cue at volume.
func (s *ToneSink) Emit(cue flappy.Cue, volume float64) error {
	clip, ok := s.clips[cue]
	if !ok {
		return fmt.Errorf("window: no tone for cue %q", cue)
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.SetVolume(volume)
	p.Play()
	return nil
}
