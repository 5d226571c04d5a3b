package assets

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// queueSize bounds the cues waiting for the sink. Extra cues are dropped.
const queueSize = 16

// Sink produces the audible output of a cue.
type Sink interface {
	Emit(cue flappy.Cue, volume float64) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(cue flappy.Cue, volume float64) error

// Emit calls f.
func (f SinkFunc) Emit(cue flappy.Cue, volume float64) error { return f(cue, volume) }

// BellSink rings the terminal bell for the cues in Cues.
type BellSink struct {
	W    io.Writer
	Cues map[flappy.Cue]bool
}

// NewBellSink rings on w for hits and deaths only; a bell per flap is noise.
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{
		W:    w,
		Cues: map[flappy.Cue]bool{flappy.CueHit: true, flappy.CueDie: true},
	}
}

// Emit writes BEL when the cue is enabled.
func (b *BellSink) Emit(cue flappy.Cue, _ float64) error {
	if !b.Cues[cue] {
		return nil
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

// Mixer plays cues on a background goroutine. Play never blocks the caller.
type Mixer struct {
	sink    Sink
	volume  float64
	logger  *log.Logger
	queue   chan flappy.Cue
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	played  atomic.Int64
	dropped atomic.Int64
}

// NewMixer starts a mixer feeding sink at the given volume, clamped to
// [0, 1] (0 mutes).
// A nil logger discards sink errors.
func NewMixer(sink Sink, volume float64, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Mixer{
		sink:   sink,
		volume: core.ClampF(volume, 0, 1),
		logger: logger,
		queue:  make(chan flappy.Cue, queueSize),
		done:   make(chan struct{}),
	}
	m.wg.Add(1)
	go m.run()
	return m
}

func (m *Mixer) run() {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case cue := <-m.queue:
			if err := m.sink.Emit(cue, m.volume); err != nil {
				m.logger.Debug("cue playback failed", "cue", cue, "err", err)
				continue
			}
			m.played.Add(1)
		}
	}
}

// Play queues cue. It returns false when the mixer is muted, closed or
// saturated.
func (m *Mixer) Play(cue flappy.Cue) bool {
	if m == nil || m.sink == nil || m.volume <= 0 {
		return false
	}
	select {
	case <-m.done:
		return false
	default:
	}
	select {
	case m.queue <- cue:
		return true
	default:
		m.dropped.Add(1)
		return false
	}
}

// Close stops the playback goroutine. Queued cues are discarded.
func (m *Mixer) Close() {
	m.once.Do(func() {
		close(m.done)
	})
	m.wg.Wait()
}

// Played returns the number of cues delivered to the sink.
func (m *Mixer) Played() int64 { return m.played.Load() }

// Dropped returns the number of cues discarded because the queue was full.
func (m *Mixer) Dropped() int64 { return m.dropped.Load() }

// Sound is the handle the game plays. It forwards its cue to a mixer.
type Sound struct {
	cue   flappy.Cue
	mixer *Mixer
}

// NewSound binds cue to mixer. A nil mixer makes a silent handle.
func NewSound(cue flappy.Cue, mixer *Mixer) *Sound {
	return &Sound{cue: cue, mixer: mixer}
}

// Cue returns the cue this handle plays.
func (s *Sound) Cue() flappy.Cue { return s.cue }

// Play queues the cue and returns immediately.
func (s *Sound) Play() {
	s.mixer.Play(s.cue)
}
