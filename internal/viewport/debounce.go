// Package viewport handles host window sizes: debouncing bursts of resize
// events and mapping terminal cells to board units.
package viewport

import "time"

// Size is a viewport size in host units (cells or pixels).
type Size struct {
	W, H int
}

// Token identifies one scheduled resize. Triggering again invalidates every
// earlier token.
type Token uint64

// Debouncer collapses a burst of resize events into the last one, applied
// once no further event arrived for Delay. It is not safe for concurrent use.
//
// Hosts with a message loop schedule a wake-up for each token and call Fire;
// polling hosts call Due every update.
type Debouncer struct {
	Delay time.Duration

	seq      Token
	pending  bool
	size     Size
	deadline time.Time
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay}
}

// Trigger records a resize to size at now and returns its token. Any earlier
// pending resize is cancelled.
func (d *Debouncer) Trigger(now time.Time, size Size) Token {
	d.seq++
	d.pending = true
	d.size = size
	d.deadline = now.Add(d.Delay)
	return d.seq
}

// Fire applies token if it is still the latest one. It returns the size to
// apply and true exactly once per surviving token.
func (d *Debouncer) Fire(token Token) (Size, bool) {
	if !d.pending || token != d.seq {
		return Size{}, false
	}
	d.pending = false
	return d.size, true
}

// Due returns the pending size once its deadline has passed.
func (d *Debouncer) Due(now time.Time) (Size, bool) {
	if !d.pending || now.Before(d.deadline) {
		return Size{}, false
	}
	d.pending = false
	return d.size, true
}

// Pending reports whether a resize is waiting.
func (d *Debouncer) Pending() bool {
	return d.pending
}
