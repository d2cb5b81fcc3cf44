// Package debounce delays a value until input has been quiet for a
// fixed interval. Only the most recent value is ever delivered.
package debounce

import (
	"sync"
	"time"
)

// DefaultWait is the quiet interval used when none is configured.
const DefaultWait = 300 * time.Millisecond

// Debouncer holds the latest pushed value. The caller arranges a delayed
// callback per Push (a bubbletea tick carrying the sequence number) and
// calls Fire when it arrives; only the newest sequence number delivers.
type Debouncer[T any] struct {
	mu      sync.Mutex
	wait    time.Duration
	seq     uint64
	pending T
	stopped bool
}

// New returns a debouncer with the given quiet interval. wait <= 0 uses
// DefaultWait.
func New[T any](wait time.Duration) *Debouncer[T] {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer[T]{wait: wait}
}

// Wait returns the quiet interval.
func (d *Debouncer[T]) Wait() time.Duration {
	return d.wait
}

// Push records v as the latest value and returns its sequence number.
// Any earlier sequence number becomes stale.
func (d *Debouncer[T]) Push(v T) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.pending = v
	return d.seq
}

// Fire returns the pending value if seq is still the latest and the
// debouncer has not been stopped.
func (d *Debouncer[T]) Fire(seq uint64) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero T
	if d.stopped || seq != d.seq {
		return zero, false
	}
	return d.pending, true
}

// Stop discards the pending value. Later Fire calls report false.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	var zero T
	d.pending = zero
}
