// Package ratelimit keeps outbound request volume under an hourly ceiling
// using a sliding window of recent request timestamps. When the ceiling is
// reached, callers are either rejected immediately or parked on a FIFO queue
// drained by a single pacing goroutine.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/signalsfoundry/satwatch/internal/clock"
)

// ErrLimited is returned by Admit when the window is saturated and queueing
// is disabled.
var ErrLimited = errors.New("ratelimit: request ceiling reached for the current window")

// Default pacing values for the queue drain.
const (
	DefaultWindow     = time.Hour
	DefaultDrainPause = 500 * time.Millisecond
	DefaultRetryDelay = 30 * time.Second
)

// Config controls construction of a Limiter.
type Config struct {
	// Ceiling is the maximum number of admissions per window. Zero disables
	// limiting entirely: every Admit succeeds without bookkeeping.
	Ceiling int
	// Window is the sliding-window length. Zero means DefaultWindow.
	Window time.Duration
	// Queue, when true, parks saturated callers on a FIFO queue instead of
	// rejecting them with ErrLimited.
	Queue bool
	// DrainPause is the fixed pause between successive queued admissions.
	DrainPause time.Duration
	// RetryDelay is how long the drain waits before re-checking a still-full
	// window. Avoids busy-waiting while slots age out.
	RetryDelay time.Duration
	// Clock supplies the current time. Nil means the system clock.
	Clock clock.Clock
}

// Stats is a snapshot of limiter state.
type Stats struct {
	Used       int  // admissions recorded inside the current window
	Ceiling    int  // configured maximum, 0 when unlimited
	QueueDepth int  // callers parked waiting for a slot
	CanProceed bool // whether an Admit right now would pass without queueing
}

type waiter struct {
	admitted  chan struct{}
	abandoned bool
}

// Limiter tracks a sliding window of admission timestamps. Safe for
// concurrent use by a single client instance.
type Limiter struct {
	mu       sync.Mutex
	stamps   []time.Time
	queue    []*waiter
	draining bool

	ceiling    int
	window     time.Duration
	queueing   bool
	drainPause time.Duration
	retryDelay time.Duration
	clk        clock.Clock
}

// New constructs a Limiter.
func New(cfg Config) *Limiter {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.DrainPause <= 0 {
		cfg.DrainPause = DefaultDrainPause
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	return &Limiter{
		ceiling:    cfg.Ceiling,
		window:     cfg.Window,
		queueing:   cfg.Queue,
		drainPause: cfg.DrainPause,
		retryDelay: cfg.RetryDelay,
		clk:        cfg.Clock,
	}
}

// Admit records one request against the window, blocking on the FIFO queue
// when the window is saturated and queueing is enabled. It returns ErrLimited
// when saturated with queueing disabled, or ctx.Err() if the caller gives up
// while parked. Exactly one timestamp is recorded per successful admission.
func (l *Limiter) Admit(ctx context.Context) error {
	if l.ceiling <= 0 {
		return nil
	}

	l.mu.Lock()
	l.pruneLocked()

	if len(l.stamps) < l.ceiling {
		l.stamps = append(l.stamps, l.clk.Now())
		l.mu.Unlock()
		return nil
	}

	if !l.queueing {
		l.mu.Unlock()
		return ErrLimited
	}

	w := &waiter{admitted: make(chan struct{})}
	l.queue = append(l.queue, w)
	if !l.draining {
		l.draining = true
		go l.drain()
	}
	l.mu.Unlock()

	select {
	case <-w.admitted:
		return nil
	case <-ctx.Done():
		// If the drain admitted us in the same instant the slot is simply
		// spent; admissions are never handed to a second caller.
		l.abandon(w)
		return ctx.Err()
	}
}

// Stats reports window occupancy and queue depth.
func (l *Limiter) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pruneLocked()
	return Stats{
		Used:       len(l.stamps),
		Ceiling:    l.ceiling,
		QueueDepth: len(l.queue),
		CanProceed: l.ceiling <= 0 || len(l.stamps) < l.ceiling,
	}
}

// drain releases parked waiters FIFO while the window has room, pausing
// between admissions and backing off while the window is full. Only one
// drain goroutine runs at a time.
func (l *Limiter) drain() {
	for {
		l.mu.Lock()
		l.pruneLocked()

		if len(l.queue) == 0 {
			l.draining = false
			l.mu.Unlock()
			return
		}

		if len(l.stamps) >= l.ceiling {
			l.mu.Unlock()
			time.Sleep(l.retryDelay)
			continue
		}

		w := l.queue[0]
		l.queue = l.queue[1:]
		if w.abandoned {
			l.mu.Unlock()
			continue
		}
		l.stamps = append(l.stamps, l.clk.Now())
		l.mu.Unlock()

		close(w.admitted)
		time.Sleep(l.drainPause)
	}
}

func (l *Limiter) abandon(w *waiter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	w.abandoned = true
	for i, q := range l.queue {
		if q == w {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			return
		}
	}
}

// pruneLocked discards timestamps older than the sliding window. Called
// before every admission decision.
func (l *Limiter) pruneLocked() {
	cutoff := l.clk.Now().Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}
