// Package cache provides the in-memory response store used by the client.
// Entries carry a per-entry TTL and are bounded by a configured capacity;
// when full, the oldest-inserted entry is evicted to make room.
package cache

import (
	"sync"
	"time"

	"github.com/signalsfoundry/satwatch/internal/clock"
)

// DefaultTTL is used when Set is called with a zero TTL and no store-wide
// default is configured.
const DefaultTTL = 5 * time.Minute

// Config controls construction of a Store.
type Config struct {
	// DefaultTTL applies when Set receives a zero TTL. Zero means DefaultTTL.
	DefaultTTL time.Duration
	// MaxTTL, when non-zero, caps the effective TTL of every write.
	MaxTTL time.Duration
	// Capacity bounds the number of entries. Zero means unbounded.
	Capacity int
	// SweepInterval is the period of the background expiry sweep.
	// Zero disables the sweep; expired entries are then only removed lazily.
	SweepInterval time.Duration
	// Clock supplies the current time. Nil means the system clock.
	Clock clock.Clock
}

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.storedAt) > e.ttl
}

// Stats is a point-in-time snapshot of store occupancy.
type Stats struct {
	Total    int // entries held, including expired-but-unswept
	Expired  int // entries past their TTL awaiting sweep
	Valid    int // entries a Get would still return
	Capacity int // configured bound, 0 when unbounded
}

// Store is a bounded, TTL-based key/value store. It is safe for concurrent
// use; the background sweep and lazy expiry may race on deletion only, which
// is harmless since neither path resurrects an entry.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	order   []string // insertion order, for oldest-first eviction

	defaultTTL time.Duration
	maxTTL     time.Duration
	capacity   int
	clk        clock.Clock

	sweepStop chan struct{}
	stopOnce  sync.Once
}

// New constructs a Store and, when cfg.SweepInterval is set, starts its
// periodic expiry sweep.
func New(cfg Config) *Store {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}

	s := &Store{
		entries:    make(map[string]entry),
		defaultTTL: cfg.DefaultTTL,
		maxTTL:     cfg.MaxTTL,
		capacity:   cfg.Capacity,
		clk:        cfg.Clock,
	}

	if cfg.SweepInterval > 0 {
		s.sweepStop = make(chan struct{})
		go s.sweepLoop(cfg.SweepInterval)
	}
	return s
}

// Get returns the stored value for key if it is still within its TTL.
// Expired entries are treated as absent and removed on access.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(s.clk.Now()) {
		s.removeLocked(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key. A zero ttl uses the store default; when a
// maximum TTL is configured the effective TTL is the lesser of the two, so a
// caller cannot extend freshness beyond policy. At capacity, the
// oldest-inserted entry is evicted first.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if s.maxTTL > 0 && ttl > s.maxTTL {
		ttl = s.maxTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		if s.capacity > 0 && len(s.entries) >= s.capacity {
			s.evictOldestLocked()
		}
		s.order = append(s.order, key)
	}
	s.entries[key] = entry{
		value:    value,
		storedAt: s.clk.Now(),
		ttl:      ttl,
	}
}

// Delete removes key if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
}

// Clear removes all entries unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
	s.order = s.order[:0]
}

// Stats reports current occupancy.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()
	st := Stats{Total: len(s.entries), Capacity: s.capacity}
	for _, e := range s.entries {
		if e.expired(now) {
			st.Expired++
		} else {
			st.Valid++
		}
	}
	return st
}

// Stop halts the background sweep. Safe to call more than once, and safe when
// the sweep was never started.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		if s.sweepStop != nil {
			close(s.sweepStop)
		}
	})
}

func (s *Store) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.sweepStop:
			return
		}
	}
}

// sweep removes every expired entry. It bounds memory independently of Get's
// lazy expiry, which only fires for keys that are looked up again.
func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()
	for key, e := range s.entries {
		if e.expired(now) {
			s.removeLocked(key)
		}
	}
}

func (s *Store) evictOldestLocked() {
	if len(s.order) == 0 {
		return
	}
	s.removeLocked(s.order[0])
}

func (s *Store) removeLocked(key string) {
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
