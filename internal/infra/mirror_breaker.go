package infra

import (
	"sync"
	"time"
)

// Per-mirror circuit breaking for the Overpass fan-out. A single breaker in
// front of the whole mirror list would bench every mirror because one of
// them is flaky; public Overpass mirrors fail independently (rate limits,
// maintenance windows), so each one carries its own consecutive-failure
// count and bench timer. The client skips benched mirrors and falls through
// to the next.

type MirrorBreakerConfig struct {
	FailureThreshold int           // consecutive failures before a mirror is benched
	Cooldown         time.Duration // how long a benched mirror sits out
}

// DefaultMirrorBreakerConfig benches a mirror after 3 straight failures for
// 2 minutes — long enough to ride out a 429 window, short enough that a
// recovered mirror rejoins the rotation quickly.
func DefaultMirrorBreakerConfig() MirrorBreakerConfig {
	return MirrorBreakerConfig{
		FailureThreshold: 3,
		Cooldown:         2 * time.Minute,
	}
}

type mirrorState struct {
	failures     int
	benchedUntil time.Time
}

// MirrorBreaker tracks the health of each mirror URL independently.
type MirrorBreaker struct {
	mu      sync.Mutex
	cfg     MirrorBreakerConfig
	mirrors map[string]*mirrorState
}

func NewMirrorBreaker(cfg MirrorBreakerConfig) *MirrorBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 2 * time.Minute
	}
	return &MirrorBreaker{
		cfg:     cfg,
		mirrors: make(map[string]*mirrorState),
	}
}

func (b *MirrorBreaker) state(mirror string) *mirrorState {
	st, ok := b.mirrors[mirror]
	if !ok {
		st = &mirrorState{}
		b.mirrors[mirror] = st
	}
	return st
}

// Allow reports whether mirror may be tried. A benched mirror whose
// cooldown has elapsed gets a single trial request: one more failure
// benches it again immediately.
func (b *MirrorBreaker) Allow(mirror string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.state(mirror)
	if st.failures < b.cfg.FailureThreshold {
		return true
	}
	if time.Now().After(st.benchedUntil) {
		st.failures = b.cfg.FailureThreshold - 1
		return true
	}
	return false
}

// Success clears the mirror's failure streak.
func (b *MirrorBreaker) Success(mirror string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state(mirror).failures = 0
}

// Failure records one failed request; hitting the threshold benches the
// mirror for the cooldown.
func (b *MirrorBreaker) Failure(mirror string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.state(mirror)
	st.failures++
	if st.failures >= b.cfg.FailureThreshold {
		st.benchedUntil = time.Now().Add(b.cfg.Cooldown)
	}
}

// Benched reports whether mirror is currently sitting out.
func (b *MirrorBreaker) Benched(mirror string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.state(mirror)
	return st.failures >= b.cfg.FailureThreshold && time.Now().Before(st.benchedUntil)
}
