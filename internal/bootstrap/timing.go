package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/quadspace/internal/logging"
)

type phase struct {
	name string
	took time.Duration
}

// StartupTimer collects per-phase startup durations for a single debug line.
// Phases may be recorded from several goroutines.
type StartupTimer struct {
	mu     sync.Mutex
	origin time.Time
	prev   time.Time
	phases []phase
}

// NewStartupTimer starts the clock.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{origin: now, prev: now}
}

// Mark closes the sequential phase that began at the previous Mark.
func (t *StartupTimer) Mark(name string) {
	now := time.Now()
	t.mu.Lock()
	t.phases = append(t.phases, phase{name: name, took: now.Sub(t.prev)})
	t.prev = now
	t.mu.Unlock()
}

// Track times a phase that runs concurrently with others. Call the returned
// func when the phase ends.
func (t *StartupTimer) Track(name string) func() {
	began := time.Now()
	return func() {
		took := time.Since(began)
		t.mu.Lock()
		t.phases = append(t.phases, phase{name: name, took: took})
		t.mu.Unlock()
	}
}

// Phases lists recorded phase names in recording order.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, len(t.phases))
	for i, p := range t.phases {
		names[i] = p.name
	}
	return names
}

// Log emits the total and every phase at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	dict := zerolog.Dict()
	for _, p := range t.phases {
		dict = dict.Dur(p.name, p.took)
	}
	t.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Dur("total", time.Since(t.origin)).
		Dict("phases", dict).
		Msg("startup timing")
}
