package exercise

import (
	"context"
	"sync"
	"time"
)

// Runner drives an Engine from a ticker until the exercise finishes, the
// context is cancelled, or Stop is called. The ticker is released on every
// exit path and no tick is delivered after Stop returns.
type Runner struct {
	engine   *Engine
	interval time.Duration
	observe  func(Snapshot)

	stop     chan struct{}
	stopOnce sync.Once
	finished chan struct{}
}

// NewRunner wraps an engine. interval is normally one second; tests inject a
// shorter one. observe may be nil.
func NewRunner(engine *Engine, interval time.Duration, observe func(Snapshot)) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{
		engine:   engine,
		interval: interval,
		observe:  observe,
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start launches the tick loop. It returns immediately.
func (r *Runner) Start(ctx context.Context) {
	go func() {
		defer close(r.finished)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-ticker.C:
				// A tick may race a cancellation; re-check before acting.
				select {
				case <-ctx.Done():
					return
				case <-r.stop:
					return
				default:
				}
				r.engine.Tick()
				snap := r.engine.Snapshot()
				if r.observe != nil {
					r.observe(snap)
				}
				if snap.Done {
					return
				}
			}
		}
	}()
}

// Stop halts the loop and blocks until it has fully exited. Idempotent and
// safe to call whether or not the exercise already completed.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.finished
}

// Finished is closed once the tick loop has exited for any reason.
func (r *Runner) Finished() <-chan struct{} { return r.finished }
