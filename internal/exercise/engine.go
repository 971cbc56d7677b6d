// Package exercise drives the guided relaxation timers: a phase-cycling
// countdown engine, a ticker-backed runner that owns its cancellation, a
// confirm-to-advance stepper for grounding, and the progressive muscle
// relaxation sequence.
package exercise

import "fmt"

type Mode int

const (
	// Cyclic wraps from the last phase back to the first indefinitely.
	Cyclic Mode = iota
	// Finite stops after the last phase completes.
	Finite
)

// Engine is the countdown state machine for one exercise session. It is not
// goroutine-safe on its own; the Runner serializes access.
type Engine struct {
	mode      Mode
	durations []int
	labels    []string
	idx       int
	remaining int
	elapsed   int
	done      bool
}

// New builds an engine from parallel duration/label sequences. An empty or
// mismatched configuration is a programming error and panics.
func New(mode Mode, durations []int, labels []string) *Engine {
	if len(durations) == 0 {
		panic("exercise: empty phase pattern")
	}
	if len(durations) != len(labels) {
		panic(fmt.Sprintf("exercise: %d durations but %d labels", len(durations), len(labels)))
	}
	for _, d := range durations {
		if d <= 0 {
			panic(fmt.Sprintf("exercise: non-positive phase duration %d", d))
		}
	}
	return &Engine{
		mode:      mode,
		durations: append([]int(nil), durations...),
		labels:    append([]string(nil), labels...),
		remaining: durations[0],
	}
}

// Tick consumes one second. With more than one second left in the phase it
// decrements; on the phase's final second it advances, wrapping or stopping
// per mode, and resets the countdown to the next phase's duration. Elapsed
// grows on every tick. Ticking a finished engine is a no-op.
func (e *Engine) Tick() {
	if e.done {
		return
	}
	e.elapsed++
	if e.remaining > 1 {
		e.remaining--
		return
	}
	// Final second of the phase.
	if e.idx == len(e.durations)-1 {
		if e.mode == Finite {
			e.remaining = 0
			e.done = true
			return
		}
		e.idx = 0
	} else {
		e.idx++
	}
	e.remaining = e.durations[e.idx]
}

func (e *Engine) PhaseIndex() int { return e.idx }
func (e *Engine) Label() string   { return e.labels[e.idx] }
func (e *Engine) Remaining() int  { return e.remaining }
func (e *Engine) Elapsed() int    { return e.elapsed }
func (e *Engine) Done() bool      { return e.done }
func (e *Engine) Phases() int     { return len(e.durations) }

// Snapshot is an immutable view of the engine for observers.
type Snapshot struct {
	PhaseIndex int
	Label      string
	Remaining  int
	Elapsed    int
	Done       bool
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		PhaseIndex: e.idx,
		Label:      e.labels[e.idx],
		Remaining:  e.remaining,
		Elapsed:    e.elapsed,
		Done:       e.done,
	}
}
