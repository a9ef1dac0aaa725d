package display

import (
	"fmt"
	"io"
	"sync"
)

// Renderer is the single output surface a submission writes to.
type Renderer interface {
	Render(State)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(State)

func (f RenderFunc) Render(s State) { f(s) }

// Recorder keeps every state it receives. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *Recorder) Render(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

// States returns a copy of everything rendered so far.
func (r *Recorder) States() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, len(r.states))
	copy(out, r.states)
	return out
}

// Last returns the most recent state, or an Idle state if nothing was rendered.
func (r *Recorder) Last() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return State{Kind: Idle}
	}
	return r.states[len(r.states)-1]
}

// Writer prints each message on its own line. Transient states go to Progress
// when it is set, everything else to Out.
type Writer struct {
	Out      io.Writer
	Progress io.Writer
}

func (w *Writer) Render(s State) {
	dst := w.Out
	if s.Kind == InFlight && w.Progress != nil {
		dst = w.Progress
	}
	fmt.Fprintln(dst, s.Message)
}

// Multi fans one state out to several renderers in order.
func Multi(rs ...Renderer) Renderer {
	return RenderFunc(func(s State) {
		for _, r := range rs {
			r.Render(s)
		}
	})
}
