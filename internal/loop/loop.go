// Package loop provides the fixed-rate tick scheduler that drives the
// simulation in real time. The simulation itself has no clock; a Loop
// fires a callback per tick and the consumer advances the game, so
// tests can skip the scheduler entirely and step synchronously.
package loop

import (
	"sync"
	"time"
)

// TickFunc receives the generation of the handle that fired it.
type TickFunc func(gen uint64)

// Loop calls a TickFunc at a fixed rate from a single goroutine. Each
// Start issues a fresh generation, the handle; at most one handle is
// active at a time, and once Stop returns no callback from the stopped
// handle fires again. Consumers stamp downstream work with the
// generation so a tick from a cancelled handle can be recognized and
// dropped even when it was already in flight.
type Loop struct {
	period time.Duration
	fn     TickFunc

	mu   sync.Mutex
	gen  uint64
	stop chan struct{}
	done chan struct{}
}

// New returns a stopped loop firing fn tickRate times per second.
// Rates below 1 are raised to 1.
func New(tickRate int, fn TickFunc) *Loop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Loop{
		period: time.Second / time.Duration(tickRate),
		fn:     fn,
	}
}

// Start launches the ticker goroutine and returns its generation. If
// the loop is already running nothing new starts and the active
// generation is returned unchanged.
func (l *Loop) Start() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		return l.gen
	}
	l.gen++
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.run(l.gen, l.stop, l.done)
	return l.gen
}

// Stop cancels the active handle and waits for its goroutine to exit.
// Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	stop, done := l.stop, l.done
	l.stop, l.done = nil, nil
	l.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Restart stops the active handle, if any, and starts a fresh one.
func (l *Loop) Restart() uint64 {
	l.Stop()
	return l.Start()
}

// Gen returns the generation of the most recently started handle.
func (l *Loop) Gen() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Running reports whether a handle is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stop != nil
}

func (l *Loop) run(gen uint64, stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// A due tick and a closed stop can be ready together;
			// cancellation wins.
			select {
			case <-stop:
				return
			default:
			}
			l.fn(gen)
		}
	}
}
