// Package tui provides the Bubble Tea front end for the game.
// It owns the terminal session, input mapping, and frame rendering,
// and bridges scheduler ticks into the update loop.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ProneilS/flappyBird/internal/loop"
)

// TickMsg asks the model to advance the simulation by one step.
// Gen identifies the scheduler handle that produced the tick; ticks
// stamped with a stale generation are dropped.
type TickMsg struct {
	Gen uint64
}

// forwardTick bridges scheduler callbacks into the tick channel without
// ever blocking the scheduler. When the model is still busy with the
// previous frame, the tick is dropped (a skipped frame).
func forwardTick(ch chan<- TickMsg) loop.TickFunc {
	return func(gen uint64) {
		select {
		case ch <- TickMsg{Gen: gen}:
		default:
		}
	}
}

// listenForTicks waits for the next scheduler tick.
func listenForTicks(ch <-chan TickMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
