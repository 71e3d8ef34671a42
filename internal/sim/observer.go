package sim

// Observer receives simulation callbacks. Calls are synchronous, fire
// inside Step, Flap, and Reset, and only on actual changes.
// Implementations must not call back into the Sim.
type Observer interface {
	// PhaseChanged fires on every transition, the reset to menu included.
	PhaseChanged(from, to Phase)
	// ScoreChanged fires once per passed pipe with the new total.
	ScoreChanged(score int)
}

type nopObserver struct{}

func (nopObserver) PhaseChanged(Phase, Phase) {}
func (nopObserver) ScoreChanged(int)          {}
