package sim

// Snapshot is a read-only copy of the visible simulation state. It
// shares no memory with the live Sim, so the presentation layer can
// hold one across frames.
type Snapshot struct {
	Tick  uint64
	Phase Phase
	Score int
	Bird  BirdSnapshot
	Pipes []PipeSnapshot
}

// BirdSnapshot mirrors the bird pose. Vel rides along so a renderer
// can tilt the glyph with the motion.
type BirdSnapshot struct {
	X      float64
	Y      float64
	Vel    float64
	Radius float64
}

// PipeSnapshot mirrors one pipe. The gap's bottom edge sits at GapTop
// plus the configured gap height.
type PipeSnapshot struct {
	X      float64
	GapTop float64
}

// Snapshot returns the current frame's view of the simulation. Pipes
// is non-nil even when empty, so snapshots compare stably.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.tick,
		Phase: s.phase,
		Score: s.score,
		Bird: BirdSnapshot{
			X:      s.bird.X,
			Y:      s.bird.Y,
			Vel:    s.bird.Vel,
			Radius: s.bird.Radius,
		},
		Pipes: make([]PipeSnapshot, 0, len(s.pipes)),
	}
	for _, p := range s.pipes {
		snap.Pipes = append(snap.Pipes, PipeSnapshot{X: p.X, GapTop: p.GapTop})
	}
	return snap
}
