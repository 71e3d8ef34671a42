package sim

// Pipe is one obstacle pair: a top pipe ending at GapTop and a bottom
// pipe starting the configured gap height below it. Passed flips when
// the bird clears the pipe so each pipe scores at most once.
type Pipe struct {
	X      float64
	GapTop float64
	Passed bool
}

// movePipes shifts every pipe left by the pipe speed.
func (s *Sim) movePipes() {
	for i := range s.pipes {
		s.pipes[i].X -= s.cfg.Pipes.Speed
	}
}

// scorePipes awards one point for each pipe whose right edge has moved
// strictly left of the bird's left edge. Runs after movement.
func (s *Sim) scorePipes() {
	left := s.bird.X - s.bird.Radius
	for i := range s.pipes {
		if !s.pipes[i].Passed && s.pipes[i].X+s.cfg.Pipes.Width < left {
			s.pipes[i].Passed = true
			s.score++
			s.obs.ScoreChanged(s.score)
		}
	}
}

// retirePipes drops pipes whose right edge is past the retirement
// threshold left of the field. Order-preserving, in place.
func (s *Sim) retirePipes() {
	threshold := -s.cfg.Pipes.RetireMargin
	kept := s.pipes[:0]
	for _, p := range s.pipes {
		if p.X+s.cfg.Pipes.Width >= threshold {
			kept = append(kept, p)
		}
	}
	s.pipes = kept
}

// maybeSpawn creates one pipe at the right edge once the spawn timer
// has exceeded the interval and the newest pipe has cleared the
// minimum spacing. Both gates must open.
func (s *Sim) maybeSpawn() {
	if s.sinceSpawn <= s.cfg.Pipes.SpawnInterval {
		return
	}
	if n := len(s.pipes); n > 0 {
		if s.pipes[n-1].X >= s.cfg.Playfield.Width-s.cfg.Pipes.MinSpacing {
			return
		}
	}
	s.pipes = append(s.pipes, Pipe{X: s.cfg.Playfield.Width, GapTop: s.randomGapTop()})
	s.sinceSpawn = 0
}

// randomGapTop picks the gap's top edge uniformly between the margins.
// The range is clamped, so placement never leaves the playfield.
func (s *Sim) randomGapTop() float64 {
	lo := s.cfg.Pipes.GapMargin
	hi := s.cfg.Playfield.OpenHeight() - s.cfg.Pipes.GapHeight - s.cfg.Pipes.GapMargin
	if hi < lo {
		hi = lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
