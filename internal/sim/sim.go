// Package sim implements the game simulation: a fixed-tick core with a
// three-phase state machine (menu, playing, game over), gravity-driven
// bird physics, procedurally spawned pipes, collision, and scoring.
//
// A Sim is a plain context object with no internal clock and no
// goroutines. The driver advances it by calling Step once per tick and
// routes every player input through Flap; tests drive it synchronously
// the same way.
package sim

import (
	"math/rand"

	"github.com/ProneilS/flappyBird/internal/config"
)

// Sim holds one game's complete state.
type Sim struct {
	cfg   config.Config
	phase Phase
	bird  Bird
	pipes []Pipe
	score int

	tick       uint64 // playing ticks since the last reset
	sinceSpawn int    // ticks since the last pipe spawn

	rng *rand.Rand
	obs Observer
}

// New returns a Sim in the menu phase. The seed fixes the gap
// sequence: equal config, seed, and call sequence reproduce a run
// exactly.
func New(cfg config.Config, seed int64) *Sim {
	s := &Sim{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		obs: nopObserver{},
	}
	s.resetState()
	return s
}

// SetObserver installs the callback sink. Nil restores the no-op sink.
func (s *Sim) SetObserver(o Observer) {
	if o == nil {
		s.obs = nopObserver{}
		return
	}
	s.obs = o
}

// Config returns the fixed constants the presentation layer draws with.
func (s *Sim) Config() config.Config { return s.cfg }

// Phase returns the active phase.
func (s *Sim) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Step advances the simulation one tick. Outside the playing phase it
// is a no-op: the menu bird hangs still and a finished run stays
// frozen for display.
func (s *Sim) Step() {
	if s.phase != PhasePlaying {
		return
	}
	s.tick++
	s.sinceSpawn++

	s.bird.fall(s.cfg.Physics.Gravity, s.cfg.Physics.MaxFallSpeed)
	s.movePipes()
	s.scorePipes()
	s.retirePipes()
	s.maybeSpawn()

	if Collides(s.bird, s.pipes, s.cfg) {
		s.setPhase(PhaseGameOver)
	}
}

// Flap handles one player input event. The effect depends on the
// phase: from the menu it starts play and doubles as the first
// impulse, during play it overrides the velocity, and after a game
// over it resets back to the menu.
func (s *Sim) Flap() {
	switch s.phase {
	case PhaseMenu:
		s.setPhase(PhasePlaying)
		s.bird.flap(s.cfg.Physics.JumpImpulse)
	case PhasePlaying:
		s.bird.flap(s.cfg.Physics.JumpImpulse)
	case PhaseGameOver:
		s.Reset()
	}
}

// Reset returns to the menu with the initial bird pose, no pipes, and
// a zero score. Resetting from any phase, the menu included, lands in
// the same state. The random stream is not reseeded; the next run
// continues it.
func (s *Sim) Reset() {
	old := s.phase
	s.resetState()
	if old != PhaseMenu {
		s.obs.PhaseChanged(old, PhaseMenu)
	}
}

func (s *Sim) resetState() {
	s.phase = PhaseMenu
	s.bird = Bird{
		X:      s.cfg.Bird.X,
		Y:      s.cfg.Playfield.OpenHeight() / 2,
		Vel:    0,
		Radius: s.cfg.Bird.Radius,
	}
	s.pipes = s.pipes[:0]
	s.score = 0
	s.tick = 0
	s.sinceSpawn = 0
}

func (s *Sim) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	old := s.phase
	s.phase = p
	s.obs.PhaseChanged(old, p)
}
