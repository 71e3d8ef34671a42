package sim

import (
	"reflect"
	"testing"

	"github.com/ProneilS/flappyBird/internal/config"
)

// recordingObserver captures callback sequences for assertions.
type recordingObserver struct {
	phases []Phase // flattened from/to pairs
	scores []int
}

func (r *recordingObserver) PhaseChanged(from, to Phase) {
	r.phases = append(r.phases, from, to)
}

func (r *recordingObserver) ScoreChanged(score int) {
	r.scores = append(r.scores, score)
}

func initialSnapshot(cfg config.Config) Snapshot {
	return Snapshot{
		Tick:  0,
		Phase: PhaseMenu,
		Score: 0,
		Bird: BirdSnapshot{
			X:      cfg.Bird.X,
			Y:      cfg.Playfield.OpenHeight() / 2,
			Vel:    0,
			Radius: cfg.Bird.Radius,
		},
		Pipes: []PipeSnapshot{},
	}
}

func TestNewStartsInMenu(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, 1)

	got := s.Snapshot()
	want := initialSnapshot(cfg)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("initial snapshot = %+v, expected %+v", got, want)
	}
}

func TestMenuTicksAreNoOps(t *testing.T) {
	s := New(config.Default(), 1)

	before := s.Snapshot()
	for i := 0; i < 50; i++ {
		s.Step()
	}
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("menu ticks changed state: before %+v, after %+v", before, after)
	}
}

func TestFlapFromMenuStartsPlay(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, 1)

	s.Flap()

	if s.phase != PhasePlaying {
		t.Errorf("phase after menu flap = %v, expected playing", s.phase)
	}
	if s.bird.Vel != cfg.Physics.JumpImpulse {
		t.Errorf("velocity after menu flap = %v, expected the starting impulse %v",
			s.bird.Vel, cfg.Physics.JumpImpulse)
	}
}

// runToGameOver flaps once to start and lets the bird drop.
func runToGameOver(t *testing.T, s *Sim) {
	t.Helper()
	s.Flap()
	for i := 0; i < 10000 && s.phase == PhasePlaying; i++ {
		s.Step()
	}
	if s.phase != PhaseGameOver {
		t.Fatalf("phase after free fall = %v, expected game over", s.phase)
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	s := New(config.Default(), 42)
	runToGameOver(t, s)

	frozen := s.Snapshot()
	for i := 0; i < 100; i++ {
		s.Step()
	}

	if !reflect.DeepEqual(frozen, s.Snapshot()) {
		t.Errorf("game-over ticks changed state: %+v -> %+v", frozen, s.Snapshot())
	}
}

func TestFlapAfterGameOverResets(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, 42)
	runToGameOver(t, s)

	s.Flap()

	if s.phase != PhaseMenu {
		t.Errorf("phase after game-over flap = %v, expected menu, never straight back to playing", s.phase)
	}
	if !reflect.DeepEqual(s.Snapshot(), initialSnapshot(cfg)) {
		t.Errorf("snapshot after game-over flap = %+v, expected the initial state", s.Snapshot())
	}
}

func TestResetIdempotence(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name    string
		arrange func(t *testing.T, s *Sim)
	}{
		{
			name:    "from menu",
			arrange: func(t *testing.T, s *Sim) {},
		},
		{
			name: "mid play",
			arrange: func(t *testing.T, s *Sim) {
				s.Flap()
				for i := 0; i < 30; i++ {
					s.Step()
				}
			},
		},
		{
			name: "from game over",
			arrange: func(t *testing.T, s *Sim) {
				runToGameOver(t, s)
			},
		},
		{
			name: "reset twice",
			arrange: func(t *testing.T, s *Sim) {
				s.Flap()
				s.Reset()
			},
		},
	}

	want := initialSnapshot(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(cfg, 42)
			tt.arrange(t, s)

			s.Reset()

			if got := s.Snapshot(); !reflect.DeepEqual(got, want) {
				t.Errorf("post-reset snapshot = %+v, expected %+v", got, want)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed, same input script: every frame of two runs matches,
	// across game overs and the resets the script triggers.
	cfg := config.Default()
	seed := int64(12345)

	run := func() []Snapshot {
		s := New(cfg, seed)
		frames := make([]Snapshot, 0, 2000)
		for tick := 0; tick < 2000; tick++ {
			if tick%29 == 0 {
				s.Flap()
			}
			s.Step()
			frames = append(frames, s.Snapshot())
		}
		return frames
	}

	a, b := run(), run()
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("runs diverged at tick %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestObserverPhaseSequence(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, 1)
	rec := &recordingObserver{}
	s.SetObserver(rec)

	s.Flap()                                        // menu -> playing
	s.bird.Y = cfg.Playfield.OpenHeight()           // park on the ground
	s.Step()                                        // playing -> game over
	s.Flap()                                        // game over -> menu

	want := []Phase{
		PhaseMenu, PhasePlaying,
		PhasePlaying, PhaseGameOver,
		PhaseGameOver, PhaseMenu,
	}
	if !reflect.DeepEqual(rec.phases, want) {
		t.Errorf("phase transitions = %v, expected %v", rec.phases, want)
	}
}

func TestObserverScoreTotals(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = 1e-9
	cfg.Pipes.GapMargin = 130
	cfg.Pipes.SpawnInterval = 100000
	s := New(cfg, 1)
	rec := &recordingObserver{}
	s.SetObserver(rec)

	s.phase = PhasePlaying
	s.pipes = []Pipe{{X: 30, GapTop: 200}, {X: 150, GapTop: 240}}
	for i := 0; i < 200; i++ {
		s.Step()
	}

	want := []int{1, 2}
	if !reflect.DeepEqual(rec.scores, want) {
		t.Errorf("score callbacks = %v, expected %v", rec.scores, want)
	}
}

func TestSetObserverNil(t *testing.T) {
	s := New(config.Default(), 1)
	s.SetObserver(nil)

	// Must not panic on any event.
	s.Flap()
	s.bird.Y = s.cfg.Playfield.OpenHeight()
	s.Step()
	s.Flap()
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseMenu, "menu"},
		{PhasePlaying, "playing"},
		{PhaseGameOver, "game over"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(tt.phase), got, tt.want)
		}
	}
}
