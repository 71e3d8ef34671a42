package tui

import (
	"strings"
	"testing"

	"github.com/ProneilS/flappyBird/internal/config"
	"github.com/ProneilS/flappyBird/internal/core"
	"github.com/ProneilS/flappyBird/internal/sim"
)

// 48x16 cells against the default 480x640 playfield gives exact scale
// factors (0.1 horizontal, 0.025 vertical), so cell positions below are
// exact.
func testScreen() *core.Screen {
	return core.NewScreen(48, 16)
}

func menuSnapshot(cfg config.Config) sim.Snapshot {
	return sim.New(cfg, 1).Snapshot()
}

func TestDrawFrameMenuOverlay(t *testing.T) {
	cfg := config.Default()
	s := testScreen()

	drawFrame(s, menuSnapshot(cfg), cfg)

	// Overlay box is 5 rows centered vertically; title sits on row 6
	if !strings.Contains(s.Row(6), "FLAPPY BIRD") {
		t.Errorf("menu overlay missing, row 6 = %q", s.Row(6))
	}
	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("HUD missing, row 0 = %q", s.Row(0))
	}
}

func TestDrawFrameGround(t *testing.T) {
	cfg := config.Default()
	s := testScreen()

	drawFrame(s, menuSnapshot(cfg), cfg)

	// Open playfield is 560 of 640 logical units: ground starts at row 14
	if s.Get(0, 14) != grassChar {
		t.Errorf("Get(0, 14) = %q, expected grass", s.Get(0, 14))
	}
	if s.Get(0, 15) != dirtChar {
		t.Errorf("Get(0, 15) = %q, expected dirt", s.Get(0, 15))
	}
}

func TestDrawFrameBird(t *testing.T) {
	cfg := config.Default()
	s := testScreen()

	drawFrame(s, menuSnapshot(cfg), cfg)

	// Bird rests at logical (100, 280): cells (10, 7), body one to the left
	if s.Get(9, 7) != birdBody {
		t.Errorf("Get(9, 7) = %q, expected bird body", s.Get(9, 7))
	}
	if s.Get(10, 7) != birdLevel {
		t.Errorf("Get(10, 7) = %q, expected level beak", s.Get(10, 7))
	}
	if s.GetCell(10, 7).Color != core.ColorBrightYellow {
		t.Error("bird should be drawn bright yellow")
	}
}

func TestDrawFrameBeakTilt(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		vel  float64
		want rune
	}{
		{"rising", -6, birdRising},
		{"level", 1, birdLevel},
		{"diving", 9, birdDiving},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testScreen()
			snap := sim.Snapshot{
				Phase: sim.PhasePlaying,
				Bird:  sim.BirdSnapshot{X: 100, Y: 280, Vel: tc.vel, Radius: 20},
			}
			drawFrame(s, snap, cfg)

			if s.Get(10, 7) != tc.want {
				t.Errorf("beak at vel %v = %q, expected %q", tc.vel, s.Get(10, 7), tc.want)
			}
		})
	}
}

func TestDrawFramePipes(t *testing.T) {
	cfg := config.Default()
	s := testScreen()

	snap := sim.Snapshot{
		Phase: sim.PhasePlaying,
		Bird:  sim.BirdSnapshot{X: 100, Y: 280, Radius: 20},
		Pipes: []sim.PipeSnapshot{{X: 240, GapTop: 200}},
	}
	drawFrame(s, snap, cfg)

	// Pipe spans columns 24..29; the gap leaves rows 5..8 open
	if s.Get(24, 0) != pipeChar {
		t.Errorf("Get(24, 0) = %q, expected pipe", s.Get(24, 0))
	}
	if s.Get(24, 4) != pipeCapTop {
		t.Errorf("Get(24, 4) = %q, expected top cap", s.Get(24, 4))
	}
	if s.Get(24, 7) != ' ' {
		t.Errorf("Get(24, 7) = %q, expected open gap", s.Get(24, 7))
	}
	if s.Get(24, 9) != pipeCapBottom {
		t.Errorf("Get(24, 9) = %q, expected bottom cap", s.Get(24, 9))
	}
	if s.Get(24, 13) != pipeChar {
		t.Errorf("Get(24, 13) = %q, expected pipe", s.Get(24, 13))
	}
	if s.Get(29, 0) != pipeChar {
		t.Error("pipe should extend through column 29")
	}
	if s.Get(30, 0) == pipeChar {
		t.Error("pipe should stop before column 30")
	}
}

func TestDrawFrameGameOverOverlay(t *testing.T) {
	cfg := config.Default()
	s := testScreen()

	snap := sim.Snapshot{
		Phase: sim.PhaseGameOver,
		Score: 3,
		Bird:  sim.BirdSnapshot{X: 100, Y: 540, Radius: 20},
	}
	drawFrame(s, snap, cfg)

	if !strings.Contains(s.Row(6), "GAME OVER") {
		t.Errorf("game over overlay missing, row 6 = %q", s.Row(6))
	}
	if !strings.Contains(s.Row(8), "Score: 3") {
		t.Errorf("final score missing, row 8 = %q", s.Row(8))
	}
}

func TestDrawFrameTooSmall(t *testing.T) {
	cfg := config.Default()
	s := core.NewScreen(20, 6)

	drawFrame(s, menuSnapshot(cfg), cfg)

	if !strings.Contains(s.Row(3), "too small") {
		t.Errorf("expected size notice, row 3 = %q", s.Row(3))
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(10, 4)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("RenderScreen produced %d newlines, expected 3", got)
	}
}

func TestRenderScreenKeepsRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("same-color runs should stay contiguous, got %q", out)
	}
}
