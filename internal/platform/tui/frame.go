package tui

import (
	"fmt"

	"github.com/ProneilS/flappyBird/internal/config"
	"github.com/ProneilS/flappyBird/internal/core"
	"github.com/ProneilS/flappyBird/internal/sim"
)

// Visual characters for rendering
const (
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	grassChar     = '═'
	dirtChar      = '░'
	birdBody      = '●'
	birdLevel     = '▶'
	birdRising    = '▲'
	birdDiving    = '▼'
)

// Minimum cell grid for a playable field. Below this the frame shows a
// notice instead of the playfield.
const (
	minScreenW = 40
	minScreenH = 12
)

// drawFrame paints one simulation snapshot onto the screen buffer. The
// logical playfield is scaled to whatever cell grid the terminal offers.
func drawFrame(dst *core.Screen, snap sim.Snapshot, cfg config.Config) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightWhite)
		return
	}

	sx := float64(dst.Width()) / cfg.Playfield.Width
	sy := float64(dst.Height()) / cfg.Playfield.Height

	drawGround(dst, cfg, sy)
	for _, p := range snap.Pipes {
		drawPipe(dst, p, cfg, sx, sy)
	}
	drawBird(dst, snap.Bird, sx, sy)

	// HUD
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(2, 0, scoreText, core.ColorBrightWhite)

	switch snap.Phase {
	case sim.PhaseMenu:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Press Space to start")
	case sim.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space to continue", snap.Score))
	}
}

// drawGround renders the ground strip: a grass line on top, dirt below.
func drawGround(dst *core.Screen, cfg config.Config, sy float64) {
	top := core.Clamp(int(cfg.Playfield.OpenHeight()*sy), 0, dst.Height()-1)

	dst.DrawHLine(0, top, dst.Width(), grassChar, core.ColorBrightGreen)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), dirtChar, core.ColorYellow)
	}
}

// drawPipe renders a single pipe pair as filled columns with the gap open.
func drawPipe(dst *core.Screen, p sim.PipeSnapshot, cfg config.Config, sx, sy float64) {
	left := int(p.X * sx)
	right := int((p.X + cfg.Pipes.Width) * sx)
	if right <= left {
		right = left + 1
	}

	groundTop := int(cfg.Playfield.OpenHeight() * sy)
	gapTop := int(p.GapTop * sy)
	gapBottom := int((p.GapTop + cfg.Pipes.GapHeight) * sy)

	for x := left; x < right; x++ {
		// Top section (from ceiling down to the gap) with its cap
		for y := 0; y < gapTop; y++ {
			dst.SetCell(x, y, pipeChar, core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetCell(x, gapTop-1, pipeCapTop, core.ColorBrightGreen)
		}

		// Bottom section (from below the gap down to the ground) with its cap
		for y := gapBottom; y < groundTop; y++ {
			dst.SetCell(x, y, pipeChar, core.ColorGreen)
		}
		if gapBottom < groundTop {
			dst.SetCell(x, gapBottom, pipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawBird renders the bird as a body plus a beak glyph tilted by the
// current vertical velocity.
func drawBird(dst *core.Screen, b sim.BirdSnapshot, sx, sy float64) {
	cx := int(b.X * sx)
	cy := int(b.Y * sy)

	beak := birdLevel
	switch {
	case b.Vel < 0:
		beak = birdRising
	case b.Vel > 4:
		beak = birdDiving
	}

	dst.SetCell(cx-1, cy, birdBody, core.ColorBrightYellow)
	dst.SetCell(cx, cy, beak, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}
