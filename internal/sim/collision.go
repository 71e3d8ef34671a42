package sim

import "github.com/ProneilS/flappyBird/internal/config"

// Collides reports whether the bird touches the ground, the ceiling,
// or any pipe. Ground and ceiling contact are inclusive. The circular
// bird is approximated by its axis-aligned bounds against the pipe
// rectangles, so a grazing corner counts as a hit even where a true
// circle test would miss. Pure function; safe to call in any phase.
func Collides(bird Bird, pipes []Pipe, cfg config.Config) bool {
	if bird.Y+bird.Radius >= cfg.Playfield.OpenHeight() {
		return true
	}
	if bird.Y-bird.Radius <= 0 {
		return true
	}
	for _, p := range pipes {
		if bird.X+bird.Radius > p.X && bird.X-bird.Radius < p.X+cfg.Pipes.Width {
			if bird.Y-bird.Radius < p.GapTop || bird.Y+bird.Radius > p.GapTop+cfg.Pipes.GapHeight {
				return true
			}
		}
	}
	return false
}
