package config

import (
	_ "embed"
)

//go:embed defaults/flappybird.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/flappybird.yaml byte for byte in meaning; the loader overlays
// user files on top of this.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:        480,
			Height:       640,
			GroundHeight: 80,
		},
		Bird: Bird{
			X:      100,
			Radius: 20,
		},
		Physics: Physics{
			Gravity:      0.6,
			JumpImpulse:  -10,
			MaxFallSpeed: 12,
		},
		Pipes: Pipes{
			Width:         60,
			GapHeight:     180,
			Speed:         3,
			SpawnInterval: 120,
			MinSpacing:    200,
			GapMargin:     40,
			RetireMargin:  10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, suitable
// for printing as a starting point for user edits.
func DefaultYAML() []byte {
	return defaultYAML
}
