// Package config provides YAML-based configuration loading and
// validation for the game's fixed constants.
package config

import "fmt"

// Config contains every fixed constant the simulation and the
// presentation layer consume. Values are set at load time and never
// change during play.
type Config struct {
	Playfield Playfield `yaml:"playfield"`
	Bird      Bird      `yaml:"bird"`
	Physics   Physics   `yaml:"physics"`
	Pipes     Pipes     `yaml:"pipes"`
}

// Playfield defines the logical simulation area. Height includes the
// ground strip; the open region spans [0, Height-GroundHeight).
type Playfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// Bird defines the player's fixed horizontal position and collision radius.
type Bird struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// Physics defines vertical motion parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"` // negative = upward
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// Pipes defines obstacle geometry and spawn cadence.
type Pipes struct {
	Width         float64 `yaml:"width"`
	GapHeight     float64 `yaml:"gap_height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks the spawn timer must exceed
	MinSpacing    float64 `yaml:"min_spacing"`
	GapMargin     float64 `yaml:"gap_margin"`    // gap distance from ceiling and ground
	RetireMargin  float64 `yaml:"retire_margin"` // pipes vanish this far past the left edge
}

// OpenHeight returns the height of the playable region above the ground.
func (p Playfield) OpenHeight() float64 {
	return p.Height - p.GroundHeight
}

// Validate checks that the configuration describes a playable field.
// The gap bound guarantees random gap placement can never exceed the
// playfield, so spawning needs no runtime range check.
func (c Config) Validate() error {
	if c.Playfield.Width <= 0 {
		return fmt.Errorf("config: playfield.width %v must be positive", c.Playfield.Width)
	}
	if c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield.height %v must be positive", c.Playfield.Height)
	}
	if c.Playfield.GroundHeight < 0 {
		return fmt.Errorf("config: playfield.ground_height %v must not be negative", c.Playfield.GroundHeight)
	}
	if c.Playfield.GroundHeight >= c.Playfield.Height {
		return fmt.Errorf("config: playfield.ground_height %v must be less than playfield.height %v",
			c.Playfield.GroundHeight, c.Playfield.Height)
	}
	if c.Bird.Radius <= 0 {
		return fmt.Errorf("config: bird.radius %v must be positive", c.Bird.Radius)
	}
	if c.Bird.X-c.Bird.Radius < 0 || c.Bird.X+c.Bird.Radius > c.Playfield.Width {
		return fmt.Errorf("config: bird.x %v with radius %v leaves the playfield", c.Bird.X, c.Bird.Radius)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: physics.gravity %v must be positive", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: physics.jump_impulse %v must be negative", c.Physics.JumpImpulse)
	}
	if c.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: physics.max_fall_speed %v must be positive", c.Physics.MaxFallSpeed)
	}
	if c.Pipes.Width <= 0 {
		return fmt.Errorf("config: pipes.width %v must be positive", c.Pipes.Width)
	}
	if c.Pipes.GapHeight <= 0 {
		return fmt.Errorf("config: pipes.gap_height %v must be positive", c.Pipes.GapHeight)
	}
	if c.Pipes.Speed <= 0 {
		return fmt.Errorf("config: pipes.speed %v must be positive", c.Pipes.Speed)
	}
	if c.Pipes.SpawnInterval <= 0 {
		return fmt.Errorf("config: pipes.spawn_interval %v must be positive", c.Pipes.SpawnInterval)
	}
	if c.Pipes.MinSpacing < 0 {
		return fmt.Errorf("config: pipes.min_spacing %v must not be negative", c.Pipes.MinSpacing)
	}
	if c.Pipes.GapMargin < 0 {
		return fmt.Errorf("config: pipes.gap_margin %v must not be negative", c.Pipes.GapMargin)
	}
	if c.Pipes.RetireMargin < 0 {
		return fmt.Errorf("config: pipes.retire_margin %v must not be negative", c.Pipes.RetireMargin)
	}
	if c.Pipes.GapHeight+2*c.Pipes.GapMargin > c.Playfield.OpenHeight() {
		return fmt.Errorf("config: gap_height %v with gap_margin %v does not fit the open playfield height %v",
			c.Pipes.GapHeight, c.Pipes.GapMargin, c.Playfield.OpenHeight())
	}
	return nil
}
