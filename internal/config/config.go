// Package config provides YAML-based scene configuration loading for the
// parley platform.
package config

import (
	"errors"
	"fmt"
)

// SceneConfig contains all configuration for a scene.
type SceneConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Hero    EntityConfig  `yaml:"hero"`
	NPC     EntityConfig  `yaml:"npc"`
	Input   InputConfig   `yaml:"input"`
}

// WorldConfig defines the world rectangle and the floor plane, in pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FloorY float64 `yaml:"floor_y"`
}

// PhysicsConfig defines per-frame physics constants.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vertical velocity each frame
	JumpPower float64 `yaml:"jump_power"` // Upward velocity set by a jump
	MoveSpeed float64 `yaml:"move_speed"` // Horizontal pixels per frame while held
}

// EntityConfig defines an entity's spawn point and sprite.
type EntityConfig struct {
	Name   string  `yaml:"name"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
}

// InputConfig defines key bindings and key-release synthesis.
type InputConfig struct {
	// HoldReleaseMS is how long a movement key counts as held after its last
	// press or repeat. Terminals do not report key release.
	HoldReleaseMS int         `yaml:"hold_release_ms"`
	Keys          KeyBindings `yaml:"keys"`
}

// KeyBindings lists terminal key names for each action.
type KeyBindings struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Jump    []string `yaml:"jump"`
	Talk    []string `yaml:"talk"`
	Leave   []string `yaml:"leave"`
	Commit  []string `yaml:"commit"`
	Erase   []string `yaml:"erase"`
	History []string `yaml:"history"`
	Quit    []string `yaml:"quit"`
}

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a usable scene.
func (c SceneConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		bad("world size %vx%v must be positive", c.World.Width, c.World.Height)
	}
	if c.World.FloorY <= 0 || c.World.FloorY > c.World.Height {
		bad("floor_y %v must be inside the world", c.World.FloorY)
	}
	if c.Physics.Gravity < 0 {
		bad("gravity %v must not be negative", c.Physics.Gravity)
	}
	if c.Physics.JumpPower < 0 {
		bad("jump_power %v must not be negative", c.Physics.JumpPower)
	}
	if c.Physics.MoveSpeed < 0 {
		bad("move_speed %v must not be negative", c.Physics.MoveSpeed)
	}
	for _, e := range []struct {
		label string
		cfg   EntityConfig
	}{{"hero", c.Hero}, {"npc", c.NPC}} {
		if e.cfg.Width <= 0 || e.cfg.Height <= 0 {
			bad("%s size %vx%v must be positive", e.label, e.cfg.Width, e.cfg.Height)
		}
	}
	if c.Input.HoldReleaseMS <= 0 {
		bad("hold_release_ms %d must be positive", c.Input.HoldReleaseMS)
	}
	for name, keys := range c.Input.Keys.byName() {
		if len(keys) == 0 {
			bad("no keys bound to %s", name)
		}
	}

	return errors.Join(errs...)
}

func (k KeyBindings) byName() map[string][]string {
	return map[string][]string{
		"left":    k.Left,
		"right":   k.Right,
		"jump":    k.Jump,
		"talk":    k.Talk,
		"leave":   k.Leave,
		"commit":  k.Commit,
		"erase":   k.Erase,
		"history": k.History,
		"quit":    k.Quit,
	}
}
