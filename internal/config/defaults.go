package config

import (
	_ "embed"
)

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultSceneConfig returns the default scene configuration.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		World: WorldConfig{
			Width:  1000,
			Height: 800,
			FloorY: 700,
		},
		Physics: PhysicsConfig{
			Gravity:   0.5,
			JumpPower: 12,
			MoveSpeed: 5,
		},
		Hero: EntityConfig{
			Name:   "YOU",
			SpawnX: 100,
			SpawnY: 100,
			Width:  50,
			Height: 100,
			Glyph:  "@",
		},
		NPC: EntityConfig{
			Name:   "Mage",
			SpawnX: 600,
			SpawnY: 100,
			Width:  70,
			Height: 140,
			Glyph:  "M",
		},
		Input: InputConfig{
			HoldReleaseMS: 700,
			Keys: KeyBindings{
				Left:    []string{"a", "left"},
				Right:   []string{"d", "right"},
				Jump:    []string{" ", "w", "up"},
				Talk:    []string{"tab"},
				Leave:   []string{"esc"},
				Commit:  []string{"enter"},
				Erase:   []string{"backspace"},
				History: []string{"h"},
				Quit:    []string{"q"},
			},
		},
	}
}
