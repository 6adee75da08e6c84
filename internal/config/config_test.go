package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if !reflect.DeepEqual(Default(), DefaultSceneConfig()) {
		t.Errorf("embedded default differs from DefaultSceneConfig():\n%+v\n%+v", Default(), DefaultSceneConfig())
	}
	if err := DefaultSceneConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultHoldOutlastsAutoRepeatDelay(t *testing.T) {
	// Initial auto-repeat delay is about 500ms on Windows and 660ms on X11.
	if got := Default().Input.HoldReleaseMS; got < 700 {
		t.Errorf("hold_release_ms = %d, expected at least 700", got)
	}
}

func TestLoadSceneCustomPathOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
physics:
  gravity: 0.8
npc:
  name: "Witch"
input:
  keys:
    talk: ["t"]
`)

	cfg, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpPower != 12 {
		t.Errorf("JumpPower = %v, expected default 12", cfg.Physics.JumpPower)
	}
	if cfg.NPC.Name != "Witch" || cfg.NPC.SpawnX != 600 {
		t.Errorf("NPC = %+v, expected Witch at default spawn", cfg.NPC)
	}
	if !reflect.DeepEqual(cfg.Input.Keys.Talk, []string{"t"}) {
		t.Errorf("Talk keys = %v, expected [t]", cfg.Input.Keys.Talk)
	}
	if !reflect.DeepEqual(cfg.Input.Keys.Leave, []string{"esc"}) {
		t.Errorf("Leave keys = %v, expected default [esc]", cfg.Input.Keys.Leave)
	}
}

func TestLoadSceneCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadScene(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := writeFile(t, dir, "broken.yaml", "world: [1, 2")
	if _, err := LoadScene(broken); err == nil {
		t.Error("expected error for unparsable custom config")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "world:\n  floor_y: 900\n")
	_, err := LoadScene(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSceneSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	// Nothing on disk: embedded default
	cfg, err := LoadScene("")
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected embedded 0.5", cfg.Physics.Gravity)
	}

	// Local configs directory
	writeFile(t, work, filepath.Join("configs", SceneFile), "physics:\n  gravity: 0.7\n")
	cfg, _ = LoadScene("")
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("Gravity = %v, expected local 0.7", cfg.Physics.Gravity)
	}

	// User directory wins over local
	writeFile(t, home, filepath.Join(".parley", "configs", SceneFile), "physics:\n  gravity: 0.9\n")
	cfg, _ = LoadScene("")
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("Gravity = %v, expected user 0.9", cfg.Physics.Gravity)
	}

	// Broken user file is skipped
	writeFile(t, home, filepath.Join(".parley", "configs", SceneFile), "physics: {gravity: -1}\n")
	cfg, _ = LoadScene("")
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("Gravity = %v, expected fallback to local 0.7", cfg.Physics.Gravity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SceneConfig)
	}{
		{"zero world width", func(c *SceneConfig) { c.World.Width = 0 }},
		{"floor below world", func(c *SceneConfig) { c.World.FloorY = c.World.Height + 1 }},
		{"negative gravity", func(c *SceneConfig) { c.Physics.Gravity = -0.1 }},
		{"negative jump", func(c *SceneConfig) { c.Physics.JumpPower = -1 }},
		{"negative speed", func(c *SceneConfig) { c.Physics.MoveSpeed = -1 }},
		{"zero hero height", func(c *SceneConfig) { c.Hero.Height = 0 }},
		{"zero npc width", func(c *SceneConfig) { c.NPC.Width = 0 }},
		{"negative hold", func(c *SceneConfig) { c.Input.HoldReleaseMS = -5 }},
		{"zero hold", func(c *SceneConfig) { c.Input.HoldReleaseMS = 0 }},
		{"unbound commit", func(c *SceneConfig) { c.Input.Keys.Commit = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSceneConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
