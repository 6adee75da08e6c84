package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SceneFile is the config file name looked up in the search directories.
const SceneFile = "scene.yaml"

// LoadScene loads scene configuration.
// Search order: customPath -> ~/.parley/configs/scene.yaml -> ./configs/scene.yaml -> embedded default.
// Files found in the search directories are layered over the defaults, so a
// partial file only needs the keys it changes. A customPath that cannot be
// read, parsed or validated is an error.
func LoadScene(customPath string) (SceneConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SceneConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SceneConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SceneConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(SceneFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", SceneFile)); ok {
		return cfg, nil
	}

	return Default(), nil
}

// Default returns the embedded default, falling back to the hardcoded one.
func Default() SceneConfig {
	var cfg SceneConfig
	if err := yaml.Unmarshal(defaultSceneYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSceneConfig()
	}
	return cfg
}

// parse layers YAML over the defaults.
func parse(data []byte) (SceneConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (SceneConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return SceneConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".parley", "configs", filename)
}
