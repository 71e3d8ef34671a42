package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const localConfigName = "flappybird.yaml"

// Load returns the game configuration, validated.
// Search order: customPath -> ~/.flappybird/config.yaml -> ./flappybird.yaml
// -> built-in defaults. Files overlay the defaults, so a partial file only
// overrides the keys it sets. An unreadable or malformed file from the
// implicit search locations is skipped; an explicit customPath is not.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (from %s)", err, customPath)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), localConfigName} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := Default()
		if err := yaml.Unmarshal(data, &layered); err != nil {
			continue
		}
		if err := layered.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (from %s)", err, path)
		}
		return layered, nil
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config location, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappybird", "config.yaml")
}
