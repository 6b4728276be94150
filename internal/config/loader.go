package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.platformer/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps the
// variant's default.
func Load(v Variant, customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(v, customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	filename := string(v) + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := LoadFile(v, userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(v, filepath.Join("configs", filename)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default(v)
	if err := yaml.Unmarshal(GetDefaultYAML(v), &cfg); err != nil {
		return Default(v), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a YAML file layered over the variant's defaults.
func LoadFile(v Variant, path string) (PlatformerConfig, error) {
	cfg := Default(v)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
