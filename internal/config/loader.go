package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file searched for in the user and local config dirs.
const ConfigFileName = "creek.yaml"

// LoadCreek loads the Fuze Creek configuration.
// Search order: customPath -> ~/.fuzecreek/configs/creek.yaml -> ./configs/creek.yaml -> embedded default
// Files are applied over the defaults, so they only need the keys they change.
func LoadCreek(customPath string) (CreekConfig, error) {
	cfg, _, err := LoadCreekWithSource(customPath)
	return cfg, err
}

// LoadCreekWithSource is LoadCreek that also reports where the configuration
// came from: a file path, or "embedded".
func LoadCreekWithSource(customPath string) (CreekConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CreekConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCreek(data)
		if err != nil {
			return CreekConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return CreekConfig{}, "", fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files there are skipped.
	for _, path := range []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseCreek(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCreek(defaultCreekYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultCreekConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// parseCreek decodes YAML over the built-in defaults.
func parseCreek(data []byte) (CreekConfig, error) {
	cfg := DefaultCreekConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CreekConfig{}, err
	}
	return cfg, nil
}

// MarshalCreek encodes cfg as YAML.
func MarshalCreek(cfg CreekConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fuzecreek", "configs", filename)
}
