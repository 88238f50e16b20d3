package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file name searched for on disk.
const FileName = "mathcade.yaml"

// SourceEmbedded is reported as the source when no file was found.
const SourceEmbedded = "embedded default"

// Load loads settings.
// Search order: customPath -> ~/.mathcade/config.yaml -> ./configs/mathcade.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadSource(customPath)
	return cfg, err
}

// LoadSource is Load that also reports which file the settings came from.
//
// A custom path must exist and parse. Files found on the search path that
// fail to parse or validate are skipped.
func LoadSource(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{UserConfigPath(), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Hardcoded fallback if the embed is broken
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults, applies the preset and
// validates the result. Unknown keys are rejected so typos surface.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("cannot parse settings: %w", err)
	}

	if cfg.Preset != "" {
		p, err := ParsePreset(cfg.Preset)
		if err != nil {
			return Default(), err
		}
		ApplyPreset(&cfg, p)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save validates cfg and writes it as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: cannot create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.mathcade/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathcade", "config.yaml")
}
