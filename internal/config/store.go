package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/profile"
)

// Load reads the profile store at path. A missing or empty file yields an
// empty config so the first add can create it.
func Load(path string) (profile.Config, error) {
	content, err := ReadConfigFile(path)
	if err != nil {
		return profile.Config{}, apperr.IO("read config", fmt.Errorf("%s: %w", path, err))
	}
	if strings.TrimSpace(content) == "" {
		return profile.NewConfig(), nil
	}

	var cfg profile.Config
	if err := json.Unmarshal([]byte(content), &cfg); err != nil {
		return profile.Config{}, apperr.Validation("parse config", err,
			fmt.Sprintf("Failed to parse config file, %s", path),
			"Fix the JSON by hand or move the file aside to start over",
		)
	}
	return normalize(cfg), nil
}

// Save writes cfg to path as indented JSON
func Save(path string, cfg profile.Config) error {
	data, err := json.MarshalIndent(normalize(cfg), "", "  ")
	if err != nil {
		return apperr.IO("encode config", err)
	}
	if err := WriteConfigFile(path, string(data)+"\n"); err != nil {
		return apperr.IO("write config", fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

// normalize replaces nil slices so they are written as [] rather than null
func normalize(cfg profile.Config) profile.Config {
	if cfg.Profiles == nil {
		cfg.Profiles = []profile.Profile{}
	}
	if cfg.DefaultProfile.Definitions == nil {
		cfg.DefaultProfile.Definitions = []profile.Definition{}
	}
	profiles := make([]profile.Profile, 0, len(cfg.Profiles))
	for _, p := range cfg.Profiles {
		if p.Definitions == nil {
			p.Definitions = []profile.Definition{}
		}
		profiles = append(profiles, p)
	}
	cfg.Profiles = profiles
	return cfg
}

// ReadConfigFile reads the content of the file at the given path
func ReadConfigFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// WriteConfigFile writes the content to the file at the given path
func WriteConfigFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
