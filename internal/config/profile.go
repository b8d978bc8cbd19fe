package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile carries optional widget presentation and assistant overrides
// loaded from a YAML file. Env values win unless the profile sets a
// non-empty field.
type Profile struct {
	Title        string `yaml:"title"`
	Greeting     string `yaml:"greeting"`
	SystemPrompt string `yaml:"system_prompt"`
	Model        string `yaml:"model"`
}

// LoadProfile parses the yaml file at the provided path.
func LoadProfile(path string) (*Profile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("profile path is empty")
	}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read profile %q: %w", cleanPath, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse profile %q: %w", cleanPath, err)
	}

	profile.Title = strings.TrimSpace(profile.Title)
	profile.Greeting = strings.TrimSpace(profile.Greeting)
	profile.SystemPrompt = strings.TrimSpace(profile.SystemPrompt)
	profile.Model = strings.TrimSpace(profile.Model)

	return &profile, nil
}
