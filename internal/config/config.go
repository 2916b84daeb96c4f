// Package config owns the persisted settings record: the OpenAI API key and
// the title-casing option. Settings are loaded once at startup, merged with
// defaults, and written back whenever the settings form changes a field.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the OpenAI-compatible endpoint used unless overridden.
const DefaultBaseURL = "https://api.openai.com/v1"

// Settings is the persisted configuration record.
type Settings struct {
	OpenAIAPIKey    string `yaml:"open_ai_api_key"`   // stored encrypted at rest
	LowerCaseTitles bool   `yaml:"lower_case_titles"` // lower-case generated titles
	BaseURL         string `yaml:"base_url"`          // chat-completions endpoint
}

// Default returns the settings used when no file exists yet.
func Default() *Settings {
	return &Settings{
		OpenAIAPIKey:    "",
		LowerCaseTitles: false,
		BaseURL:         DefaultBaseURL,
	}
}

// DefaultPath returns the settings file location, honoring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "title-gen", "settings.yaml"), nil
}

// Load reads the settings file at path and merges it over the defaults.
// A missing file is not an error: settings are always present, defaulted
// when absent. The stored API key is decrypted; a key that fails decryption
// is kept as-is so plain-text keys in hand-edited files still work.
func Load(path string) (*Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read settings file '%s': %v", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings from '%s': %v", path, err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.OpenAIAPIKey != "" {
		decrypted, err := Decrypt(cfg.OpenAIAPIKey)
		if err == nil {
			cfg.OpenAIAPIKey = decrypted
		}
	}

	return cfg, nil
}

// Save writes the settings to path, creating parent directories as needed.
// The API key is encrypted before it touches disk.
func (s *Settings) Save(path string) error {
	out := *s
	if out.OpenAIAPIKey != "" {
		encrypted, err := Encrypt(out.OpenAIAPIKey)
		if err != nil {
			return fmt.Errorf("failed to encrypt API key: %w", err)
		}
		out.OpenAIAPIKey = encrypted
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file '%s': %w", path, err)
	}

	return nil
}
