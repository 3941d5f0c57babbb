package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Assistant provider names
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
)

type Config struct {
	Provider string         `koanf:"provider"`
	Gemini   GeminiConfig   `koanf:"gemini"`
	DeepSeek DeepSeekConfig `koanf:"deepseek"`
	UI       UIConfig       `koanf:"ui"`
}

type GeminiConfig struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"`
}

type DeepSeekConfig struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"`
}

type UIConfig struct {
	ColoredOutput bool `koanf:"colored_output"`
	RenderWidth   int  `koanf:"render_width"`
}

// Load reads configuration in precedence order: built-in defaults, then the
// YAML config file (if it exists), then LEAFY_* environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// LEAFY_GEMINI_API_KEY -> gemini.api_key
	if err := k.Load(env.Provider("LEAFY_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "LEAFY_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// APIKey returns the configured key for the active provider.
func (c *Config) APIKey() string {
	switch c.Provider {
	case ProviderDeepSeek:
		return c.DeepSeek.APIKey
	default:
		return c.Gemini.APIKey
	}
}

// SetAPIKey overrides the active provider's key, e.g. with a keyring value.
func (c *Config) SetAPIKey(key string) {
	switch c.Provider {
	case ProviderDeepSeek:
		c.DeepSeek.APIKey = key
	default:
		c.Gemini.APIKey = key
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
