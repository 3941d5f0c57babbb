package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"provider": "gemini",
		"gemini": map[string]interface{}{
			"api_key": "",
			"model":   "gemini-2.5-flash",
		},
		"deepseek": map[string]interface{}{
			"api_key": "",
			"model":   "deepseek-chat",
		},
		"ui": map[string]interface{}{
			"colored_output": true,
			"render_width":   80,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
