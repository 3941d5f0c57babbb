package botanist

import (
	"context"
	"fmt"

	"github.com/leafyapp/leafy/internal/config"
)

// NewProvider creates a Provider based on the configuration.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGeminiProvider(ctx, cfg.Gemini)

	case config.ProviderDeepSeek:
		return NewDeepSeekProvider(cfg.DeepSeek)

	default:
		return nil, fmt.Errorf("unknown provider %q (supported: %s, %s)",
			cfg.Provider, config.ProviderGemini, config.ProviderDeepSeek)
	}
}
