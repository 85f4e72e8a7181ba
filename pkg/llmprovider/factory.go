package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"day-planner/config"
	"day-planner/pkg/deepseek"
	"day-planner/pkg/gemini"
	"day-planner/pkg/log"
	"day-planner/pkg/qwen"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers are returned sorted by priority (ascending); disabled ones are
// filtered out and ones that fail to initialize are skipped with a warning.
func InitializeProviders(cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	ctx := context.Background()
	var providers []Provider
	var initErrors []string

	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d provider(s) failed, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch cfg.Name {
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client.WithTimeout(cfg.Timeout)), nil

	case "qwen", "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
