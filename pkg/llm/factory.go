package llm

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// ParseProvider maps a flag or env value to a provider. Empty means Gemini.
func ParseProvider(raw string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return ProviderGemini, nil
	}
	available := NewFactory().GetAvailableProviders()
	if slices.Contains(available, p) {
		return p, nil
	}
	return "", fmt.Errorf("unsupported provider: %s (supported: %s)", raw, JoinProviders(available))
}

// JoinProviders renders providers as a comma separated list.
func JoinProviders(providers []Provider) string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Factory creates LLM instances based on provider
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// CreateLLM creates an LLM instance from an "api_key" and optional "model".
func (f *Factory) CreateLLM(ctx context.Context, provider Provider, config map[string]string) (LLM, error) {
	apiKey := config["api_key"]
	model := config["model"]

	switch provider {
	case ProviderGemini:
		if apiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		if model != "" {
			return NewGeminiWithModel(ctx, apiKey, model)
		}
		return NewGemini(ctx, apiKey)

	case ProviderClaude:
		if apiKey == "" {
			return nil, fmt.Errorf("Claude API key is required")
		}
		if model != "" {
			return NewClaudeWithModel(apiKey, model), nil
		}
		return NewClaude(apiKey), nil

	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		if model != "" {
			return NewOpenAIWithModel(apiKey, model), nil
		}
		return NewOpenAI(apiKey), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderGemini, ProviderClaude, ProviderOpenAI}
}
