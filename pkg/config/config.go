package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/helmcode/nekotune/pkg/llm"
)

const (
	DefaultAddr        = ":8080"
	DefaultMaxSessions = 256
)

type Config struct {
	Provider llm.Provider
	APIKey   string
	Model    string

	Addr        string
	MaxSessions int
}

// Load reads the environment, after a .env file if one exists. Non-empty
// overrides (from flags) win over the environment.
func Load(providerOverride, modelOverride string) (*Config, error) {
	_ = godotenv.Load()

	provider, err := llm.ParseProvider(firstNonEmpty(providerOverride, os.Getenv("LLM_PROVIDER")))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Provider:    provider,
		Addr:        firstNonEmpty(strings.TrimSpace(os.Getenv("NEKOTUNE_ADDR")), DefaultAddr),
		MaxSessions: DefaultMaxSessions,
	}
	if raw := os.Getenv("NEKOTUNE_MAX_SESSIONS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("NEKOTUNE_MAX_SESSIONS must be a positive integer, got %q", raw)
		}
		cfg.MaxSessions = n
	}

	switch provider {
	case llm.ProviderGemini:
		cfg.APIKey = firstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("API_KEY"))
		cfg.Model = firstNonEmpty(modelOverride, os.Getenv("GEMINI_MODEL"))
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case llm.ProviderClaude:
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		cfg.Model = firstNonEmpty(modelOverride, os.Getenv("CLAUDE_MODEL"))
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case llm.ProviderOpenAI:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model = firstNonEmpty(modelOverride, os.Getenv("OPENAI_MODEL"))
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}
	return cfg, nil
}

// LLMOptions is the factory configuration for the selected provider.
func (c *Config) LLMOptions() map[string]string {
	return map[string]string{"api_key": c.APIKey, "model": c.Model}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
