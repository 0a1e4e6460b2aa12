package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/nekotune/pkg/llm"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LLM_PROVIDER", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL",
		"ANTHROPIC_API_KEY", "CLAUDE_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL",
		"NEKOTUNE_ADDR", "NEKOTUNE_MAX_SESSIONS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadGeminiDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, "legacy-key", cfg.APIKey)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultMaxSessions, cfg.MaxSessions)
}

func TestLoadPrefersGeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.APIKey)
	assert.Equal(t, map[string]string{"api_key": "gemini-key", "model": "gemini-2.5-flash"}, cfg.LLMOptions())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("NEKOTUNE_ADDR", "127.0.0.1:9000")
	t.Setenv("NEKOTUNE_MAX_SESSIONS", "8")

	cfg, err := Load("openai", "gpt-4.1")
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4.1", cfg.Model)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 8, cfg.MaxSessions)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	_, err := Load("", "")
	assert.ErrorContains(t, err, "GEMINI_API_KEY")

	_, err = Load("claude", "")
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")

	_, err = Load("bard", "")
	assert.Error(t, err)

	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("NEKOTUNE_MAX_SESSIONS", "lots")
	_, err = Load("", "")
	assert.ErrorContains(t, err, "NEKOTUNE_MAX_SESSIONS")
}
