package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider("")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, p)

	p, err = ParseProvider(" OpenAI ")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p)

	_, err = ParseProvider("llama")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported: gemini, claude, openai")
}

func TestFactoryRequiresKey(t *testing.T) {
	f := NewFactory()
	for _, p := range f.GetAvailableProviders() {
		_, err := f.CreateLLM(context.Background(), p, map[string]string{})
		assert.Error(t, err, p)
	}
	_, err := f.CreateLLM(context.Background(), "mistral", map[string]string{"api_key": "k"})
	assert.Error(t, err)
}

func TestFactoryModels(t *testing.T) {
	f := NewFactory()
	l, err := f.CreateLLM(context.Background(), ProviderClaude, map[string]string{"api_key": "k"})
	require.NoError(t, err)
	assert.Equal(t, defaultClaudeModel, l.Model())

	l, err = f.CreateLLM(context.Background(), ProviderOpenAI, map[string]string{"api_key": "k", "model": "gpt-4.1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", l.Model())
}

func TestClaudeChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, jsonOnly, body["system"])
		_, _ = w.Write([]byte(`{"content":[{"text":"{\"ok\":true}"}]}`))
	}))
	defer srv.Close()

	c := NewClaude("secret")
	c.baseURL = srv.URL
	out, err := c.Chat(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
}

func TestOpenAIChatErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`slow down`))
	}))
	defer srv.Close()

	o := NewOpenAI("secret")
	o.baseURL = srv.URL
	_, err := o.Chat(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestOpenAIChatEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	o := NewOpenAI("secret")
	o.baseURL = srv.URL
	_, err := o.Chat(context.Background(), Request{Prompt: "hi"})
	assert.EqualError(t, err, "empty response from OpenAI")
}

func TestGeminiChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gen, ok := body["generationConfig"].(map[string]interface{})
		require.True(t, ok, "generationConfig missing")
		assert.Equal(t, "application/json", gen["responseMimeType"])
		respSchema, ok := gen["responseSchema"].(map[string]interface{})
		require.True(t, ok, "responseSchema missing")
		assert.Contains(t, respSchema["properties"], "logFidelity")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":"},{"text":"true}"}]}}]}`))
	}))
	defer srv.Close()

	g, err := newGemini(context.Background(), "secret", "gemini-test", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", g.Model())

	out, err := g.Chat(context.Background(), Request{
		Prompt: "hi",
		Schema: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"logFidelity": {Type: genai.TypeString}},
			Required:   []string{"logFidelity"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
}

func TestGeminiChatEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	g, err := newGemini(context.Background(), "secret", "gemini-test", srv.URL)
	require.NoError(t, err)
	_, err = g.Chat(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, errEmptyGemini)
}
