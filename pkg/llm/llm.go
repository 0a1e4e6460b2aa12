package llm

import (
	"context"

	"google.golang.org/genai"
)

// Request is one structured-output call. Schema is honored natively by
// providers that support it; the prompt always describes the JSON shape too.
type Request struct {
	Prompt string
	Schema *genai.Schema
}

// LLM is a generative service that answers a prompt with JSON text.
type LLM interface {
	Chat(ctx context.Context, req Request) (string, error)
	Model() string
}

const jsonOnly = "Respond with a single JSON object and nothing else."
