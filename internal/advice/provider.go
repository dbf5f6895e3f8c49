package advice

import (
	"context"
	"encoding/json"
)

// Provider generates structured model output. The advice service is the
// only consumer; it always requests schema-constrained JSON.
type Provider interface {
	// Generate sends a prompt and returns the model's response. When the
	// request carries a Schema the returned Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Advice generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the reply against the definition.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name is kebab-case, e.g. "training-advice". Used as the tool name
	// for Anthropic and the schema name for OpenAI.
	Name string

	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, otherwise
	// the raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
