package llm

import (
	"context"

	"clil-ai/backend/internal/model"
)

// GenerateRequest is a single completion call.
type GenerateRequest struct {
	Model    string
	Messages []model.Message
	// JSONMode asks the provider to constrain the output to a JSON object.
	JSONMode bool
}

type GenerateResponse struct {
	Model   string
	Content string
}

// StreamResponse is one chunk of a streaming completion.
type StreamResponse struct {
	Content string
	Done    bool
	Error   string
}

// LLMProvider defines the interface for interacting with a language model.
// GenerateStream owns ch and closes it before returning.
type LLMProvider interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) error
}
