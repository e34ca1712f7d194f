package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"clil-ai/backend/internal/model"
)

// ProviderConfig holds what is needed to reach an OpenAI-compatible endpoint.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	// HTTPClient is optional; the library default is used when nil.
	HTTPClient *http.Client
}

type openAIProvider struct {
	client *openai.LLM
	model  string
}

// NewOpenAIProvider builds a provider on top of the langchaingo OpenAI client. The
// client is safe for concurrent use and is shared by all requests.
func NewOpenAIProvider(cfg ProviderConfig) (LLMProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
	}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, openai.WithHTTPClient(cfg.HTTPClient))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create openai client: %w", err)
	}
	return &openAIProvider{client: client, model: cfg.Model}, nil
}

func (p *openAIProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	resp, err := p.client.GenerateContent(ctx, toMessageContent(req.Messages), p.callOptions(req)...)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai: response contained no choices")
	}
	return &GenerateResponse{
		Model:   p.modelFor(req),
		Content: resp.Choices[0].Content,
	}, nil
}

func (p *openAIProvider) GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) error {
	defer close(ch)

	opts := append(p.callOptions(req), llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
		if len(chunk) == 0 {
			return nil
		}
		// Returning an error aborts the read and closes the upstream body.
		select {
		case ch <- StreamResponse{Content: string(chunk)}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}))

	if _, err := p.client.GenerateContent(ctx, toMessageContent(req.Messages), opts...); err != nil {
		return err
	}

	select {
	case ch <- StreamResponse{Done: true}:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (p *openAIProvider) callOptions(req *GenerateRequest) []llms.CallOption {
	opts := []llms.CallOption{llms.WithModel(p.modelFor(req))}
	if req.JSONMode {
		opts = append(opts, llms.WithJSONMode())
	}
	return opts
}

func (p *openAIProvider) modelFor(req *GenerateRequest) string {
	if req.Model != "" {
		return req.Model
	}
	return p.model
}

// toMessageContent maps our roles onto langchaingo's. Unknown roles are sent as
// user turns.
func toMessageContent(msgs []model.Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(msgs))
	for _, msg := range msgs {
		role := llms.ChatMessageTypeHuman
		switch msg.Role {
		case model.RoleSystem:
			role = llms.ChatMessageTypeSystem
		case model.RoleAssistant:
			role = llms.ChatMessageTypeAI
		}
		out = append(out, llms.TextParts(role, msg.Content))
	}
	return out
}
