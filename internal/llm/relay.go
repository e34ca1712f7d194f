package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "clil-ai/backend/internal/errors"
	"clil-ai/backend/internal/model"
)

// StreamErrorMarker prefixes the final fragment of a stream that failed.
const StreamErrorMarker = "Error: "

// ErrInvalidMode is returned when a blocking call is asked to stream.
var ErrInvalidMode = errors.New("invalid relay mode")

// Mode selects how the relay talks to the provider.
type Mode int

const (
	// ModeJSON is a blocking call constrained to a JSON object.
	ModeJSON Mode = iota
	// ModeText is a blocking call with free-form output.
	ModeText
	// ModeStream delivers the output as a sequence of fragments.
	ModeStream
)

func (m Mode) String() string {
	switch m {
	case ModeJSON:
		return "json"
	case ModeText:
		return "text"
	case ModeStream:
		return "stream"
	default:
		return "unknown"
	}
}

// ProviderError is a normalized completion failure. Its message is the cause's
// message, unchanged.
type ProviderError struct {
	CallID string
	Err    error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }

// Is lets callers match any provider failure against app_errors.ErrProvider.
func (e *ProviderError) Is(target error) bool { return target == app_errors.ErrProvider }

// Relay sends assembled conversations to the completion provider. It never retries.
type Relay struct {
	provider LLMProvider
	model    string
}

func NewRelay(provider LLMProvider, model string) *Relay {
	return &Relay{provider: provider, model: model}
}

// Complete performs a blocking call and returns the message content as an opaque
// string. JSON output is requested but never parsed here.
func (r *Relay) Complete(ctx context.Context, template string, msgs []model.Message, mode Mode) (string, error) {
	if mode != ModeJSON && mode != ModeText {
		return "", ErrInvalidMode
	}

	callID := uuid.NewString()
	logger := slog.With("call_id", callID, "template", template, "mode", mode.String(), "model", r.model)
	logger.Debug("Sending completion request", "messages", len(msgs))

	start := time.Now()
	resp, err := r.provider.Generate(ctx, &GenerateRequest{
		Model:    r.model,
		Messages: msgs,
		JSONMode: mode == ModeJSON,
	})
	if err != nil {
		logger.Warn("Completion request failed", "error", err, "duration", time.Since(start))
		return "", &ProviderError{CallID: callID, Err: err}
	}

	logger.Info("Completion request finished", "duration", time.Since(start), "length", len(resp.Content))
	return resp.Content, nil
}

// Stream forwards provider fragments to out in arrival order and closes out when
// the stream ends. A failure becomes one final fragment starting with
// StreamErrorMarker. Once ctx is cancelled nothing more is sent; the provider
// channel is drained so the provider can release its connection.
func (r *Relay) Stream(ctx context.Context, template string, msgs []model.Message, out chan<- string) {
	defer close(out)

	callID := uuid.NewString()
	logger := slog.With("call_id", callID, "template", template, "mode", ModeStream.String(), "model", r.model)
	logger.Debug("Opening completion stream", "messages", len(msgs))

	start := time.Now()
	chunks := make(chan StreamResponse)
	errc := make(chan error, 1)
	go func() {
		errc <- r.provider.GenerateStream(ctx, &GenerateRequest{Model: r.model, Messages: msgs}, chunks)
	}()

	var (
		streamErr  error
		forwarding = true
		fragments  int
	)
	for chunk := range chunks {
		if !forwarding {
			continue
		}
		if chunk.Error != "" {
			streamErr = errors.New(chunk.Error)
			forwarding = false
			continue
		}
		if chunk.Content != "" {
			select {
			case out <- chunk.Content:
				fragments++
			case <-ctx.Done():
				forwarding = false
				continue
			}
		}
		if chunk.Done {
			forwarding = false
		}
	}
	if err := <-errc; err != nil && streamErr == nil {
		streamErr = err
	}

	if ctx.Err() != nil {
		logger.Info("Completion stream cancelled by client", "fragments", fragments, "duration", time.Since(start))
		return
	}
	if streamErr != nil {
		logger.Warn("Completion stream failed", "error", streamErr, "fragments", fragments, "duration", time.Since(start))
		select {
		case out <- StreamErrorMarker + streamErr.Error():
		case <-ctx.Done():
		}
		return
	}
	logger.Info("Completion stream finished", "fragments", fragments, "duration", time.Since(start))
}
