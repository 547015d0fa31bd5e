package llm

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownProvider = errors.New("unknown provider")

// Provider generates a reply for a single prompt. Implementations own
// their transport; no retry or backoff happens at this layer.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Config holds provider credentials and generation settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

// New - constructs a provider by name. Only "gemini" is registered.
func New(ctx context.Context, name string, conf Config) (Provider, error) {
	switch name {
	case "gemini":
		provider, err := NewGemini(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
}
