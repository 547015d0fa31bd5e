package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	ErrAPIKeyMissing = errors.New("gemini api key is empty")
	ErrEmptyReply    = errors.New("gemini returned an empty reply")
)

// Gemini is a Provider backed by Google's generative AI API.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// NewGemini - connects a Gemini provider. The model replies with JSON
// only; a low temperature keeps moves consistent between calls.
func NewGemini(ctx context.Context, conf Config) (*Gemini, error) {
	if conf.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(conf.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(conf.Model)
	model.SetTemperature(conf.Temperature)
	model.ResponseMIMEType = "application/json"

	return &Gemini{
		client: client,
		model:  model,
		name:   "gemini/" + conf.Model,
	}, nil
}

func (that *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := that.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", ErrEmptyReply
	}

	var builder strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}

	if builder.Len() == 0 {
		return "", ErrEmptyReply
	}

	return builder.String(), nil
}

func (that *Gemini) Name() string {
	return that.name
}

func (that *Gemini) Close() error {
	return that.client.Close()
}
