package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/eventure-app/eventure/backend/internal/config"
)

// OpenAIGenerator implements Generator against the OpenAI chat completions API.
type OpenAIGenerator struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIGenerator builds an OpenAI-backed generator from configuration.
func NewOpenAIGenerator(cfg config.AIConfig) (*OpenAIGenerator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: missing OPENAI_API_KEY", ErrInvalidConfig)
	}
	if cfg.OpenAIModel == "" {
		return nil, fmt.Errorf("%w: missing OPENAI_MODEL", ErrInvalidConfig)
	}

	return &OpenAIGenerator{
		client:  openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		model:   cfg.OpenAIModel,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// GenerateJSON makes a single chat-completion call and returns its JSON
// payload. No retries; the caller owns the fallback.
func (g *OpenAIGenerator) GenerateJSON(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in completion", ErrGenerationFailed)
	}

	return extractJSON(completion.Choices[0].Message.Content)
}
