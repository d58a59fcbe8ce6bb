package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/eventure-app/eventure/backend/internal/config"
)

// ArkGenerator drives an ark chat model through a compiled eino chain.
type ArkGenerator struct {
	chain   compose.Runnable[map[string]any, *schema.Message]
	timeout time.Duration
}

// NewArkGenerator compiles the generation chain against the configured ark
// model. Credentials are checked here so a misconfigured deployment fails at
// startup, not on the first request.
func NewArkGenerator(ctx context.Context, cfg config.AIConfig) (*ArkGenerator, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile generation chain: %w", err)
	}

	return &ArkGenerator{
		chain:   runnable,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// GenerateJSON makes a single model call and returns the JSON payload of the
// completion. A hung upstream is bounded by the configured timeout.
func (g *ArkGenerator) GenerateJSON(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	msg, err := g.chain.Invoke(ctx, map[string]any{
		"system": system,
		"prompt": prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("%w: empty completion", ErrGenerationFailed)
	}

	return extractJSON(msg.Content)
}
