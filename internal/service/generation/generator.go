// Package generation wraps the external completion model behind a narrow
// JSON-producing interface. Failures are returned as values so callers can
// choose a fallback without exceptions crossing the boundary.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/eventure-app/eventure/backend/internal/config"
)

var (
	// ErrGenerationFailed covers transport errors, empty completions and
	// completions that carry no parseable JSON.
	ErrGenerationFailed = errors.New("generation request failed")

	// ErrInvalidConfig is returned by constructors on incomplete credentials.
	ErrInvalidConfig = errors.New("invalid generation configuration")
)

// Generator produces structured JSON from a system instruction and a user
// prompt. Implementations make exactly one upstream attempt per call and
// must be safe for concurrent use.
type Generator interface {
	GenerateJSON(ctx context.Context, system, prompt string) (json.RawMessage, error)
}

// New builds the Generator selected by configuration.
func New(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg)
	default:
		return NewArkGenerator(ctx, cfg)
	}
}

// extractJSON pulls the first JSON object or array out of a completion.
// Models occasionally wrap their output in prose or code fences, so the
// payload is located by its outermost brackets rather than parsed verbatim.
func extractJSON(content string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrGenerationFailed)
	}

	start := strings.IndexAny(trimmed, "{[")
	if start == -1 {
		return nil, fmt.Errorf("%w: completion carries no JSON payload", ErrGenerationFailed)
	}

	closer := "}"
	if trimmed[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(trimmed, closer)
	if end <= start {
		return nil, fmt.Errorf("%w: completion carries no JSON payload", ErrGenerationFailed)
	}

	raw := json.RawMessage(trimmed[start : end+1])
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: completion JSON is malformed", ErrGenerationFailed)
	}
	return raw, nil
}
