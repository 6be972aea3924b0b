package evaluator

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/internal/llm"
	"github.com/abhisek/skillforge/internal/store"
)

// New builds the evaluator Client for the configuration, wrapped with
// request logging and retry. Auto-detection order: a configured BaseURL
// wins, then a discoverable LLM API key, then the mock.
//
// The returned mode tells the caller which backend was picked.
func New(ctx context.Context, cfg Config, events store.EventRepo, lookup func(string) (*ExerciseContext, bool)) (Client, Mode, error) {
	mode := cfg.Mode
	if mode == "" {
		switch {
		case cfg.BaseURL != "":
			mode = ModeRemote
		default:
			if _, ok := llm.DiscoverConfig(); ok {
				mode = ModeLocal
			} else {
				mode = ModeMock
			}
		}
	}

	var base Client
	var target string

	switch mode {
	case ModeRemote:
		if cfg.BaseURL == "" {
			return nil, mode, fmt.Errorf("remote evaluator mode requires SKILLFORGE_EVALUATOR_URL")
		}
		base = NewRemoteClient(cfg.BaseURL, cfg.Timeout)
		target = cfg.BaseURL

	case ModeLocal:
		llmCfg, ok := llm.DiscoverConfig()
		if !ok {
			llmCfg = llm.ConfigFromEnv()
		}
		if err := llmCfg.Validate(); err != nil {
			return nil, mode, fmt.Errorf("local evaluator mode: %w", err)
		}
		provider, err := llm.NewProvider(ctx, llmCfg)
		if err != nil {
			return nil, mode, fmt.Errorf("local evaluator mode: %w", err)
		}
		local := NewLocalClient(provider, LocalConfig{Lookup: lookup})
		base = local
		target = local.ModelID()

	case ModeMock:
		base = NewMockClient()
		target = "mock"

	default:
		return nil, mode, fmt.Errorf("unknown evaluator mode: %q", mode)
	}

	if events != nil {
		base = WithLogging(base, string(mode), target, events)
	}
	return WithRetry(base, cfg.Retry), mode, nil
}
