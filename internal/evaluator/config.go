package evaluator

import (
	"os"
	"strconv"
	"time"
)

// Mode selects the evaluation backend.
type Mode string

const (
	// ModeRemote talks to a running evaluation service over HTTP.
	ModeRemote Mode = "remote"
	// ModeLocal grades through an LLM provider on this machine.
	ModeLocal Mode = "local"
	// ModeMock grades everything as a pass. Offline demos and tests.
	ModeMock Mode = "mock"
)

// Config holds evaluator configuration.
type Config struct {
	// Mode forces a backend. Empty means auto-detect: remote when
	// BaseURL is set, local when an LLM API key is discoverable, mock
	// otherwise.
	Mode Mode

	// BaseURL is the remote backend address.
	BaseURL string

	// Timeout bounds a single backend call. Default: 30s.
	Timeout time.Duration

	Retry RetryConfig
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
		Retry:   DefaultRetryConfig(),
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if m := os.Getenv("SKILLFORGE_EVALUATOR_MODE"); m != "" {
		cfg.Mode = Mode(m)
	}
	if u := os.Getenv("SKILLFORGE_EVALUATOR_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("SKILLFORGE_EVALUATOR_TIMEOUT"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}
