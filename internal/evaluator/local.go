package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/skillforge/internal/llm"
)

// ExerciseContext is the exercise detail the local evaluator grades
// against. It mirrors the catalog's exercise definition without
// depending on it.
type ExerciseContext struct {
	Title        string
	Description  string
	Instructions []string
	Language     string
	TestCases    []TestCasePair
}

// TestCasePair is one input/output pair from the exercise definition.
type TestCasePair struct {
	Input          string
	ExpectedOutput string
}

// LocalConfig configures the local evaluation mode.
type LocalConfig struct {
	// Lookup resolves an exercise id to its definition so prompts can
	// include requirements and test cases. Optional; grading still
	// works without it, with less context.
	Lookup func(exerciseID string) (*ExerciseContext, bool)

	// MaxTokens caps each response. Default 1024.
	MaxTokens int

	// Temperature for grading and hints. Default 0.2.
	Temperature float64
}

// LocalClient grades submissions through an LLM provider instead of a
// remote backend. Grades are advisory-quality: good enough for solo
// practice, not for certification.
type LocalClient struct {
	provider llm.Provider
	cfg      LocalConfig
}

// NewLocalClient creates a local evaluator over the given provider.
func NewLocalClient(provider llm.Provider, cfg LocalConfig) *LocalClient {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2
	}
	return &LocalClient{provider: provider, cfg: cfg}
}

// ModelID returns the underlying provider's model identifier.
func (c *LocalClient) ModelID() string { return c.provider.ModelID() }

func (c *LocalClient) lookup(exerciseID string) *ExerciseContext {
	if c.cfg.Lookup == nil {
		return nil
	}
	ec, ok := c.cfg.Lookup(exerciseID)
	if !ok {
		return nil
	}
	return ec
}

func (c *LocalClient) Evaluate(ctx context.Context, sub Submission) (*Evaluation, error) {
	ec := c.lookup(sub.ExerciseID)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: evaluateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluateUserMessage(ec, sub)},
		},
		Schema:      evaluationSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, mapProviderErr(err)
	}

	var graded struct {
		Passed      bool         `json:"passed"`
		Score       int          `json:"score"`
		Feedback    string       `json:"feedback"`
		TestResults []TestResult `json:"test_results"`
	}
	if err := json.Unmarshal(resp.Content, &graded); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return &Evaluation{
		ExerciseID:  sub.ExerciseID,
		Passed:      graded.Passed,
		Score:       graded.Score,
		Feedback:    graded.Feedback,
		TestResults: graded.TestResults,
	}, nil
}

func (c *LocalClient) Hint(ctx context.Context, req HintRequest) (string, error) {
	ec := c.lookup(req.ExerciseID)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintUserMessage(ec, req)},
		},
		Schema:      hintSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", mapProviderErr(err)
	}

	var out struct {
		Hint string `json:"hint"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return out.Hint, nil
}

func (c *LocalClient) RunTests(ctx context.Context, exerciseID, code string) (*TestRun, error) {
	ec := c.lookup(exerciseID)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: testRunSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTestRunUserMessage(ec, exerciseID, code)},
		},
		Schema:      testRunSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, mapProviderErr(err)
	}

	var run TestRun
	if err := json.Unmarshal(resp.Content, &run); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	run.TotalCount = len(run.Results)
	run.PassedCount = 0
	for _, r := range run.Results {
		if r.Passed {
			run.PassedCount++
		}
	}
	return &run, nil
}

// SubmitQuiz has no second opinion to offer in local mode: quizzes are
// scored locally from the catalog's answer key.
func (c *LocalClient) SubmitQuiz(context.Context, QuizAnswers) (*QuizResult, error) {
	return nil, nil
}

// mapProviderErr translates the provider error taxonomy into the
// evaluator's, so the retry decorator treats both backends alike.
func mapProviderErr(err error) error {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return &ErrRateLimit{RetryAfter: rl.RetryAfter, Err: err}
	}
	var unavail *llm.ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return &ErrUnavailable{Err: err}
	}
	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		return &ErrInvalidResponse{Content: inv.Content, Err: err}
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &ErrInvalidResponse{Content: maxTok.Content, Err: err}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &ErrUnavailable{Err: fmt.Errorf("local evaluation: %w", err)}
}
