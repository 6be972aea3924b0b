package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// RemoteClient talks to a running evaluation backend over HTTP.
type RemoteClient struct {
	baseURL string
	http    *http.Client
}

// NewRemoteClient creates a client for the backend at baseURL.
func NewRemoteClient(baseURL string, timeout time.Duration) *RemoteClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend address this client targets.
func (c *RemoteClient) BaseURL() string { return c.baseURL }

func (c *RemoteClient) Evaluate(ctx context.Context, sub Submission) (*Evaluation, error) {
	var out Evaluation
	path := fmt.Sprintf("/exercise/%s/evaluate", url.PathEscape(sub.ExerciseID))
	if err := c.post(ctx, path, sub, &out); err != nil {
		return nil, err
	}
	if out.ExerciseID == "" {
		out.ExerciseID = sub.ExerciseID
	}
	return &out, nil
}

func (c *RemoteClient) Hint(ctx context.Context, req HintRequest) (string, error) {
	var out struct {
		Hint  string `json:"hint"`
		Level int    `json:"level"`
	}
	path := fmt.Sprintf("/exercise/%s/hint", url.PathEscape(req.ExerciseID))
	if err := c.post(ctx, path, req, &out); err != nil {
		return "", err
	}
	return out.Hint, nil
}

func (c *RemoteClient) RunTests(ctx context.Context, exerciseID, code string) (*TestRun, error) {
	var out TestRun
	path := fmt.Sprintf("/exercise/%s/test", url.PathEscape(exerciseID))
	body := map[string]string{"code": code}
	if err := c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RemoteClient) SubmitQuiz(ctx context.Context, sub QuizAnswers) (*QuizResult, error) {
	var out QuizResult
	path := fmt.Sprintf("/quiz/%s/submit", url.PathEscape(sub.QuizID))
	if err := c.post(ctx, path, sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends one JSON request and decodes the JSON response, mapping
// transport failures and status codes onto the package's error types.
func (c *RemoteClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &ErrUnavailable{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &ErrRateLimit{
			RetryAfter: retryAfter(resp),
			Err:        fmt.Errorf("POST %s: %s", path, resp.Status),
		}
	case resp.StatusCode >= 500:
		return &ErrUnavailable{Err: fmt.Errorf("POST %s: %s", path, resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("POST %s: %s: %s", path, resp.Status, firstLine(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}

// firstLine trims an error body down to something loggable.
func firstLine(raw []byte) string {
	s := string(raw)
	for i, r := range s {
		if r == '\n' || i > 200 {
			return s[:i]
		}
	}
	return s
}
