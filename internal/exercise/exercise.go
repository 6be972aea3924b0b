// Package exercise implements hands-on coding exercises: the attempt
// state machine around the external evaluator, and the escalating hint
// ladder.
package exercise

// TestCase is one input/output pair the evaluator checks a solution
// against.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// Exercise is an immutable exercise definition from the content catalog.
type Exercise struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Type                 string     `json:"type,omitempty"`
	Difficulty           string     `json:"difficulty"`
	Instructions         []string   `json:"instructions"`
	StarterCode          string     `json:"starter_code,omitempty"`
	Language             string     `json:"language,omitempty"`
	TestCases            []TestCase `json:"test_cases,omitempty"`
	EstimatedTimeMinutes int        `json:"estimated_time_minutes,omitempty"`
	Points               int        `json:"points"`
}
