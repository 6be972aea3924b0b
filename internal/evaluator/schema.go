package evaluator

import "github.com/abhisek/skillforge/internal/llm"

// evaluationSchema defines the JSON schema for exercise grading.
var evaluationSchema = &llm.Schema{
	Name:        "exercise-evaluation",
	Description: "Graded outcome of a learner's exercise submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passed": map[string]any{
				"type":        "boolean",
				"description": "Whether the solution fulfils the exercise requirements",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall quality score, 0-100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-4 sentences of constructive feedback addressed to the learner",
			},
			"test_results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":   map[string]any{"type": "string"},
						"passed": map[string]any{"type": "boolean"},
						"error": map[string]any{
							"type":        "string",
							"description": "What went wrong, empty when passed",
						},
					},
					"required":             []any{"name", "passed"},
					"additionalProperties": false,
				},
				"description": "Per-test-case verdicts, one per provided test case",
			},
		},
		"required":             []any{"passed", "score", "feedback"},
		"additionalProperties": false,
	},
}

// hintSchema defines the JSON schema for a single hint.
var hintSchema = &llm.Schema{
	Name:        "exercise-hint",
	Description: "One hint for a stuck learner, calibrated to the requested level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "The hint text, 1-3 sentences",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

// testRunSchema defines the JSON schema for a dry test run.
var testRunSchema = &llm.Schema{
	Name:        "exercise-test-run",
	Description: "Predicted outcome of running the exercise's test cases against the code",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"test_results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":     map[string]any{"type": "string"},
						"passed":   map[string]any{"type": "boolean"},
						"input":    map[string]any{"type": "string"},
						"expected": map[string]any{"type": "string"},
						"actual": map[string]any{
							"type":        "string",
							"description": "The output the code would produce",
						},
						"error": map[string]any{"type": "string"},
					},
					"required":             []any{"name", "passed"},
					"additionalProperties": false,
				},
			},
			"all_passed": map[string]any{"type": "boolean"},
		},
		"required":             []any{"test_results", "all_passed"},
		"additionalProperties": false,
	},
}
