package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchemaDef is the structural contract for catalog JSON.
// Cross-reference rules (id uniqueness, answer keys in range) are
// enforced separately in index().
var catalogSchemaDef = map[string]any{
	"type":                 "object",
	"required":             []string{"paths"},
	"additionalProperties": false,
	"properties": map[string]any{
		"paths": map[string]any{
			"type":  "array",
			"items": pathSchemaDef,
		},
	},
}

var pathSchemaDef = map[string]any{
	"type":     "object",
	"required": []string{"id", "title", "nodes"},
	"properties": map[string]any{
		"id":                   map[string]any{"type": "string", "minLength": 1},
		"title":                map[string]any{"type": "string", "minLength": 1},
		"description":          map[string]any{"type": "string"},
		"total_duration_hours": map[string]any{"type": "integer", "minimum": 0},
		"nodes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    nodeSchemaDef,
		},
	},
}

var nodeSchemaDef = map[string]any{
	"type":     "object",
	"required": []string{"id", "title", "order"},
	"properties": map[string]any{
		"id":             map[string]any{"type": "string", "minLength": 1},
		"title":          map[string]any{"type": "string", "minLength": 1},
		"description":    map[string]any{"type": "string"},
		"order":          map[string]any{"type": "integer", "minimum": 1},
		"duration_hours": map[string]any{"type": "integer", "minimum": 0},
		"type":           map[string]any{"type": "string"},
		"topics":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"resources": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"title", "url"},
				"properties": map[string]any{
					"title":            map[string]any{"type": "string"},
					"type":             map[string]any{"type": "string"},
					"url":              map[string]any{"type": "string"},
					"duration_minutes": map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
		"quiz":      quizSchemaDef,
		"exercises": map[string]any{"type": "array", "items": exerciseSchemaDef},
	},
}

var quizSchemaDef = map[string]any{
	"type":     "object",
	"required": []string{"id", "title", "questions", "time_limit_minutes", "passing_score"},
	"properties": map[string]any{
		"id":                 map[string]any{"type": "string", "minLength": 1},
		"title":              map[string]any{"type": "string", "minLength": 1},
		"description":        map[string]any{"type": "string"},
		"time_limit_minutes": map[string]any{"type": "integer", "minimum": 1},
		"passing_score":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"max_attempts":       map[string]any{"type": "integer", "minimum": 0},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "question", "type", "points"},
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"question": map[string]any{"type": "string", "minLength": 1},
					"type": map[string]any{
						"type": "string",
						"enum": []string{"multiple_choice", "multiple_select", "true_false"},
					},
					"options":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"points":          map[string]any{"type": "integer", "minimum": 0},
					"code":            map[string]any{"type": "string"},
					"explanation":     map[string]any{"type": "string"},
					"correct_option":  map[string]any{"type": "integer", "minimum": 0},
					"correct_options": map[string]any{"type": "array", "items": map[string]any{"type": "integer", "minimum": 0}},
					"correct_bool":    map[string]any{"type": "boolean"},
				},
			},
		},
	},
}

var exerciseSchemaDef = map[string]any{
	"type":     "object",
	"required": []string{"id", "title", "description", "instructions", "points"},
	"properties": map[string]any{
		"id":           map[string]any{"type": "string", "minLength": 1},
		"title":        map[string]any{"type": "string", "minLength": 1},
		"description":  map[string]any{"type": "string"},
		"type":         map[string]any{"type": "string"},
		"difficulty":   map[string]any{"type": "string"},
		"instructions": map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string"}},
		"starter_code": map[string]any{"type": "string"},
		"language":     map[string]any{"type": "string"},
		"test_cases": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"input", "expected_output"},
				"properties": map[string]any{
					"input":           map[string]any{"type": "string"},
					"expected_output": map[string]any{"type": "string"},
				},
			},
		},
		"estimated_time_minutes": map[string]any{"type": "integer", "minimum": 0},
		"points":                 map[string]any{"type": "integer", "minimum": 0},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateCatalogJSON checks raw catalog bytes against the schema.
func validateCatalogJSON(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("catalog is not valid JSON: %w", err)
	}

	compiled, err := compiledCatalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// Go maps with typed slices. Round-trip through JSON to get one.
		defBytes, err := json.Marshal(catalogSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
