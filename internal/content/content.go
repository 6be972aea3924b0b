// Package content holds the built-in learning catalog: paths, nodes,
// quizzes with their answer keys, and exercises. The catalog is
// embedded JSON, schema-validated and cross-checked at load time.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/exercise"
	"github.com/abhisek/skillforge/internal/quiz"
)

//go:embed catalog.json
var catalogJSON []byte

// Resource is supplementary reading attached to a node.
type Resource struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Node is one step of a learning path. A node may carry a quiz, one or
// more exercises, both, or neither (reading-only nodes).
type Node struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Order         int                 `json:"order"`
	DurationHours int                 `json:"duration_hours"`
	Type          string              `json:"type"`
	Topics        []string            `json:"topics,omitempty"`
	Resources     []Resource          `json:"resources,omitempty"`
	Quiz          *quiz.Quiz          `json:"quiz,omitempty"`
	Exercises     []exercise.Exercise `json:"exercises,omitempty"`
}

// Path is a complete learning path.
type Path struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	TotalDurationHours int    `json:"total_duration_hours"`
	Nodes              []Node `json:"nodes"`
}

// NodeRef locates a node within a path.
type NodeRef struct {
	PathID string
	NodeID string
}

// Catalog is the loaded, validated content set with lookup indices.
type Catalog struct {
	paths []Path

	byPath       map[string]*Path
	quizzes      map[string]*quiz.Quiz
	exercises    map[string]*exercise.Exercise
	quizNode     map[string]NodeRef
	exerciseNode map[string]NodeRef
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog. It panics if the embedded data
// does not load; the data ships with the binary, so that is a build
// defect, not a runtime condition.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(catalogJSON)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded catalog: %v", defaultErr))
	}
	return defaultCatalog
}

// Load parses and validates a catalog from raw JSON.
func Load(data []byte) (*Catalog, error) {
	if err := validateCatalogJSON(data); err != nil {
		return nil, err
	}

	var doc struct {
		Paths []Path `json:"paths"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		paths:        doc.Paths,
		byPath:       make(map[string]*Path, len(doc.Paths)),
		quizzes:      make(map[string]*quiz.Quiz),
		exercises:    make(map[string]*exercise.Exercise),
		quizNode:     make(map[string]NodeRef),
		exerciseNode: make(map[string]NodeRef),
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

// index builds the lookup maps and cross-checks references the schema
// cannot express: id uniqueness and answer keys consistent with each
// question's type.
func (c *Catalog) index() error {
	for i := range c.paths {
		p := &c.paths[i]
		if _, dup := c.byPath[p.ID]; dup {
			return fmt.Errorf("duplicate path id %q", p.ID)
		}
		c.byPath[p.ID] = p

		sort.SliceStable(p.Nodes, func(a, b int) bool {
			return p.Nodes[a].Order < p.Nodes[b].Order
		})

		seenNodes := make(map[string]bool, len(p.Nodes))
		for j := range p.Nodes {
			n := &p.Nodes[j]
			if seenNodes[n.ID] {
				return fmt.Errorf("path %q: duplicate node id %q", p.ID, n.ID)
			}
			seenNodes[n.ID] = true
			ref := NodeRef{PathID: p.ID, NodeID: n.ID}

			if n.Quiz != nil {
				if _, dup := c.quizzes[n.Quiz.ID]; dup {
					return fmt.Errorf("duplicate quiz id %q", n.Quiz.ID)
				}
				if err := checkAnswerKeys(n.Quiz); err != nil {
					return fmt.Errorf("quiz %q: %w", n.Quiz.ID, err)
				}
				c.quizzes[n.Quiz.ID] = n.Quiz
				c.quizNode[n.Quiz.ID] = ref
			}

			for k := range n.Exercises {
				ex := &n.Exercises[k]
				if _, dup := c.exercises[ex.ID]; dup {
					return fmt.Errorf("duplicate exercise id %q", ex.ID)
				}
				c.exercises[ex.ID] = ex
				c.exerciseNode[ex.ID] = ref
			}
		}
	}
	return nil
}

// checkAnswerKeys verifies every question's answer key matches its
// type and references options that exist.
func checkAnswerKeys(q *quiz.Quiz) error {
	for i := range q.Questions {
		question := &q.Questions[i]
		switch question.Kind {
		case quiz.KindMultipleChoice:
			if question.CorrectOption < 0 || question.CorrectOption >= len(question.Options) {
				return fmt.Errorf("question %q: correct_option %d out of range", question.ID, question.CorrectOption)
			}
		case quiz.KindMultipleSelect:
			if len(question.CorrectOptions) == 0 {
				return fmt.Errorf("question %q: multiple_select needs correct_options", question.ID)
			}
			for _, idx := range question.CorrectOptions {
				if idx < 0 || idx >= len(question.Options) {
					return fmt.Errorf("question %q: correct_options index %d out of range", question.ID, idx)
				}
			}
		case quiz.KindTrueFalse:
			// Bool key is always well-formed.
		default:
			return fmt.Errorf("question %q: unknown type %q", question.ID, question.Kind)
		}
	}
	return nil
}

// Paths returns all learning paths in catalog order.
func (c *Catalog) Paths() []Path { return c.paths }

// PathByID returns the path with the given id, or nil.
func (c *Catalog) PathByID(id string) *Path { return c.byPath[id] }

// QuizByID returns the quiz with the given id, or nil.
func (c *Catalog) QuizByID(id string) *quiz.Quiz { return c.quizzes[id] }

// ExerciseByID returns the exercise with the given id, or nil.
func (c *Catalog) ExerciseByID(id string) *exercise.Exercise { return c.exercises[id] }

// TotalNodes returns how many nodes the path has; 0 for unknown paths.
func (c *Catalog) TotalNodes(pathID string) int {
	p := c.byPath[pathID]
	if p == nil {
		return 0
	}
	return len(p.Nodes)
}

// NodeForQuiz returns the path and node a quiz belongs to.
func (c *Catalog) NodeForQuiz(quizID string) (NodeRef, bool) {
	ref, ok := c.quizNode[quizID]
	return ref, ok
}

// NodeForExercise returns the path and node an exercise belongs to.
func (c *Catalog) NodeForExercise(exerciseID string) (NodeRef, bool) {
	ref, ok := c.exerciseNode[exerciseID]
	return ref, ok
}

// ExerciseLookup adapts the catalog for the evaluator, which takes
// exercise context without depending on the catalog's types.
func (c *Catalog) ExerciseLookup() func(string) (*evaluator.ExerciseContext, bool) {
	return func(id string) (*evaluator.ExerciseContext, bool) {
		ex := c.exercises[id]
		if ex == nil {
			return nil, false
		}
		ec := &evaluator.ExerciseContext{
			Title:        ex.Title,
			Description:  ex.Description,
			Instructions: ex.Instructions,
			Language:     ex.Language,
		}
		for _, tc := range ex.TestCases {
			ec.TestCases = append(ec.TestCases, evaluator.TestCasePair{
				Input:          tc.Input,
				ExpectedOutput: tc.ExpectedOutput,
			})
		}
		return ec, true
	}
}
