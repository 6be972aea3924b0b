package content

import (
	"strings"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()

	if len(c.Paths()) == 0 {
		t.Fatal("no paths in embedded catalog")
	}
	for _, p := range c.Paths() {
		if len(p.Nodes) == 0 {
			t.Errorf("path %q has no nodes", p.ID)
		}
		for i := 1; i < len(p.Nodes); i++ {
			if p.Nodes[i].Order < p.Nodes[i-1].Order {
				t.Errorf("path %q: nodes not sorted by order", p.ID)
			}
		}
	}
}

func TestEmbeddedLookups(t *testing.T) {
	c := Default()

	p := c.PathByID("go-fundamentals")
	if p == nil {
		t.Fatal("go-fundamentals missing")
	}
	if got := c.TotalNodes("go-fundamentals"); got != len(p.Nodes) {
		t.Errorf("TotalNodes = %d, want %d", got, len(p.Nodes))
	}
	if got := c.TotalNodes("no-such-path"); got != 0 {
		t.Errorf("TotalNodes for unknown path = %d, want 0", got)
	}

	q := c.QuizByID("quiz-collections")
	if q == nil {
		t.Fatal("quiz-collections missing")
	}
	if q.TimeLimitSeconds() != 15*60 {
		t.Errorf("time limit = %ds", q.TimeLimitSeconds())
	}
	ref, ok := c.NodeForQuiz("quiz-collections")
	if !ok || ref.PathID != "go-fundamentals" || ref.NodeID != "collections" {
		t.Errorf("NodeForQuiz = %+v, %v", ref, ok)
	}

	ex := c.ExerciseByID("ex-word-count")
	if ex == nil {
		t.Fatal("ex-word-count missing")
	}
	if ex.Points == 0 || len(ex.Instructions) == 0 {
		t.Errorf("exercise incomplete: %+v", ex)
	}
	if ref, ok := c.NodeForExercise("ex-word-count"); !ok || ref.NodeID != "collections" {
		t.Errorf("NodeForExercise = %+v, %v", ref, ok)
	}

	if c.QuizByID("nope") != nil || c.ExerciseByID("nope") != nil {
		t.Error("unknown ids should return nil")
	}
}

func TestExerciseLookupAdapter(t *testing.T) {
	lookup := Default().ExerciseLookup()

	ec, ok := lookup("ex-parallel-sum")
	if !ok {
		t.Fatal("lookup failed")
	}
	if ec.Title != "Parallel Sum" || ec.Language != "go" {
		t.Errorf("context = %+v", ec)
	}
	if len(ec.TestCases) != 3 {
		t.Errorf("test cases = %d, want 3", len(ec.TestCases))
	}
	if ec.TestCases[0].ExpectedOutput != "15" {
		t.Errorf("expected output = %q", ec.TestCases[0].ExpectedOutput)
	}

	if _, ok := lookup("nope"); ok {
		t.Error("unknown exercise should not resolve")
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			"not json",
			`{`,
			"not valid JSON",
		},
		{
			"missing paths",
			`{}`,
			"schema validation failed",
		},
		{
			"quiz without questions",
			`{"paths":[{"id":"p","title":"P","nodes":[{"id":"n","title":"N","order":1,
			  "quiz":{"id":"q","title":"Q","questions":[],"time_limit_minutes":5,"passing_score":70}}]}]}`,
			"schema validation failed",
		},
		{
			"unknown question type",
			`{"paths":[{"id":"p","title":"P","nodes":[{"id":"n","title":"N","order":1,
			  "quiz":{"id":"q","title":"Q","time_limit_minutes":5,"passing_score":70,
			  "questions":[{"id":"q1","question":"?","type":"essay","points":5}]}}]}]}`,
			"schema validation failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want substring %q", err, tc.want)
			}
		})
	}
}

func TestLoadRejectsBrokenCrossReferences(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			"duplicate quiz id",
			`{"paths":[{"id":"p","title":"P","nodes":[
			  {"id":"n1","title":"A","order":1,"quiz":{"id":"q","title":"Q","time_limit_minutes":5,"passing_score":70,
			    "questions":[{"id":"q1","question":"?","type":"true_false","points":5,"correct_bool":true}]}},
			  {"id":"n2","title":"B","order":2,"quiz":{"id":"q","title":"Q","time_limit_minutes":5,"passing_score":70,
			    "questions":[{"id":"q1","question":"?","type":"true_false","points":5,"correct_bool":true}]}}]}]}`,
			`duplicate quiz id "q"`,
		},
		{
			"duplicate node id",
			`{"paths":[{"id":"p","title":"P","nodes":[
			  {"id":"n","title":"A","order":1},{"id":"n","title":"B","order":2}]}]}`,
			`duplicate node id "n"`,
		},
		{
			"correct_option out of range",
			`{"paths":[{"id":"p","title":"P","nodes":[{"id":"n","title":"N","order":1,
			  "quiz":{"id":"q","title":"Q","time_limit_minutes":5,"passing_score":70,
			  "questions":[{"id":"q1","question":"?","type":"multiple_choice","options":["a","b"],"points":5,"correct_option":5}]}}]}]}`,
			"correct_option 5 out of range",
		},
		{
			"multiple_select without key",
			`{"paths":[{"id":"p","title":"P","nodes":[{"id":"n","title":"N","order":1,
			  "quiz":{"id":"q","title":"Q","time_limit_minutes":5,"passing_score":70,
			  "questions":[{"id":"q1","question":"?","type":"multiple_select","options":["a","b"],"points":5}]}}]}]}`,
			"needs correct_options",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want substring %q", err, tc.want)
			}
		})
	}
}

func TestEmbeddedAnswerKeysAreConsistent(t *testing.T) {
	c := Default()

	for _, p := range c.Paths() {
		for _, n := range p.Nodes {
			if n.Quiz == nil {
				continue
			}
			possible := 0
			for _, q := range n.Quiz.Questions {
				possible += q.Points
			}
			if possible == 0 {
				t.Errorf("quiz %q has no points to earn", n.Quiz.ID)
			}
		}
	}
}
