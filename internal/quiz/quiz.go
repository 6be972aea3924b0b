// Package quiz implements the timed quiz session: question navigation,
// answer capture, local scoring, and the submission state machine.
package quiz

// QuestionKind identifies how a question is answered.
type QuestionKind string

const (
	// KindMultipleChoice takes exactly one option index.
	KindMultipleChoice QuestionKind = "multiple_choice"
	// KindMultipleSelect takes a set of option indices.
	KindMultipleSelect QuestionKind = "multiple_select"
	// KindTrueFalse takes a boolean.
	KindTrueFalse QuestionKind = "true_false"
)

// Question is a single quiz question. The correct-answer fields are
// populated from the content catalog; only the field matching Kind is
// meaningful.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"question"`
	Kind        QuestionKind `json:"type"`
	Options     []string     `json:"options,omitempty"`
	Points      int          `json:"points"`
	Code        string       `json:"code,omitempty"`
	Explanation string       `json:"explanation,omitempty"`

	CorrectOption  int   `json:"correct_option,omitempty"`
	CorrectOptions []int `json:"correct_options,omitempty"`
	CorrectBool    bool  `json:"correct_bool,omitempty"`
}

// Quiz is an immutable question set with its time limit and pass bar.
type Quiz struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Questions        []Question `json:"questions"`
	TimeLimitMinutes int        `json:"time_limit_minutes"`
	PassingScore     int        `json:"passing_score"`
	MaxAttempts      int        `json:"max_attempts"`
}

// TimeLimitSeconds returns the quiz time limit in seconds.
func (q *Quiz) TimeLimitSeconds() int {
	return q.TimeLimitMinutes * 60
}

// QuestionByID returns the question with the given id, or nil.
func (q *Quiz) QuestionByID(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// Answer is the tagged union of the three response shapes. Construct
// answers with OptionAnswer, OptionsAnswer, or BoolAnswer so Kind is
// always consistent with the populated field.
type Answer struct {
	Kind    QuestionKind `json:"kind"`
	Option  int          `json:"option,omitempty"`
	Options []int        `json:"options,omitempty"`
	Bool    bool         `json:"bool,omitempty"`
}

// OptionAnswer answers a multiple-choice question with one option index.
func OptionAnswer(index int) Answer {
	return Answer{Kind: KindMultipleChoice, Option: index}
}

// OptionsAnswer answers a multiple-select question with a set of indices.
func OptionsAnswer(indices ...int) Answer {
	return Answer{Kind: KindMultipleSelect, Options: indices}
}

// BoolAnswer answers a true/false question.
func BoolAnswer(v bool) Answer {
	return Answer{Kind: KindTrueFalse, Bool: v}
}

// Submission is the full answer mapping captured at submit time.
// Created exactly once per session and never mutated afterwards.
type Submission struct {
	QuizID           string            `json:"quiz_id"`
	Answers          map[string]Answer `json:"answers"`
	TimeSpentSeconds int               `json:"time_spent"`
}

// ScoreResult is the outcome of scoring one submission.
type ScoreResult struct {
	Percentage     int             `json:"score"`
	Passed         bool            `json:"passed"`
	Correct        map[string]bool `json:"correct"`
	CorrectCount   int             `json:"correct_answers"`
	TotalQuestions int             `json:"total_questions"`
	PointsEarned   int             `json:"points_earned"`
	PointsPossible int             `json:"points_possible"`
}
