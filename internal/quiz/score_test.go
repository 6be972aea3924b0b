package quiz

import "testing"

func twoQuestionQuiz() *Quiz {
	return &Quiz{
		ID:           "quiz-1",
		Title:        "Basics",
		PassingScore: 70,
		Questions: []Question{
			{
				ID:            "q1",
				Text:          "Pick one",
				Kind:          KindMultipleChoice,
				Options:       []string{"a", "b", "c"},
				Points:        10,
				CorrectOption: 0,
			},
			{
				ID:          "q2",
				Text:        "True or false",
				Kind:        KindTrueFalse,
				Points:      15,
				CorrectBool: true,
			},
		},
	}
}

func TestScoreAllCorrect(t *testing.T) {
	q := twoQuestionQuiz()
	result := Score(q, map[string]Answer{
		"q1": OptionAnswer(0),
		"q2": BoolAnswer(true),
	})

	if result.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", result.Percentage)
	}
	if !result.Passed {
		t.Error("expected pass")
	}
	if result.PointsEarned != 25 {
		t.Errorf("pointsEarned = %d, want 25", result.PointsEarned)
	}
	if result.CorrectCount != 2 {
		t.Errorf("correctCount = %d, want 2", result.CorrectCount)
	}
}

func TestScoreWrongAndMissingAnswers(t *testing.T) {
	q := twoQuestionQuiz()

	// q1 wrong, q2 unanswered: nothing earned.
	result := Score(q, map[string]Answer{"q1": OptionAnswer(1)})

	if result.Percentage != 0 {
		t.Errorf("percentage = %d, want 0", result.Percentage)
	}
	if result.Passed {
		t.Error("expected fail")
	}
	if result.PointsEarned != 0 {
		t.Errorf("pointsEarned = %d, want 0", result.PointsEarned)
	}
	if result.Correct["q1"] || result.Correct["q2"] {
		t.Errorf("correct map = %v, want all false", result.Correct)
	}
}

func TestScorePartialRounding(t *testing.T) {
	q := twoQuestionQuiz()

	// 10 of 25 points is 40%.
	result := Score(q, map[string]Answer{"q1": OptionAnswer(0)})
	if result.Percentage != 40 {
		t.Errorf("percentage = %d, want 40", result.Percentage)
	}

	// 15 of 25 points is 60%, below the 70 bar.
	result = Score(q, map[string]Answer{"q2": BoolAnswer(true)})
	if result.Percentage != 60 {
		t.Errorf("percentage = %d, want 60", result.Percentage)
	}
	if result.Passed {
		t.Error("60 must not pass a 70 bar")
	}
}

func TestScoreRoundsHalfUp(t *testing.T) {
	q := &Quiz{
		ID:           "quiz-thirds",
		PassingScore: 33,
		Questions: []Question{
			{ID: "q1", Kind: KindTrueFalse, Points: 1, CorrectBool: true},
			{ID: "q2", Kind: KindTrueFalse, Points: 1, CorrectBool: true},
			{ID: "q3", Kind: KindTrueFalse, Points: 1, CorrectBool: true},
		},
	}

	result := Score(q, map[string]Answer{"q1": BoolAnswer(true)})
	if result.Percentage != 33 {
		t.Errorf("1/3 = %d, want 33", result.Percentage)
	}

	result = Score(q, map[string]Answer{"q1": BoolAnswer(true), "q2": BoolAnswer(true)})
	if result.Percentage != 67 {
		t.Errorf("2/3 = %d, want 67", result.Percentage)
	}
}

func TestScoreZeroPossiblePoints(t *testing.T) {
	q := &Quiz{
		ID:           "quiz-empty",
		PassingScore: 0,
		Questions: []Question{
			{ID: "q1", Kind: KindTrueFalse, Points: 0, CorrectBool: true},
		},
	}

	result := Score(q, map[string]Answer{"q1": BoolAnswer(true)})
	if result.Percentage != 0 {
		t.Errorf("percentage = %d, want 0", result.Percentage)
	}
	if result.Passed {
		t.Error("zero possible points can never pass")
	}
}

func TestScoreMultipleSelectExactSet(t *testing.T) {
	q := &Quiz{
		ID:           "quiz-ms",
		PassingScore: 100,
		Questions: []Question{
			{
				ID:             "q1",
				Kind:           KindMultipleSelect,
				Options:        []string{"a", "b", "c", "d"},
				Points:         10,
				CorrectOptions: []int{0, 2},
			},
		},
	}

	cases := []struct {
		name   string
		answer Answer
		want   bool
	}{
		{"exact set", OptionsAnswer(0, 2), true},
		{"order independent", OptionsAnswer(2, 0), true},
		{"subset", OptionsAnswer(0), false},
		{"superset", OptionsAnswer(0, 2, 3), false},
		{"disjoint", OptionsAnswer(1, 3), false},
		{"duplicates collapse", OptionsAnswer(0, 2, 2), true},
		{"empty", OptionsAnswer(), false},
	}
	for _, tc := range cases {
		result := Score(q, map[string]Answer{"q1": tc.answer})
		if got := result.Correct["q1"]; got != tc.want {
			t.Errorf("%s: correct = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestScoreKindMismatchIsIncorrect(t *testing.T) {
	q := twoQuestionQuiz()

	// A boolean answer against a multiple-choice question never matches.
	result := Score(q, map[string]Answer{"q1": BoolAnswer(true)})
	if result.Correct["q1"] {
		t.Error("kind mismatch must be incorrect")
	}
}
