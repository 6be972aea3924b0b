package quiz

import "math"

// Score grades a full answer mapping against the quiz. It is a pure
// function: unanswered questions count as incorrect and earn nothing,
// and a quiz with zero possible points scores 0 and never passes.
func Score(q *Quiz, answers map[string]Answer) ScoreResult {
	result := ScoreResult{
		Correct:        make(map[string]bool, len(q.Questions)),
		TotalQuestions: len(q.Questions),
	}

	for i := range q.Questions {
		question := &q.Questions[i]
		result.PointsPossible += question.Points

		answer, ok := answers[question.ID]
		correct := ok && answerCorrect(question, answer)
		result.Correct[question.ID] = correct
		if correct {
			result.CorrectCount++
			result.PointsEarned += question.Points
		}
	}

	if result.PointsPossible > 0 {
		pct := 100 * float64(result.PointsEarned) / float64(result.PointsPossible)
		result.Percentage = int(math.Round(pct))
	}
	result.Passed = result.PointsPossible > 0 && result.Percentage >= q.PassingScore

	return result
}

// answerCorrect applies the correctness rule for the question's kind.
// An answer whose kind does not match the question is incorrect.
func answerCorrect(q *Question, a Answer) bool {
	if a.Kind != q.Kind {
		return false
	}

	switch q.Kind {
	case KindMultipleChoice:
		return a.Option == q.CorrectOption
	case KindTrueFalse:
		return a.Bool == q.CorrectBool
	case KindMultipleSelect:
		// Exact set equality; no partial credit.
		return sameIndexSet(a.Options, q.CorrectOptions)
	}
	return false
}

func sameIndexSet(got, want []int) bool {
	if len(want) == 0 {
		return len(got) == 0
	}
	wantSet := make(map[int]bool, len(want))
	for _, i := range want {
		wantSet[i] = true
	}
	gotSet := make(map[int]bool, len(got))
	for _, i := range got {
		gotSet[i] = true
	}
	if len(gotSet) != len(wantSet) {
		return false
	}
	for i := range wantSet {
		if !gotSet[i] {
			return false
		}
	}
	return true
}
