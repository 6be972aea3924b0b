package progress

// Badge names earned through ledger writes. First-steps and
// path-complete are awarded by the store itself; the others are awarded
// by sessions based on how an assessment went.
const (
	BadgeFirstSteps   = "first-steps"
	BadgePathComplete = "path-complete"
	BadgePerfectQuiz  = "perfect-quiz"
	BadgeSelfStarter  = "self-starter"
)

// BadgesForQuiz returns the badges a passed quiz earns.
func BadgesForQuiz(percentage int) []string {
	if percentage >= 100 {
		return []string{BadgePerfectQuiz}
	}
	return nil
}

// BadgesForExercise returns the badges a passed exercise earns.
// Solving without hints and with a strong score marks a self-starter.
func BadgesForExercise(score, hintsUsed int) []string {
	if hintsUsed == 0 && score >= 90 {
		return []string{BadgeSelfStarter}
	}
	return nil
}
