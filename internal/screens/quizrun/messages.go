package quizrun

import (
	"time"

	"github.com/abhisek/skillforge/internal/quiz"
)

// tickMsg drives the countdown display, once per second.
type tickMsg time.Time

// submittedMsg is sent when a manual submission finishes.
type submittedMsg struct {
	Result *quiz.ScoreResult
	Err    error
}
