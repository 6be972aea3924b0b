package workbench

import (
	"github.com/abhisek/skillforge/internal/evaluator"
)

// hintMsg is sent when a hint fetch finishes.
type hintMsg struct {
	Hint string
	Err  error
}

// testsMsg is sent when a test run finishes.
type testsMsg struct {
	Run *evaluator.TestRun
	Err error
}

// evalMsg is sent when a submission has been graded.
type evalMsg struct {
	Result *evaluator.Evaluation
	Err    error
}
