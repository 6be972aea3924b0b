package evaluator

import (
	"fmt"
	"strings"
)

const evaluateSystemPrompt = `You are a strict but encouraging programming instructor grading a learner's exercise submission. Judge only what the code does; never invent requirements the exercise does not state.`

func buildEvaluateUserMessage(ctx *ExerciseContext, sub Submission) string {
	var b strings.Builder

	writeExerciseContext(&b, ctx, sub.ExerciseID)

	lang := sub.Language
	if lang == "" && ctx != nil {
		lang = ctx.Language
	}
	if lang != "" {
		b.WriteString(fmt.Sprintf("Language: %s\n", lang))
	}

	b.WriteString("\nSubmission:\n")
	b.WriteString(sub.Solution)
	b.WriteString("\n")

	b.WriteString(`
Instructions:
Grade this submission:
1. Check the solution against each requirement and test case. A solution passes only if it fulfils all of them.
2. Score 0-100 for overall quality: correctness first, then clarity and idiomatic style.
3. Write 2-4 sentences of feedback addressed directly to the learner. Name one concrete thing done well and, if the solution falls short, the single most important thing to fix.
4. Report a verdict per test case.`)

	return b.String()
}

const hintSystemPrompt = `You are a patient programming tutor. A learner is stuck on an exercise and asks for a hint. Help them find the answer themselves; only at the highest level do you come close to giving it away.`

func buildHintUserMessage(ctx *ExerciseContext, req HintRequest) string {
	var b strings.Builder

	writeExerciseContext(&b, ctx, req.ExerciseID)

	b.WriteString("\nLearner's current code:\n")
	if strings.TrimSpace(req.CurrentCode) == "" {
		b.WriteString("(empty)\n")
	} else {
		b.WriteString(req.CurrentCode)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nHint level requested: %d of %d\n", req.Level, 3))
	b.WriteString(`
Instructions:
Give exactly one hint, calibrated to the level:
- Level 1: a gentle nudge toward the right concept or the part of the instructions being missed. No code.
- Level 2: the approach to take, step by step, without writing the solution.
- Level 3: nearly the answer: the key line or construct they need, leaving only assembly to the learner.
Keep it to 1-3 sentences.`)

	return b.String()
}

const testRunSystemPrompt = `You are a careful code reviewer acting as a test runner. Trace the learner's code against each test case exactly as written; do not assume the code works.`

func buildTestRunUserMessage(ctx *ExerciseContext, exerciseID, code string) string {
	var b strings.Builder

	writeExerciseContext(&b, ctx, exerciseID)

	b.WriteString("\nCode under test:\n")
	b.WriteString(code)
	b.WriteString("\n")

	b.WriteString(`
Instructions:
For each test case, trace the code's execution on the input and report:
1. The output the code actually produces (not the expected one).
2. Whether it matches the expected output.
If the code would not run at all (syntax error, missing function), fail every test case with the error.`)

	return b.String()
}

// writeExerciseContext emits whatever exercise detail is available.
func writeExerciseContext(b *strings.Builder, ctx *ExerciseContext, exerciseID string) {
	if ctx == nil {
		b.WriteString(fmt.Sprintf("Exercise: %s (details unavailable)\n", exerciseID))
		return
	}

	b.WriteString(fmt.Sprintf("Exercise: %s\n", ctx.Title))
	if ctx.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", ctx.Description))
	}

	if len(ctx.Instructions) > 0 {
		b.WriteString("\nRequirements:\n")
		for i, inst := range ctx.Instructions {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, inst))
		}
	}

	if len(ctx.TestCases) > 0 {
		b.WriteString("\nTest cases:\n")
		for _, tc := range ctx.TestCases {
			b.WriteString(fmt.Sprintf("- input: %s\n  expected: %s\n", tc.Input, tc.ExpectedOutput))
		}
	}
}
