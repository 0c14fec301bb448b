// Package oracle judges learner answers. Free-response answers are checked
// against an expected answer; authored prompts are scored against evaluation
// guidance. Both judgments come from an LLM behind the llm.Provider
// abstraction; multiple-choice answers never reach the oracle because the
// correct option index is known locally.
package oracle

import "context"

// ValidationInput asks whether a free-response answer matches the expected
// answer in meaning.
type ValidationInput struct {
	Question       string
	ExpectedAnswer string
	UserAnswer     string
}

// ValidationResult is the oracle's judgment of a free-response answer.
type ValidationResult struct {
	IsValid  bool
	Feedback string
}

// EvaluationInput asks for a quality score of a learner-authored prompt.
type EvaluationInput struct {
	Prompt   string
	Context  string // optional background for the task
	Guidance string
}

// EvaluationResult is the oracle's judgment of an authored prompt.
type EvaluationResult struct {
	Score       int // 0-100
	Explanation string
	IsCorrect   bool
}

// Oracle produces correctness verdicts for submitted answers. Calls block on
// the network; callers disable the current item's controls until the verdict
// arrives and treat an error as an incorrect verdict that consumes an
// attempt.
type Oracle interface {
	ValidateAnswer(ctx context.Context, in ValidationInput) (*ValidationResult, error)
	EvaluatePrompt(ctx context.Context, in EvaluationInput) (*EvaluationResult, error)
}
