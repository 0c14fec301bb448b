package oracle

import "context"

// MockOracle is a canned-verdict oracle for tests and offline play.
type MockOracle struct {
	ValidateFunc func(in ValidationInput) (*ValidationResult, error)
	EvaluateFunc func(in EvaluationInput) (*EvaluationResult, error)

	ValidateCalls []ValidationInput
	EvaluateCalls []EvaluationInput
}

func (m *MockOracle) ValidateAnswer(_ context.Context, in ValidationInput) (*ValidationResult, error) {
	m.ValidateCalls = append(m.ValidateCalls, in)
	if m.ValidateFunc != nil {
		return m.ValidateFunc(in)
	}
	return &ValidationResult{IsValid: true, Feedback: "Correct."}, nil
}

func (m *MockOracle) EvaluatePrompt(_ context.Context, in EvaluationInput) (*EvaluationResult, error) {
	m.EvaluateCalls = append(m.EvaluateCalls, in)
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(in)
	}
	return &EvaluationResult{Score: 85, Explanation: "Solid prompt.", IsCorrect: true}, nil
}
