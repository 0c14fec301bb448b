package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/promptascent/internal/llm"
)

// Config tunes the LLM-backed oracle.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns judging defaults. Temperature is kept low because a
// verdict should be reproducible, not creative.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.1,
	}
}

// LLMOracle judges answers by asking an LLM for a structured verdict.
type LLMOracle struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMOracle creates an oracle backed by the given provider.
func NewLLMOracle(provider llm.Provider, cfg Config) *LLMOracle {
	return &LLMOracle{provider: provider, cfg: cfg}
}

func (o *LLMOracle) ValidateAnswer(ctx context.Context, in ValidationInput) (*ValidationResult, error) {
	ctx = llm.WithPurpose(ctx, "answer-validation")

	resp, err := o.provider.Generate(ctx, llm.Request{
		System: validateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildValidateMessage(in)},
		},
		Schema:      verdictSchema,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("validate answer: %w", err)
	}

	var out struct {
		IsValid  bool   `json:"is_valid"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse verdict: %w", err)
	}
	return &ValidationResult{
		IsValid:  out.IsValid,
		Feedback: out.Feedback,
	}, nil
}

func (o *LLMOracle) EvaluatePrompt(ctx context.Context, in EvaluationInput) (*EvaluationResult, error) {
	ctx = llm.WithPurpose(ctx, "prompt-evaluation")

	resp, err := o.provider.Generate(ctx, llm.Request{
		System: evaluateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluateMessage(in)},
		},
		Schema:      evaluationSchema,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate prompt: %w", err)
	}

	var out struct {
		Score       int    `json:"score"`
		Explanation string `json:"explanation"`
		IsCorrect   bool   `json:"is_correct"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse evaluation: %w", err)
	}
	if out.Score < 0 {
		out.Score = 0
	}
	if out.Score > 100 {
		out.Score = 100
	}
	return &EvaluationResult{
		Score:       out.Score,
		Explanation: out.Explanation,
		IsCorrect:   out.IsCorrect,
	}, nil
}
