package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/promptascent/internal/llm"
)

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantValid bool
	}{
		{"correct answer", `{"is_valid": true, "feedback": "Exactly right."}`, true},
		{"wrong answer", `{"is_valid": false, "feedback": "You missed the key idea of specificity."}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(tt.response),
			})
			o := NewLLMOracle(mock, DefaultConfig())

			res, err := o.ValidateAnswer(context.Background(), ValidationInput{
				Question:       "Why should prompts state the output format?",
				ExpectedAnswer: "So the model knows exactly what shape of answer to produce",
				UserAnswer:     "it tells the model what to output",
			})
			if err != nil {
				t.Fatalf("validate: %v", err)
			}
			if res.IsValid != tt.wantValid {
				t.Errorf("is valid = %v, want %v", res.IsValid, tt.wantValid)
			}
			if res.Feedback == "" {
				t.Error("expected non-empty feedback")
			}
		})
	}
}

func TestValidateAnswerRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_valid": true, "feedback": "ok"}`),
	})
	o := NewLLMOracle(mock, DefaultConfig())

	_, err := o.ValidateAnswer(context.Background(), ValidationInput{
		Question:       "Q",
		ExpectedAnswer: "E",
		UserAnswer:     "U",
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "answer-verdict" {
		t.Errorf("schema = %+v, want answer-verdict", req.Schema)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	body := req.Messages[0].Content
	for _, want := range []string{"Q", "E", "U"} {
		if !strings.Contains(body, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestEvaluatePrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 82, "explanation": "Clear and specific.", "is_correct": true}`),
	})
	o := NewLLMOracle(mock, DefaultConfig())

	res, err := o.EvaluatePrompt(context.Background(), EvaluationInput{
		Prompt:   "Summarize the article in three bullet points for a general audience.",
		Guidance: "The prompt must request a summary with an explicit length limit.",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Score != 82 {
		t.Errorf("score = %d, want 82", res.Score)
	}
	if !res.IsCorrect {
		t.Error("expected is correct")
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "prompt-evaluation" {
		t.Errorf("schema = %+v, want prompt-evaluation", req.Schema)
	}
}

func TestEvaluatePromptClampsScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"above range", 140, 100},
		{"below range", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(
					`{"score": ` + strconv.Itoa(tt.score) + `, "explanation": "x", "is_correct": false}`),
			})
			o := NewLLMOracle(mock, DefaultConfig())

			res, err := o.EvaluatePrompt(context.Background(), EvaluationInput{
				Prompt:   "p",
				Guidance: "g",
			})
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if res.Score != tt.want {
				t.Errorf("score = %d, want %d", res.Score, tt.want)
			}
		})
	}
}

func TestEvaluatePromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 50, "explanation": "x", "is_correct": false}`),
	})
	o := NewLLMOracle(mock, DefaultConfig())

	_, err := o.EvaluatePrompt(context.Background(), EvaluationInput{
		Prompt:   "p",
		Context:  "the learner is extracting dates from emails",
		Guidance: "g",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "extracting dates") {
		t.Error("user message missing task context")
	}
}

func TestOracleProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	o := NewLLMOracle(mock, DefaultConfig())

	_, err := o.ValidateAnswer(context.Background(), ValidationInput{
		Question: "q", ExpectedAnswer: "e", UserAnswer: "u",
	})
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestOracleMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	o := NewLLMOracle(mock, DefaultConfig())

	_, err := o.ValidateAnswer(context.Background(), ValidationInput{
		Question: "q", ExpectedAnswer: "e", UserAnswer: "u",
	})
	if err == nil {
		t.Fatal("expected parse error")
	}
}
