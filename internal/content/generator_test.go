package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/promptascent/internal/llm"
)

const validLessonJSON = `{
	"id": "gen-1",
	"title": "Delimiters",
	"description": "Using delimiters to separate instructions from data",
	"items": [
		{
			"type": "snippet",
			"snippet": {
				"id": "item-1", "title": "Why delimiters", "points_awarded": 2,
				"points_for_incorrect": 0,
				"content": "Delimiters mark where data begins."
			}
		},
		{
			"type": "multiple_choice",
			"multiple_choice": {
				"id": "item-2", "title": "Pick the delimiter", "points_awarded": 5,
				"points_for_incorrect": 0,
				"question": "Which marks a block?",
				"options": ["triple backticks", "a wink"],
				"correct_option_index": 0
			}
		},
		{
			"type": "free_response",
			"free_response": {
				"id": "item-3", "title": "Explain", "points_awarded": 5,
				"points_for_incorrect": 0,
				"question": "Why separate instructions from data?",
				"expected_answer": "So the model does not confuse data with instructions"
			}
		},
		{
			"type": "prompting_task",
			"prompting_task": {
				"id": "item-4", "title": "Try it", "points_awarded": 10,
				"points_for_incorrect": 0,
				"task_description": "Write a prompt that summarizes quoted text",
				"evaluation_guidance": "Must use a delimiter around the input text"
			}
		}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validLessonJSON),
	})
	g := NewGenerator(mock, DefaultConfig())

	lesson, err := g.Generate(context.Background(), GenerateInput{
		Topic:     "delimiters",
		Audience:  "beginners",
		ItemCount: 4,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lesson.ID != "gen-1" {
		t.Errorf("id = %q", lesson.ID)
	}
	if len(lesson.Items) != 4 {
		t.Fatalf("items = %d, want 4", len(lesson.Items))
	}

	kinds := []ItemKind{KindSnippet, KindMultipleChoice, KindFreeResponse, KindPromptingTask}
	for i, item := range lesson.Items {
		if item.Kind() != kinds[i] {
			t.Errorf("item %d kind = %q, want %q", i, item.Kind(), kinds[i])
		}
	}

	mc, ok := lesson.Items[1].(*MultipleChoice)
	if !ok {
		t.Fatalf("item 1 type = %T", lesson.Items[1])
	}
	if mc.CorrectOption != 0 || len(mc.Options) != 2 {
		t.Errorf("multiple choice = %+v", mc)
	}

	// The request carried the lesson schema and the topic.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != LessonSchema.Name {
		t.Errorf("schema = %+v", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "delimiters") {
		t.Error("user message missing topic")
	}
}

func TestGenerateRetriesOnInvalidStructure(t *testing.T) {
	// First response duplicates an item id; second is valid.
	bad := strings.Replace(validLessonJSON, `"id": "item-2"`, `"id": "item-1"`, 1)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
		llm.MockResponse{Content: json.RawMessage(validLessonJSON)},
	)
	g := NewGenerator(mock, DefaultConfig())

	lesson, err := g.Generate(context.Background(), GenerateInput{Topic: "x"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lesson == nil {
		t.Fatal("expected lesson after retry")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	bad := strings.Replace(validLessonJSON, `"id": "gen-1"`, `"id": ""`, 1)
	cfg := DefaultConfig()
	cfg.GenerateAttempts = 2
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	g := NewGenerator(mock, cfg)

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "x"})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateProviderErrorNotRetried(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "x"})
	if err == nil {
		t.Fatal("expected provider error")
	}
	// Transport-level retries belong to the provider decorator, not the
	// generator's structural retry loop.
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestParseItemUnknownType(t *testing.T) {
	_, err := parseItem(itemOutput{Type: "riddle"})
	if err == nil {
		t.Fatal("unknown type accepted")
	}
}

func TestParseItemMissingBody(t *testing.T) {
	_, err := parseItem(itemOutput{Type: string(KindSnippet)})
	if err == nil {
		t.Fatal("snippet without body accepted")
	}
}
