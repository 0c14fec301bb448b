package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/promptascent/internal/llm"
)

// GenerateInput holds the context for generating one lesson.
type GenerateInput struct {
	Topic     string
	Audience  string
	ItemCount int
}

// Generator produces lessons from an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a lesson generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate produces a validated lesson for the given input. Structurally
// invalid model output is retried up to cfg.GenerateAttempts times; the
// last validation error is returned if every attempt fails.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson-generation")

	if input.ItemCount <= 0 {
		input.ItemCount = 6
	}

	req := llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGeneratorUserMessage(input)},
		},
		Schema:      LessonSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	attempts := g.cfg.GenerateAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("lesson generation: %w", err)
		}

		lesson, err := parseLesson(resp.Content)
		if err == nil {
			err = ValidateLesson(lesson)
		}
		if err == nil {
			return lesson, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("lesson generation: %w", lastErr)
}

type lessonOutput struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Items       []itemOutput `json:"items"`
}

type itemOutput struct {
	Type           string          `json:"type"`
	Snippet        *itemCoreOutput `json:"snippet"`
	MultipleChoice *itemCoreOutput `json:"multiple_choice"`
	FreeResponse   *itemCoreOutput `json:"free_response"`
	PromptingTask  *itemCoreOutput `json:"prompting_task"`
}

type itemCoreOutput struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	PointsAwarded      int      `json:"points_awarded"`
	PointsForIncorrect int      `json:"points_for_incorrect"`
	Content            string   `json:"content"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	ExpectedAnswer     string   `json:"expected_answer"`
	TaskDescription    string   `json:"task_description"`
	EvaluationGuidance string   `json:"evaluation_guidance"`
}

func (o *itemCoreOutput) core() ItemCore {
	return ItemCore{
		ID:                 o.ID,
		Title:              o.Title,
		Points:             o.PointsAwarded,
		PointsForIncorrect: o.PointsForIncorrect,
	}
}

func parseLesson(raw json.RawMessage) (*Lesson, error) {
	var out lessonOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	lesson := &Lesson{
		ID:          out.ID,
		Title:       out.Title,
		Description: out.Description,
	}
	for i, it := range out.Items {
		parsed, err := parseItem(it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		lesson.Items = append(lesson.Items, parsed)
	}
	return lesson, nil
}

func parseItem(out itemOutput) (Item, error) {
	switch out.Type {
	case string(KindSnippet):
		if out.Snippet == nil {
			return nil, fmt.Errorf("snippet item missing snippet body")
		}
		return &Snippet{ItemCore: out.Snippet.core(), Content: out.Snippet.Content}, nil
	case string(KindMultipleChoice):
		if out.MultipleChoice == nil {
			return nil, fmt.Errorf("multiple_choice item missing body")
		}
		return &MultipleChoice{
			ItemCore:      out.MultipleChoice.core(),
			Question:      out.MultipleChoice.Question,
			Options:       out.MultipleChoice.Options,
			CorrectOption: out.MultipleChoice.CorrectOptionIndex,
		}, nil
	case string(KindFreeResponse):
		if out.FreeResponse == nil {
			return nil, fmt.Errorf("free_response item missing body")
		}
		return &FreeResponse{
			ItemCore:       out.FreeResponse.core(),
			Question:       out.FreeResponse.Question,
			ExpectedAnswer: out.FreeResponse.ExpectedAnswer,
		}, nil
	case string(KindPromptingTask):
		if out.PromptingTask == nil {
			return nil, fmt.Errorf("prompting_task item missing body")
		}
		return &PromptingTask{
			ItemCore:           out.PromptingTask.core(),
			TaskDescription:    out.PromptingTask.TaskDescription,
			EvaluationGuidance: out.PromptingTask.EvaluationGuidance,
		}, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", out.Type)
	}
}
