package content

import (
	"errors"
	"strings"
	"testing"
)

func validFlatLesson() *Lesson {
	return &Lesson{
		ID:    "l1",
		Title: "Lesson One",
		Items: []Item{
			&Snippet{ItemCore: ItemCore{ID: "i1", Title: "Intro", Points: 2}, Content: "read"},
			&MultipleChoice{
				ItemCore:      ItemCore{ID: "i2", Title: "Pick", Points: 10},
				Question:      "which?",
				Options:       []string{"a", "b", "c"},
				CorrectOption: 1,
			},
			&FreeResponse{
				ItemCore:       ItemCore{ID: "i3", Title: "Explain", Points: 5},
				Question:       "why?",
				ExpectedAnswer: "because",
			},
			&PromptingTask{
				ItemCore:           ItemCore{ID: "i4", Title: "Write", Points: 8},
				TaskDescription:    "write a prompt",
				EvaluationGuidance: "must be specific",
			},
		},
	}
}

func TestValidateLessonOK(t *testing.T) {
	if err := ValidateLesson(validFlatLesson()); err != nil {
		t.Fatalf("valid lesson rejected: %v", err)
	}
}

func TestValidateLessonFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Lesson)
		wantMsg string
	}{
		{
			"empty id",
			func(l *Lesson) { l.ID = "" },
			"lesson id is empty",
		},
		{
			"empty title",
			func(l *Lesson) { l.Title = "" },
			"title is empty",
		},
		{
			"duplicate item id",
			func(l *Lesson) { l.Items[2].(*FreeResponse).ItemCore.ID = "i1" },
			"duplicate item id",
		},
		{
			"negative points",
			func(l *Lesson) { l.Items[1].(*MultipleChoice).ItemCore.Points = -1 },
			"non-negative",
		},
		{
			"empty snippet content",
			func(l *Lesson) { l.Items[0].(*Snippet).Content = "" },
			"snippet content is empty",
		},
		{
			"too few options",
			func(l *Lesson) { l.Items[1].(*MultipleChoice).Options = []string{"a"} },
			"option count",
		},
		{
			"too many options",
			func(l *Lesson) {
				l.Items[1].(*MultipleChoice).Options = []string{"a", "b", "c", "d", "e", "f"}
			},
			"option count",
		},
		{
			"correct option out of range",
			func(l *Lesson) { l.Items[1].(*MultipleChoice).CorrectOption = 3 },
			"out of range",
		},
		{
			"missing expected answer",
			func(l *Lesson) { l.Items[2].(*FreeResponse).ExpectedAnswer = "" },
			"expected answer is empty",
		},
		{
			"missing evaluation guidance",
			func(l *Lesson) { l.Items[3].(*PromptingTask).EvaluationGuidance = "" },
			"guidance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validFlatLesson()
			tt.mutate(l)
			err := ValidateLesson(l)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err type = %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateNilLesson(t *testing.T) {
	if err := ValidateLesson(nil); err == nil {
		t.Fatal("nil lesson accepted")
	}
}

func TestValidateStagedLesson(t *testing.T) {
	mkStage := func(id string, itemID string) Stage {
		return Stage{
			ID:    id,
			Title: "Stage " + id,
			Items: []Item{
				&MultipleChoice{
					ItemCore:      ItemCore{ID: itemID, Title: "q", Points: 5},
					Question:      "q?",
					Options:       []string{"a", "b"},
					CorrectOption: 0,
				},
			},
		}
	}

	l := &Lesson{ID: "staged", Title: "Staged"}
	for i := 0; i < StageCount; i++ {
		id := string(rune('a' + i))
		l.Stages = append(l.Stages, mkStage("s-"+id, "q-"+id))
	}
	if err := ValidateLesson(l); err != nil {
		t.Fatalf("valid staged lesson rejected: %v", err)
	}

	// Wrong stage count is a hard failure.
	short := *l
	short.Stages = l.Stages[:4]
	if err := ValidateLesson(&short); err == nil {
		t.Error("4-stage lesson accepted, want rejection")
	}

	// Duplicate ids across stages collide in completion tracking.
	dup := *l
	dup.Stages = append([]Stage(nil), l.Stages...)
	dup.Stages[5] = mkStage("s-f", "q-a")
	if err := ValidateLesson(&dup); err == nil {
		t.Error("duplicate item id across stages accepted")
	}

	// Flat items and stages are mutually exclusive.
	both := *l
	both.Items = validFlatLesson().Items
	if err := ValidateLesson(&both); err == nil {
		t.Error("lesson with both flat items and stages accepted")
	}
}

func TestIsQuestion(t *testing.T) {
	tests := []struct {
		kind ItemKind
		want bool
	}{
		{KindSnippet, false},
		{KindMultipleChoice, true},
		{KindFreeResponse, true},
		{KindPromptingTask, true},
	}
	for _, tt := range tests {
		if got := tt.kind.IsQuestion(); got != tt.want {
			t.Errorf("%q.IsQuestion() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
