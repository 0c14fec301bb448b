package content

import "fmt"

// Option count bounds for multiple-choice items.
const (
	MinOptions = 2
	MaxOptions = 5
)

// ValidationError describes why a lesson failed structural validation.
type ValidationError struct {
	LessonID string
	ItemID   string // empty for lesson-level failures
	Message  string
}

func (e *ValidationError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("lesson %q item %q: %s", e.LessonID, e.ItemID, e.Message)
	}
	return fmt.Sprintf("lesson %q: %s", e.LessonID, e.Message)
}

// ValidateLesson checks a lesson's structure before a run may start.
// A lesson session must never begin with an invalid item set; in particular
// duplicate item ids are rejected outright because completion tracking is
// keyed by id.
func ValidateLesson(l *Lesson) error {
	if l == nil {
		return &ValidationError{Message: "lesson is nil"}
	}
	if l.ID == "" {
		return &ValidationError{Message: "lesson id is empty"}
	}
	if l.Title == "" {
		return &ValidationError{LessonID: l.ID, Message: "lesson title is empty"}
	}
	if l.Staged() {
		if len(l.Items) > 0 {
			return &ValidationError{LessonID: l.ID, Message: "lesson has both flat items and stages"}
		}
		if len(l.Stages) != StageCount {
			return &ValidationError{
				LessonID: l.ID,
				Message:  fmt.Sprintf("staged lesson has %d stages, want %d", len(l.Stages), StageCount),
			}
		}
		stageIDs := make(map[string]bool)
		for i, st := range l.Stages {
			if st.ID == "" {
				return &ValidationError{LessonID: l.ID, Message: fmt.Sprintf("stage %d has empty id", i)}
			}
			if stageIDs[st.ID] {
				return &ValidationError{LessonID: l.ID, Message: fmt.Sprintf("duplicate stage id %q", st.ID)}
			}
			stageIDs[st.ID] = true
		}
	}

	seen := make(map[string]bool)
	for _, it := range l.AllItems() {
		if err := validateItem(l.ID, it); err != nil {
			return err
		}
		id := it.Core().ID
		if seen[id] {
			return &ValidationError{
				LessonID: l.ID,
				ItemID:   id,
				Message:  "duplicate item id",
			}
		}
		seen[id] = true
	}
	return nil
}

func validateItem(lessonID string, it Item) error {
	fail := func(msg string) error {
		return &ValidationError{LessonID: lessonID, ItemID: it.Core().ID, Message: msg}
	}

	core := it.Core()
	if core.ID == "" {
		return &ValidationError{LessonID: lessonID, Message: "item has empty id"}
	}
	if core.Title == "" {
		return fail("item title is empty")
	}
	if core.Points < 0 {
		return fail("points must be non-negative")
	}
	if core.PointsForIncorrect < 0 {
		return fail("points_for_incorrect must be non-negative")
	}

	switch v := it.(type) {
	case *Snippet:
		if v.Content == "" {
			return fail("snippet content is empty")
		}
	case *MultipleChoice:
		if v.Question == "" {
			return fail("question is empty")
		}
		if len(v.Options) < MinOptions || len(v.Options) > MaxOptions {
			return fail(fmt.Sprintf("option count %d outside %d-%d", len(v.Options), MinOptions, MaxOptions))
		}
		if v.CorrectOption < 0 || v.CorrectOption >= len(v.Options) {
			return fail(fmt.Sprintf("correct option index %d out of range", v.CorrectOption))
		}
	case *FreeResponse:
		if v.Question == "" {
			return fail("question is empty")
		}
		if v.ExpectedAnswer == "" {
			return fail("expected answer is empty")
		}
	case *PromptingTask:
		if v.TaskDescription == "" {
			return fail("task description is empty")
		}
		if v.EvaluationGuidance == "" {
			return fail("evaluation guidance is empty")
		}
	default:
		return fail(fmt.Sprintf("unknown item kind %q", it.Kind()))
	}
	return nil
}
