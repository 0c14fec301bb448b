package content

import "context"

// StageCount is the fixed number of stages in a staged lesson.
const StageCount = 6

// Stage is one ordered phase of a staged lesson.
type Stage struct {
	ID    string
	Title string
	Items []Item

	// Challenge marks an all-or-nothing stage: every item is attempted
	// exactly once and the stage passes only if every attempt was correct.
	Challenge bool
}

// Lesson is a titled unit of content. Items holds a flat lesson; Stages
// holds the staged variant. Exactly one of the two is populated.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Items       []Item
	Stages      []Stage
}

// Staged reports whether the lesson uses the staged variant.
func (l *Lesson) Staged() bool { return len(l.Stages) > 0 }

// AllItems returns every item in lesson order, flattening stages.
func (l *Lesson) AllItems() []Item {
	if !l.Staged() {
		return l.Items
	}
	var items []Item
	for _, st := range l.Stages {
		items = append(items, st.Items...)
	}
	return items
}

// Listing is the summary shape for lesson pickers.
type Listing struct {
	ID          string
	Title       string
	Description string
	ItemCount   int
}

// Source provides lessons. Implementations: the built-in catalog and the
// LLM-backed generator.
type Source interface {
	// Lesson returns the lesson with the given id, or (nil, nil) if the
	// source has no such lesson.
	Lesson(ctx context.Context, id string) (*Lesson, error)

	// Available lists the lessons this source can serve.
	Available(ctx context.Context) ([]Listing, error)
}

// Listing builds the Listing for a lesson.
func (l *Lesson) Listing() Listing {
	return Listing{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		ItemCount:   len(l.AllItems()),
	}
}
