package content

import (
	"context"
	"testing"
)

func TestCatalogLessonsAreValid(t *testing.T) {
	c := NewCatalog()
	listings, err := c.Available(context.Background())
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(listings) == 0 {
		t.Fatal("catalog has no lessons")
	}

	for _, listing := range listings {
		lesson, err := c.Lesson(context.Background(), listing.ID)
		if err != nil {
			t.Fatalf("lesson %s: %v", listing.ID, err)
		}
		if lesson == nil {
			t.Fatalf("listed lesson %s not found", listing.ID)
		}
		if err := ValidateLesson(lesson); err != nil {
			t.Errorf("catalog lesson %s invalid: %v", listing.ID, err)
		}
		if listing.ItemCount != len(lesson.AllItems()) {
			t.Errorf("listing %s item count = %d, lesson has %d",
				listing.ID, listing.ItemCount, len(lesson.AllItems()))
		}
	}
}

func TestCatalogUnknownLesson(t *testing.T) {
	c := NewCatalog()
	lesson, err := c.Lesson(context.Background(), "no-such-lesson")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if lesson != nil {
		t.Errorf("unknown id returned lesson %s", lesson.ID)
	}
}

func TestCatalogStagedLessonShape(t *testing.T) {
	c := NewCatalog()
	lesson, err := c.Lesson(context.Background(), "context-climb")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if lesson == nil {
		t.Fatal("context-climb missing from catalog")
	}
	if !lesson.Staged() {
		t.Fatal("context-climb should be staged")
	}
	if len(lesson.Stages) != StageCount {
		t.Fatalf("stages = %d, want %d", len(lesson.Stages), StageCount)
	}

	// Exactly the final stage is the challenge.
	for i, st := range lesson.Stages {
		wantChallenge := i == StageCount-1
		if st.Challenge != wantChallenge {
			t.Errorf("stage %s challenge = %v, want %v", st.ID, st.Challenge, wantChallenge)
		}
	}

	// Challenge stages hold only question items.
	last := lesson.Stages[StageCount-1]
	for _, it := range last.Items {
		if !it.Kind().IsQuestion() {
			t.Errorf("challenge stage contains non-question item %s", it.Core().ID)
		}
	}
}

func TestLessonListing(t *testing.T) {
	l := validFlatLesson()
	listing := l.Listing()
	if listing.ID != l.ID || listing.Title != l.Title {
		t.Errorf("listing = %+v", listing)
	}
	if listing.ItemCount != 4 {
		t.Errorf("item count = %d, want 4", listing.ItemCount)
	}
}
