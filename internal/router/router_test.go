package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptascent/internal/screen"
)

// stubScreen records lifecycle calls for navigation tests.
type stubScreen struct {
	name     string
	inited   bool
	lastMsg  tea.Msg
	updCount int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	s.updCount++
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Fatal("Active() should be the initial screen")
	}

	lesson := &stubScreen{name: "lesson"}
	r.Push(lesson)
	if r.Depth() != 2 {
		t.Fatalf("Depth() after push = %d, want 2", r.Depth())
	}
	if !lesson.inited {
		t.Error("Push should call Init on the new screen")
	}
	if r.Active() != lesson {
		t.Error("Active() should be the pushed screen")
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("Depth() after pop = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Error("Active() should be home after pop")
	}
}

func TestPopAtRootIsNoop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Error("root screen should survive a pop")
	}
}

func TestReplaceSwapsTop(t *testing.T) {
	home := &stubScreen{name: "home"}
	lesson := &stubScreen{name: "lesson"}
	summary := &stubScreen{name: "summary"}

	r := New(home)
	r.Push(lesson)
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Fatalf("Depth() after replace = %d, want 2", r.Depth())
	}
	if r.Active() != summary {
		t.Error("Active() should be the replacement screen")
	}
	if !summary.inited {
		t.Error("Replace should call Init on the new screen")
	}

	// Popping the replacement lands below the replaced screen.
	r.Pop()
	if r.Active() != home {
		t.Error("pop after replace should land on home")
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	home := &stubScreen{name: "home"}
	lesson := &stubScreen{name: "lesson"}
	summary := &stubScreen{name: "summary"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: lesson})
	if r.Active() != lesson {
		t.Fatal("PushScreenMsg should push")
	}

	r.Update(ReplaceScreenMsg{Screen: summary})
	if r.Active() != summary {
		t.Fatal("ReplaceScreenMsg should replace the top screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Fatal("PopScreenMsg should pop")
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	home := &stubScreen{name: "home"}
	lesson := &stubScreen{name: "lesson"}
	r := New(home)
	r.Push(lesson)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if lesson.updCount != 1 {
		t.Errorf("active screen updates = %d, want 1", lesson.updCount)
	}
	if home.updCount != 0 {
		t.Errorf("inactive screen updates = %d, want 0", home.updCount)
	}
	if _, ok := lesson.lastMsg.(tea.WindowSizeMsg); !ok {
		t.Errorf("forwarded message = %T, want tea.WindowSizeMsg", lesson.lastMsg)
	}
}

func TestViewRendersActive(t *testing.T) {
	home := &stubScreen{name: "home"}
	lesson := &stubScreen{name: "lesson"}
	r := New(home)
	r.Push(lesson)

	if got := r.View(80, 20); got != "lesson" {
		t.Errorf("View() = %q, want %q", got, "lesson")
	}
}
