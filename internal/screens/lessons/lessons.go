package lessons

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptascent/internal/content"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/router"
	"github.com/abhisek/promptascent/internal/screen"
	lessonscreen "github.com/abhisek/promptascent/internal/screens/lesson"
	"github.com/abhisek/promptascent/internal/ui/components"
	"github.com/abhisek/promptascent/internal/ui/layout"
	"github.com/abhisek/promptascent/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeTopic
	modeGenerating
	modeError
)

// entry pairs a selectable lesson with its completion state.
type entry struct {
	lesson    *content.Lesson
	completed bool
	needsLLM  bool
}

// PickerScreen lists available lessons and starts runs.
type PickerScreen struct {
	deps      lessonscreen.Deps
	catalog   content.Source
	generator *content.Generator

	entries []entry
	menu    components.Menu
	mode    mode
	topic   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)
var _ screen.EscHandler = (*PickerScreen)(nil)

// genDoneMsg carries the result of an AI lesson generation.
type genDoneMsg struct {
	lesson *content.Lesson
	err    error
}

// New creates the lesson picker. generator may be nil when no LLM provider
// is configured; the AI entry is then disabled, as are lessons whose items
// need the oracle.
func New(catalog content.Source, generator *content.Generator, deps lessonscreen.Deps) *PickerScreen {
	p := &PickerScreen{
		deps:      deps,
		catalog:   catalog,
		generator: generator,
	}
	p.load()
	return p
}

// load reads the catalog and the user's progress to build the menu.
func (p *PickerScreen) load() {
	ctx := context.Background()

	var prog *progress.UserProgress
	if p.deps.Progress != nil {
		prog, _ = p.deps.Progress.UserProgress(ctx, p.deps.UserID)
	}

	listings, err := p.catalog.Available(ctx)
	if err != nil {
		p.errMsg = err.Error()
		p.mode = modeError
		return
	}

	p.entries = p.entries[:0]
	for _, listing := range listings {
		l, err := p.catalog.Lesson(ctx, listing.ID)
		if err != nil || l == nil {
			continue
		}
		e := entry{lesson: l, needsLLM: needsOracle(l)}
		if prog != nil {
			for _, id := range prog.CompletedLessons {
				if id == l.ID {
					e.completed = true
					break
				}
			}
		}
		p.entries = append(p.entries, e)
	}

	items := make([]components.MenuItem, 0, len(p.entries)+1)
	for i := range p.entries {
		e := p.entries[i]
		detail := fmt.Sprintf("%d items", len(e.lesson.AllItems()))
		if e.lesson.Staged() {
			detail = fmt.Sprintf("%d stages", len(e.lesson.Stages))
		}
		if e.completed {
			detail += "  ✓"
		}
		disabled := e.needsLLM && p.deps.Oracle == nil
		if disabled {
			detail += "  (needs LLM)"
		}
		l := e.lesson
		items = append(items, components.MenuItem{
			Label:    l.Title,
			Detail:   detail,
			Disabled: disabled,
			Action: func() tea.Cmd {
				return p.startLesson(l)
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "Generate a lesson with AI",
		Detail:   "pick any topic",
		Disabled: p.generator == nil || p.deps.Oracle == nil,
		Action: func() tea.Cmd {
			p.mode = modeTopic
			p.topic = components.NewTextInput("What do you want to learn about?", 120)
			return p.topic.Init()
		},
	})

	p.menu = components.NewMenu(items)
}

// needsOracle reports whether a lesson contains items the LLM oracle must
// judge.
func needsOracle(l *content.Lesson) bool {
	for _, item := range l.AllItems() {
		switch item.Kind() {
		case content.KindFreeResponse, content.KindPromptingTask:
			return true
		}
	}
	return false
}

func (p *PickerScreen) startLesson(l *content.Lesson) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: lessonscreen.New(l, p.deps)}
	}
}

func (p *PickerScreen) generate(topic string) tea.Cmd {
	gen := p.generator
	return func() tea.Msg {
		l, err := gen.Generate(context.Background(), content.GenerateInput{Topic: topic})
		return genDoneMsg{lesson: l, err: err}
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

// HandleEsc backs out of topic entry or an in-flight generation instead of
// popping the picker.
func (p *PickerScreen) HandleEsc() (bool, tea.Cmd) {
	switch p.mode {
	case modeTopic, modeGenerating, modeError:
		p.mode = modeList
		p.errMsg = ""
		return true, nil
	}
	return false, nil
}

func (p *PickerScreen) Title() string {
	return "Lessons"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case modeGenerating:
		return []layout.KeyHint{{Key: "...", Description: "Generating lesson"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case genDoneMsg:
		// Dropped if the learner backed out while generation was running.
		if p.mode != modeGenerating {
			return p, nil
		}
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			p.mode = modeError
			return p, nil
		}
		p.mode = modeList
		return p, p.startLesson(msg.lesson)

	case tea.KeyMsg:
		switch p.mode {
		case modeError:
			p.mode = modeList
			p.errMsg = ""
			return p, nil

		case modeTopic:
			switch msg.String() {
			case "enter":
				topic := strings.TrimSpace(p.topic.Value())
				if topic == "" {
					return p, nil
				}
				p.mode = modeGenerating
				return p, p.generate(topic)
			}
			var cmd tea.Cmd
			p.topic, cmd = p.topic.Update(msg)
			return p, cmd

		case modeGenerating:
			return p, nil
		}

		var cmd tea.Cmd
		p.menu, cmd = p.menu.Update(msg)
		return p, cmd
	}

	if p.mode == modeTopic {
		var cmd tea.Cmd
		p.topic, cmd = p.topic.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PickerScreen) View(width, height int) string {
	switch p.mode {
	case modeError:
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			theme.Incorrect.Render("Lesson generation failed") +
				"\n\n" + theme.Body.Render(p.errMsg) +
				"\n\n" + theme.Hint.Render("Press any key to go back"))

	case modeTopic:
		return "\n" + theme.Body.Render("  What should the lesson cover?") +
			"\n\n  " + p.topic.View()

	case modeGenerating:
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			"\n\n" + theme.Hint.Render("Asking the model for a fresh lesson..."))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render("  Pick a lesson"))
	b.WriteString("\n\n")
	b.WriteString(p.menu.View())

	if sel := p.menu.Selected; sel >= 0 && sel < len(p.entries) {
		desc := p.entries[sel].lesson.Description
		if desc != "" {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("  " + desc))
		}
	}
	return b.String()
}
