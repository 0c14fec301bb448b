package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptascent/internal/content"
	"github.com/abhisek/promptascent/internal/session"
	"github.com/abhisek/promptascent/internal/ui/components"
	"github.com/abhisek/promptascent/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.state == stateError {
		return centered(width, theme.Incorrect.Render("Something went wrong")+
			"\n\n"+theme.Body.Render(s.errMsg)+
			"\n\n"+theme.Hint.Render("Press any key to go back"))
	}
	if s.quitConfirm {
		return centered(width, theme.Body.Render("Leave this lesson?")+
			"\n\n"+theme.Hint.Render("Progress on finished stages is saved.")+
			"\n\n"+theme.Body.Render("[Y] Leave    [N] Keep going"))
	}
	if s.state == stateStageDone {
		return s.renderStageDone(width)
	}
	if s.run == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	switch s.state {
	case stateWaiting:
		b.WriteString(s.renderItem(width))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("Checking your answer...")))
	case stateFeedback:
		b.WriteString(s.renderItem(width))
		b.WriteString("\n\n")
		b.WriteString(s.renderFeedback(width))
	default:
		b.WriteString(s.renderItem(width))
	}

	return b.String()
}

// renderStatusLine shows stage progress, remaining items, and points.
func (s *Screen) renderStatusLine(width int) string {
	st := s.stages[s.stageIdx]

	label := st.Title
	if st.Challenge {
		label = "⚔ " + label
	}
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + label)

	done := s.run.Tracker().CompletedCount()
	total := s.run.Tracker().Len()
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Item %d/%d   ", done+1, total)) +
		lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("◆ %d pts", s.run.Points()))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderItem renders the current item by kind.
func (s *Screen) renderItem(width int) string {
	cur := s.run.Current()
	if cur == nil {
		return ""
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(cur.Item.Core().Title)
	worth := pointsTag(cur)

	var body string
	switch item := cur.Item.(type) {
	case *content.Snippet:
		body = theme.SnippetBox.Width(max(width-10, 20)).Render(item.Content) +
			"\n\n" + theme.Hint.Render("  Press Enter when you've read it")

	case *content.MultipleChoice:
		body = s.mc.View()

	case *content.FreeResponse:
		body = lipgloss.NewStyle().Foreground(theme.Text).Render(item.Question) +
			"\n\n  " + s.input.View()

	case *content.PromptingTask:
		body = lipgloss.NewStyle().Foreground(theme.Text).Render(item.TaskDescription) +
			"\n\n" + theme.Hint.Render("Guidance: "+item.EvaluationGuidance) +
			"\n\n" + s.editor.View()
	}

	return "  " + title + "  " + worth + "\n\n" + indent(body, 2)
}

// pointsTag shows what the current attempt is worth.
func pointsTag(cur *session.QueuedItem) string {
	tag := fmt.Sprintf("worth %d", cur.PointsToAward)
	if cur.AttemptNumber > 1 {
		tag = fmt.Sprintf("attempt %d, worth %d", cur.AttemptNumber, cur.PointsToAward)
	}
	return theme.Hint.Render("(" + tag + ")")
}

// renderFeedback shows the verdict overlay.
func (s *Screen) renderFeedback(width int) string {
	var b strings.Builder

	switch {
	case s.feedback.fromErr:
		b.WriteString(theme.Incorrect.Render("  Could not check your answer"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  The attempt still counts."))
	case s.feedback.verdict:
		b.WriteString(theme.Correct.Render("  Correct!"))
		if s.feedback.awarded > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("  +%d pts", s.feedback.awarded)))
		}
	default:
		b.WriteString(theme.Incorrect.Render("  Not quite"))
		if s.feedback.attemptsLeft > 0 {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%d more %s, it comes back later)",
				s.feedback.attemptsLeft, plural(s.feedback.attemptsLeft, "try", "tries"))))
		}
	}

	if s.feedback.score > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("  Score: %d/100", s.feedback.score)))
	}
	if s.feedback.text != "" {
		b.WriteString("\n\n")
		b.WriteString(indent(wrap(s.feedback.text, max(width-8, 20)), 2))
	}

	return b.String()
}

func (s *Screen) renderStageDone(width int) string {
	if len(s.results) == 0 {
		return ""
	}
	last := s.results[len(s.results)-1]

	var b strings.Builder
	style := theme.Correct
	if !last.Status.Completed() {
		style = theme.Incorrect
	}
	b.WriteString(centered(width, style.Render(fmt.Sprintf("Stage complete: %s", last.Status.DisplayName()))))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Body.Render(fmt.Sprintf(
		"%s  —  %d/%d correct, %d pts",
		last.StageTitle, last.Summary.ItemsCorrect, last.Summary.ItemsTotal, last.Summary.Points))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Lesson", float64(s.stageIdx+1)/float64(len(s.stages)), true, min(width-8, 50))
	b.WriteString(centered(width, bar.View()))
	b.WriteString("\n\n")

	next := s.stages[s.stageIdx+1]
	label := next.Title
	if next.Challenge {
		label = "⚔ " + label + " (no retries!)"
	}
	b.WriteString(centered(width, theme.Hint.Render("Next: "+label)))
	return b.String()
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(s)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
