package summary

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/router"
	"github.com/abhisek/promptascent/internal/screen"
	"github.com/abhisek/promptascent/internal/ui/layout"
	"github.com/abhisek/promptascent/internal/ui/theme"
)

// StageLine is one stage's row in the summary.
type StageLine struct {
	Title        string
	Challenge    bool
	Status       progress.StageStatus
	Points       int
	ItemsCorrect int
	ItemsTotal   int
}

// Result aggregates a finished lesson for display.
type Result struct {
	LessonID     string
	LessonTitle  string
	Stages       []StageLine
	TotalPoints  int
	ItemsCorrect int
	ItemsTotal   int
	Duration     time.Duration
	Awards       []points.BadgeAward
}

// SummaryScreen displays the lesson summary.
type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s — complete!", res.LessonTitle)))
	b.WriteString("\n\n")

	mins := int(res.Duration.Minutes())
	secs := int(res.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Items: %d        Correct: %d        Points: %d",
		res.ItemsTotal, res.ItemsCorrect, res.TotalPoints)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Per-stage rows, skipped for flat single-stage lessons.
	if len(res.Stages) > 1 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Stages")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, st := range res.Stages {
			title := st.Title
			if st.Challenge {
				title = "⚔ " + title
			}
			line := fmt.Sprintf("  %-28s %d/%d correct    %d pts    %s",
				title, st.ItemsCorrect, st.ItemsTotal, st.Points, st.Status.DisplayName())

			style := lipgloss.NewStyle().Foreground(theme.Text)
			switch st.Status {
			case progress.StatusCompletedPerfect:
				style = style.Foreground(theme.Success)
			case progress.StatusFailedStage:
				style = style.Foreground(theme.Error)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	if len(res.Awards) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, a := range res.Awards {
			line := fmt.Sprintf("  %s %s %s — %s",
				a.Type.Icon(),
				a.Rarity.DisplayName(),
				a.Type.DisplayName(),
				a.Reason)
			style := lipgloss.NewStyle().Foreground(rarityColor(a.Rarity))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// rarityColor returns the theme color for a badge rarity level.
func rarityColor(r points.Rarity) color.Color {
	switch r {
	case points.RarityCommon:
		return theme.Text
	case points.RarityRare:
		return theme.Secondary
	case points.RarityEpic:
		return theme.Primary
	case points.RarityLegendary:
		return theme.Accent
	default:
		return theme.Text
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
