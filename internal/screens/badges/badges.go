package badges

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/screen"
	"github.com/abhisek/promptascent/internal/store"
	"github.com/abhisek/promptascent/internal/ui/theme"
)

// BadgesScreen shows the user's earned badges, newest first.
type BadgesScreen struct {
	events store.EventRepo
	userID string

	records []store.BadgeRecord
	errMsg  string
}

var _ screen.Screen = (*BadgesScreen)(nil)

type loadedMsg struct {
	records []store.BadgeRecord
	err     error
}

// New creates the badges screen.
func New(events store.EventRepo, userID string) *BadgesScreen {
	return &BadgesScreen{events: events, userID: userID}
}

func (b *BadgesScreen) Init() tea.Cmd {
	events := b.events
	userID := b.userID
	return func() tea.Msg {
		records, err := events.Badges(context.Background(), userID)
		return loadedMsg{records: records, err: err}
	}
}

func (b *BadgesScreen) Title() string {
	return "Badges"
}

func (b *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		if m.err != nil {
			b.errMsg = m.err.Error()
		} else {
			b.records = m.records
		}
	}
	return b, nil
}

func (b *BadgesScreen) View(width, height int) string {
	if b.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			theme.Incorrect.Render("Could not load badges") +
				"\n\n" + theme.Body.Render(b.errMsg))
	}
	if len(b.records) == 0 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			"\n\n" + theme.Hint.Render("No badges yet. Complete a lesson to earn your first."))
	}

	// Counts per type, then the history.
	counts := map[string]int{}
	for _, r := range b.records {
		counts[r.BadgeType]++
	}

	var s strings.Builder
	s.WriteString("\n  ")
	for _, t := range points.AllBadgeTypes() {
		s.WriteString(fmt.Sprintf("%s %s × %d    ", t.Icon(), t.DisplayName(), counts[string(t)]))
	}
	s.WriteString("\n\n")
	s.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(min(width-6, 56), 1))))
	s.WriteString("\n\n")

	// Newest first.
	shown := 0
	for i := len(b.records) - 1; i >= 0 && shown < 12; i-- {
		r := b.records[i]
		t := points.BadgeType(r.BadgeType)
		line := fmt.Sprintf("  %s %-10s %s  %s",
			t.Icon(),
			points.Rarity(r.Rarity).DisplayName(),
			r.Timestamp.Format("Jan 02"),
			r.Reason)
		s.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		s.WriteString("\n")
		shown++
	}
	return s.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
