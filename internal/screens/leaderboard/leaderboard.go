package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/screen"
	"github.com/abhisek/promptascent/internal/ui/theme"
)

// maxRows is how many ranked profiles the screen shows.
const maxRows = 10

// LeaderboardScreen ranks local profiles by total points.
type LeaderboardScreen struct {
	svc    *progress.Service
	userID string

	entries []progress.LeaderboardEntry
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)

// loadedMsg carries the ranked entries.
type loadedMsg struct {
	entries []progress.LeaderboardEntry
	err     error
}

// New creates the leaderboard screen.
func New(svc *progress.Service, userID string) *LeaderboardScreen {
	return &LeaderboardScreen{svc: svc, userID: userID}
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	svc := l.svc
	return func() tea.Msg {
		entries, err := svc.Leaderboard(context.Background(), maxRows)
		return loadedMsg{entries: entries, err: err}
	}
}

func (l *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		if m.err != nil {
			l.errMsg = m.err.Error()
		} else {
			l.entries = m.entries
		}
	}
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	if l.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			theme.Incorrect.Render("Could not load the leaderboard") +
				"\n\n" + theme.Body.Render(l.errMsg))
	}
	if len(l.entries) == 0 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			"\n\n" + theme.Hint.Render("No runs yet. Finish a lesson to get on the board."))
	}

	var b strings.Builder
	b.WriteString("\n")
	header := fmt.Sprintf("  %-4s %-16s %8s %5s %9s %7s", "#", "Player", "Points", "Lv", "Lessons", "Streak")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", min(width-6, 56))))
	b.WriteString("\n")

	for _, e := range l.entries {
		line := fmt.Sprintf("  %-4d %-16s %8d %5d %9d %7d",
			e.Rank, e.UserID, e.TotalPoints, points.Level(e.TotalPoints), e.Lessons, e.Streak)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.UserID == l.userID {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else if e.Rank == 1 {
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
