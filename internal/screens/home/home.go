package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptascent/internal/content"
	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/router"
	"github.com/abhisek/promptascent/internal/screen"
	"github.com/abhisek/promptascent/internal/screens/badges"
	"github.com/abhisek/promptascent/internal/screens/leaderboard"
	lessonscreen "github.com/abhisek/promptascent/internal/screens/lesson"
	"github.com/abhisek/promptascent/internal/screens/lessons"
	"github.com/abhisek/promptascent/internal/ui/components"
	"github.com/abhisek/promptascent/internal/ui/theme"
)

var banner = []string{
	"╔══════════════════════════════════════╗",
	"║          P R O M P T                 ║",
	"║                  A S C E N T         ║",
	"╚══════════════════════════════════════╝",
}

// HomeScreen is the main entry screen.
type HomeScreen struct {
	deps    lessonscreen.Deps
	catalog content.Source

	menu     components.Menu
	progress *progress.UserProgress
}

var _ screen.Screen = (*HomeScreen)(nil)

// Options carries everything the home screen and its children need.
type Options struct {
	Catalog   content.Source
	Generator *content.Generator
	Deps      lessonscreen.Deps
}

// statsMsg refreshes the learner standing shown on the home screen.
type statsMsg struct {
	progress *progress.UserProgress
}

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		deps:    opts.Deps,
		catalog: opts.Catalog,
	}

	items := []components.MenuItem{
		{Label: "LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lessons.New(opts.Catalog, opts.Generator, opts.Deps),
				}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: leaderboard.New(opts.Deps.Progress, opts.Deps.UserID),
				}
			}
		}},
		{Label: "BADGES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: badges.New(opts.Deps.Events, opts.Deps.UserID),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	svc := h.deps.Progress
	userID := h.deps.UserID
	return func() tea.Msg {
		if svc == nil {
			return statsMsg{}
		}
		p, err := svc.UserProgress(context.Background(), userID)
		if err != nil {
			return statsMsg{}
		}
		return statsMsg{progress: p}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsMsg); ok {
		h.progress = m.progress
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Refresh reloads stats. The app calls this when the home screen becomes
// active again after a lesson.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadStats()
}

// Stats returns the standing for the app header.
func (h *HomeScreen) Stats() (pts, level, streak int) {
	if h.progress == nil {
		return 0, 1, 0
	}
	return h.progress.TotalPoints, points.Level(h.progress.TotalPoints), h.progress.Streak
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	// Banner.
	var art strings.Builder
	for _, line := range banner {
		art.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(line))
		art.WriteString("\n")
	}
	art.WriteString(theme.Subtitle.Width(lipgloss.Width(banner[0])).Render("learn to talk to machines"))
	sections = append(sections, art.String())

	// Standing.
	sections = append(sections, h.renderStats(width))

	// Menu.
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats(width int) string {
	pts, level, streak := h.Stats()

	lessonsDone := 0
	if h.progress != nil {
		lessonsDone = len(h.progress.CompletedLessons)
	}

	line := fmt.Sprintf("◆ %d pts    Lv %d    📘 %d lessons    🔥 %d day streak",
		pts, level, lessonsDone, streak)
	stats := lipgloss.NewStyle().Foreground(theme.Text).Render(line)

	barWidth := lipgloss.Width(line)
	if barWidth < 30 {
		barWidth = 30
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Lv %d", level+1),
		points.LevelProgress(pts),
		false,
		barWidth,
	)

	return stats + "\n" + bar.View()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
