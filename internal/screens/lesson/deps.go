package lesson

import (
	"github.com/abhisek/promptascent/internal/oracle"
	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/store"
)

// Deps bundles the services a lesson run needs. Oracle may be nil when no
// LLM provider is configured; free-response and prompting items are then
// unavailable and the picker filters such lessons out before reaching here.
type Deps struct {
	Events   store.EventRepo
	Progress *progress.Service
	Points   *points.Service
	Oracle   oracle.Oracle
	UserID   string
}
