package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/promptascent/internal/app"
	"github.com/abhisek/promptascent/internal/content"
	"github.com/abhisek/promptascent/internal/llm"
	"github.com/abhisek/promptascent/internal/oracle"
	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	lessonscreen "github.com/abhisek/promptascent/internal/screens/lesson"
	"github.com/abhisek/promptascent/internal/store"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start a learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp wires the store, the LLM provider, and the services, then hands
// off to the TUI. Shared by the bare root command and `learn`.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	opts := app.Options{
		Catalog: content.NewCatalog(),
		Deps: lessonscreen.Deps{
			Events:   events,
			Progress: progress.NewService(events, st.SnapshotRepo()),
			Points:   points.NewService(events),
			UserID:   resolveUserID(cmd),
		},
	}

	// LLM provider is optional. Without one the catalog still serves
	// snippet and multiple-choice lessons; AI-graded items and lesson
	// generation are disabled.
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Deps.Oracle = oracle.NewLLMOracle(provider, oracle.DefaultConfig())
		opts.Generator = content.NewGenerator(provider, content.DefaultConfig())
	}

	return app.Run(opts)
}

func init() {
	learnCmd.SetContext(context.Background())
}
