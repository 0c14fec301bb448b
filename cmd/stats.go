package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUserID(cmd)
		svc := progress.NewService(s.EventRepo(), s.SnapshotRepo())
		prog, err := svc.UserProgress(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		attempts, err := s.EventRepo().Attempts(ctx, userID, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		var correct int
		for _, a := range attempts {
			if a.Verdict {
				correct++
			}
		}

		fmt.Printf("Profile: %s\n", userID)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Points:            %d\n", prog.TotalPoints)
		fmt.Printf("Level:             %d\n", points.Level(prog.TotalPoints))
		fmt.Printf("Streak:            %d day(s)\n", prog.Streak)
		fmt.Printf("Lessons completed: %d\n", len(prog.CompletedLessons))
		fmt.Printf("Badges earned:     %d\n", len(prog.Badges))
		if len(attempts) > 0 {
			fmt.Printf("Attempts:          %d (%d correct, %.0f%%)\n",
				len(attempts), correct, float64(correct)/float64(len(attempts))*100)
		}
		if len(prog.CompletedLessons) > 0 {
			fmt.Println()
			fmt.Println("Completed lessons:")
			for _, id := range prog.CompletedLessons {
				fmt.Printf("  %s\n", id)
			}
		}
		return nil
	},
}
