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

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the local leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		svc := progress.NewService(s.EventRepo(), s.SnapshotRepo())
		entries, err := svc.Leaderboard(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No profiles yet. Play a lesson first.")
			return nil
		}

		fmt.Printf("%4s  %-16s  %8s  %4s  %8s  %7s\n",
			"Rank", "Player", "Points", "Lv", "Lessons", "Streak")
		fmt.Println(strings.Repeat("─", 56))
		for _, e := range entries {
			fmt.Printf("%4d  %-16s  %8d  %4d  %8d  %7d\n",
				e.Rank, e.UserID, e.TotalPoints, points.Level(e.TotalPoints), e.Lessons, e.Streak)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().IntP("limit", "n", 10, "Number of rows to show")
}
