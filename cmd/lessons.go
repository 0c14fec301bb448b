package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/promptascent/internal/content"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the built-in lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := content.NewCatalog()
		listings, err := catalog.Available(context.Background())
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}

		fmt.Printf("%-20s  %-32s  %5s\n", "ID", "Title", "Items")
		fmt.Println(strings.Repeat("─", 64))
		for _, l := range listings {
			fmt.Printf("%-20s  %-32s  %5d\n", l.ID, l.Title, l.ItemCount)
			if l.Description != "" {
				fmt.Printf("%-20s  %s\n", "", l.Description)
			}
		}
		return nil
	},
}
