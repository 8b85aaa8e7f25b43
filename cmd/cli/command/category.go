package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all review categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		categories, err := GetClient().GetCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to get categories: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(categories) == 0 {
			fmt.Fprintln(out, "No categories found.")
			return nil
		}

		heading.Fprintf(out, "Available categories (%d total):\n\n", len(categories))
		for _, c := range categories {
			fmt.Fprintf(out, "%s | %s\n", c.Slug, c.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
}
