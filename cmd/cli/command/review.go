package command

import (
	"fmt"
	"strconv"

	"ncgames/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review commands",
	Long:  `Browse reviews: list with filters and sorting, show one review, and vote`,
}

var (
	reviewCategory string
	reviewSortBy   string
	reviewOrder    string
)

var listReviewsCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews with their comment counts",
	Example: `  ncgames review list --category "social deduction" --sort-by votes --order asc
  ncgames review list --sort-by comment_count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		reviews, err := GetClient().GetReviews(ctx, client.ReviewFilter{
			Category: reviewCategory,
			SortBy:   reviewSortBy,
			Order:    reviewOrder,
		})
		if err != nil {
			return fmt.Errorf("failed to get reviews: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reviews) == 0 {
			fmt.Fprintln(out, "No reviews found.")
			return nil
		}

		heading.Fprintf(out, "Reviews (%d total):\n\n", len(reviews))
		for _, r := range reviews {
			fmt.Fprintf(out, "#%-3d %s\n", r.ReviewID, r.Title)
			muted.Fprintf(out, "     %s | by %s | designer %s | votes %d | comments %d | %s\n",
				r.Category, r.Owner, r.Designer, r.Votes, r.CommentCount, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var getReviewCmd = &cobra.Command{
	Use:   "get [review-id]",
	Short: "Show a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviewID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid review ID: %w", err)
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		r, err := GetClient().GetReview(ctx, reviewID)
		if err != nil {
			return fmt.Errorf("failed to get review: %w", err)
		}

		out := cmd.OutOrStdout()
		heading.Fprintf(out, "%s\n", r.Title)
		fmt.Fprintf(out, "Review ID: %d\n", r.ReviewID)
		fmt.Fprintf(out, "Category: %s\n", r.Category)
		fmt.Fprintf(out, "Designer: %s\n", r.Designer)
		fmt.Fprintf(out, "Owner: %s\n", r.Owner)
		fmt.Fprintf(out, "Votes: %d\n", r.Votes)
		fmt.Fprintf(out, "Comments: %d\n", r.CommentCount)
		fmt.Fprintf(out, "Created at: %s\n\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintln(out, r.ReviewBody)
		return nil
	},
}

var voteReviewCmd = &cobra.Command{
	Use:   "vote [review-id] [inc]",
	Short: "Add (or with a negative number, remove) votes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviewID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid review ID: %w", err)
		}
		inc, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid vote increment: %w", err)
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		review, err := GetClient().VoteReview(ctx, reviewID, inc)
		if err != nil {
			return fmt.Errorf("failed to vote: %w", err)
		}

		success.Fprintf(cmd.OutOrStdout(), "✓ Review %d now has %d votes\n", review.ReviewID, review.Votes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(listReviewsCmd, getReviewCmd, voteReviewCmd)

	listReviewsCmd.Flags().StringVar(&reviewCategory, "category", "", "filter by category slug")
	listReviewsCmd.Flags().StringVar(&reviewSortBy, "sort-by", "", "sort column (default created_at)")
	listReviewsCmd.Flags().StringVar(&reviewOrder, "order", "", "asc or desc (default desc)")
}
