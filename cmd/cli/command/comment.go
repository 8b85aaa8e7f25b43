package command

import (
	"fmt"
	"strconv"
	"strings"

	"ncgames/internal/http-api/models"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment management commands",
	Long:  `Manage review comments: list, create and delete comments`,
}

var listCommentsCmd = &cobra.Command{
	Use:   "list [review-id]",
	Short: "List comments, for one review when an id is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		httpClient := GetClient()

		var (
			comments []models.Comment
			err      error
		)
		if len(args) == 1 {
			reviewID, parseErr := strconv.ParseInt(args[0], 10, 64)
			if parseErr != nil {
				return fmt.Errorf("invalid review ID: %w", parseErr)
			}
			comments, err = httpClient.GetReviewComments(ctx, reviewID)
		} else {
			comments, err = httpClient.GetComments(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to get comments: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(comments) == 0 {
			fmt.Fprintln(out, "No comments found.")
			return nil
		}
		heading.Fprintf(out, "Comments (%d total):\n\n", len(comments))
		for _, c := range comments {
			fmt.Fprintf(out, "#%d on review %d by %s (%d votes)\n", c.CommentID, c.ReviewID, c.Author, c.Votes)
			muted.Fprintf(out, "   %s\n", c.Body)
		}
		return nil
	},
}

var createCommentCmd = &cobra.Command{
	Use:   "create [review-id] [username] [body]",
	Short: "Comment on a review",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviewID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid review ID: %w", err)
		}
		username := args[1]
		body := strings.Join(args[2:], " ")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		result, err := GetClient().AddComment(ctx, reviewID, username, body)
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		out := cmd.OutOrStdout()
		success.Fprintln(out, "✓ Comment created successfully!")
		fmt.Fprintf(out, "Comment ID: %d\n", result.CommentID)
		fmt.Fprintf(out, "Review ID: %d\n", result.ReviewID)
		fmt.Fprintf(out, "Posted by: %s\n", result.Author)
		fmt.Fprintf(out, "Body: %s\n", result.Body)
		fmt.Fprintf(out, "Created at: %s\n", result.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var deleteCommentCmd = &cobra.Command{
	Use:   "delete [comment-id]",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid comment ID: %w", err)
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := GetClient().DeleteComment(ctx, commentID); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		success.Fprintf(cmd.OutOrStdout(), "✓ Comment %d deleted successfully!\n", commentID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.AddCommand(listCommentsCmd, createCommentCmd, deleteCommentCmd)
}
