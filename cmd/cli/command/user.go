package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User commands",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		users, err := GetClient().GetUsers(ctx)
		if err != nil {
			return fmt.Errorf("failed to get users: %w", err)
		}

		out := cmd.OutOrStdout()
		heading.Fprintf(out, "Users (%d total):\n\n", len(users))
		for _, u := range users {
			fmt.Fprintf(out, "%s (%s)\n", u.Username, u.Name)
		}
		return nil
	},
}

var getUserCmd = &cobra.Command{
	Use:   "get [username]",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		u, err := GetClient().GetUser(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Username: %s\n", u.Username)
		fmt.Fprintf(out, "Name: %s\n", u.Name)
		fmt.Fprintf(out, "Avatar: %s\n", u.AvatarURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(listUsersCmd, getUserCmd)
}
