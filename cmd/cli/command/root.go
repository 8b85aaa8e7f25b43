package command

// root.go defines the root command for the ncgames CLI and its global flags.

import (
	"context"
	"fmt"
	"os"
	"time"

	"ncgames/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	apiURL  string        // Global flag for API server URL
	timeout time.Duration // per-command request timeout
)

var (
	success = color.New(color.FgGreen)
	heading = color.New(color.FgCyan, color.Bold)
	muted   = color.New(color.FgHiBlack)
	failure = color.New(color.FgRed)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ncgames",
	Short: "ncgames - board game review CLI",
	Long: `ncgames talks to the board game review API. Use it to:
- Browse categories, reviews and users
- Filter and sort reviews
- Vote on reviews
- Post and delete comments
- Reset a database to the fixture data set (seed)

Use "ncgames [command] --help" to see all available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		failure.Fprintln(os.Stderr, "Error:", err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("NCGAMES_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:9090"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(pingCmd)
}

// GetClient returns an HTTP client for the configured API.
func GetClient() *client.HTTPClient {
	return client.NewHTTPClient(apiURL)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the API and its database are reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := GetClient().CheckConn(ctx); err != nil {
			return fmt.Errorf("API not reachable at %s: %w", apiURL, err)
		}
		success.Fprintf(cmd.OutOrStdout(), "✓ API at %s is alive\n", apiURL)
		return nil
	},
}
