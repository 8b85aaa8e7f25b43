package command

import (
	"fmt"
	"net/url"

	"ncgames/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Load, validate and print the server configuration",
	Long: `config reads the same environment (and .env file) as the API server,
validates it and prints the effective values. Credentials are redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		heading.Fprintln(out, "Configuration")
		fmt.Fprintf(out, "  GO_ENV:            %s\n", cfg.GoEnv)
		fmt.Fprintf(out, "  HTTP_PORT:         %d\n", cfg.HTTPPort)
		fmt.Fprintf(out, "  DATABASE_URL:      %s\n", redactURL(cfg.DatabaseURL))
		fmt.Fprintf(out, "  DB_MAX_OPEN_CONNS: %d\n", cfg.DBMaxOpenConns)
		fmt.Fprintf(out, "  DB_MAX_IDLE_CONNS: %d\n", cfg.DBMaxIdleConns)
		fmt.Fprintf(out, "  REQUEST_TIMEOUT:   %s\n", cfg.RequestTimeout)
		if cfg.CacheEnabled() {
			fmt.Fprintf(out, "  REDIS_URL:         %s\n", redactURL(cfg.RedisURL))
			fmt.Fprintf(out, "  CACHE_TTL:         %s\n", cfg.CacheExpiry())
		} else {
			muted.Fprintln(out, "  REDIS_URL:         (unset, category cache disabled)")
		}
		fmt.Fprintf(out, "  RATE_LIMIT:        %g rps, burst %d\n", cfg.RateLimitRPS, cfg.RateLimitBurst)
		fmt.Fprintf(out, "  LOG:               %s/%s\n", cfg.LogLevel, cfg.LogFormat)
		success.Fprintln(out, "✓ Configuration is valid")
		return nil
	},
}

// redactURL hides the password in a connection URL. Unparseable input is hidden entirely.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}

func init() {
	rootCmd.AddCommand(configCmd)
}
