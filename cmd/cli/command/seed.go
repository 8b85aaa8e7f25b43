package command

import (
	"fmt"
	"io"

	"ncgames/database"
	"ncgames/database/seed"
	"ncgames/internal/cache"
	"ncgames/internal/config"
	"ncgames/internal/http-api/repository"
	"ncgames/internal/logger"

	"github.com/spf13/cobra"
)

var seedYes bool

// seedCmd talks to the database directly, not the API.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop and recreate the tables, then load the fixture data",
	Long: `seed connects to DATABASE_URL (from the environment or .env), drops the
categories, users, reviews and comments tables, recreates them and inserts the
fixture data set. When REDIS_URL is set the cached category list is cleared.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
		if cfg.IsProduction() && !seedYes {
			return fmt.Errorf("refusing to seed a production database without --yes")
		}

		log := logger.New(io.Discard, cfg.LogLevel, cfg.LogFormat)

		ctx := cmd.Context()
		db, err := database.ConnectDB(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		var invalidator seed.Invalidator
		if cfg.CacheEnabled() {
			rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisPassword)
			if err != nil {
				muted.Fprintf(cmd.ErrOrStderr(), "category cache not cleared: %v\n", err)
			} else {
				defer rdb.Close()
				invalidator = cache.NewCategoryCache(rdb, repository.NewCategoryRepository(db.Gorm), cfg.CacheExpiry(), log)
			}
		}

		data := seed.TestData()
		if err := seed.NewSeeder(db.Gorm, invalidator, log).Run(ctx, data); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}

		success.Fprintf(cmd.OutOrStdout(), "✓ Seeded %d categories, %d users, %d reviews, %d comments\n",
			len(data.Categories), len(data.Users), len(data.Reviews), len(data.Comments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedYes, "yes", false, "allow seeding when GO_ENV=production")
}
