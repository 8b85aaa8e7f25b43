// Package seed recreates the review tables and loads a fixture data set.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"ncgames/internal/http-api/models"

	"gorm.io/gorm"
)

// Data is a complete fixture set.
type Data struct {
	Categories []models.Category
	Users      []models.User
	Reviews    []models.Review
	Comments   []models.Comment
}

// Invalidator is notified after the categories table has been rewritten.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Seeder struct {
	db     *gorm.DB
	cache  Invalidator
	logger *slog.Logger
}

// NewSeeder builds a seeder. cache may be nil.
func NewSeeder(db *gorm.DB, cache Invalidator, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, cache: cache, logger: logger}
}

// Run drops and recreates every table and inserts data in one transaction.
func (s *Seeder) Run(ctx context.Context, data Data) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range dropStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("drop tables: %w", err)
			}
		}
		for _, stmt := range createStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("create tables: %w", err)
			}
		}

		for _, c := range data.Categories {
			if err := tx.Exec(insertCategory, c.Slug, c.Description).Error; err != nil {
				return fmt.Errorf("insert category %q: %w", c.Slug, err)
			}
		}
		for _, u := range data.Users {
			if err := tx.Exec(insertUser, u.Username, u.Name, u.AvatarURL).Error; err != nil {
				return fmt.Errorf("insert user %q: %w", u.Username, err)
			}
		}
		for _, r := range data.Reviews {
			img := r.ReviewImgURL
			if img == "" {
				img = defaultReviewImgURL
			}
			err := tx.Exec(insertReview,
				r.Title, r.Category, r.Designer, r.Owner, r.ReviewBody, img, r.CreatedAt, r.Votes,
			).Error
			if err != nil {
				return fmt.Errorf("insert review %q: %w", r.Title, err)
			}
		}
		for i, c := range data.Comments {
			if err := tx.Exec(insertComment, c.ReviewID, c.Author, c.Body, c.Votes, c.CreatedAt).Error; err != nil {
				return fmt.Errorf("insert comment %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("failed to invalidate category cache", "error", err)
		}
	}

	s.logger.Info("database seeded",
		slog.Int("categories", len(data.Categories)),
		slog.Int("users", len(data.Users)),
		slog.Int("reviews", len(data.Reviews)),
		slog.Int("comments", len(data.Comments)))
	return nil
}
