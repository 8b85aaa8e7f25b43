package repository

import (
	"context"
	"fmt"

	"ncgames/internal/apperr"

	"gorm.io/gorm"
)

// Entity names a table that can be existence-checked.
type Entity string

const (
	EntityReview  Entity = "review"
	EntityComment Entity = "comment"
	EntityUser    Entity = "user"
)

type entityLookup struct {
	query   string
	invalid *apperr.Error
}

var entityLookups = map[Entity]entityLookup{
	EntityReview: {
		query:   "SELECT COUNT(*) FROM reviews WHERE review_id = ?;",
		invalid: apperr.InvalidID("Invalid review id"),
	},
	EntityComment: {
		query:   "SELECT COUNT(*) FROM comments WHERE comment_id = ?;",
		invalid: apperr.InvalidID("Invalid comment id"),
	},
	EntityUser: {
		query:   "SELECT COUNT(*) FROM users WHERE username = ?;",
		invalid: apperr.InvalidID("Invalid username"),
	},
}

// ExistenceGuard checks that a referenced row exists before a dependent read or write runs.
type ExistenceGuard interface {
	Exists(ctx context.Context, entity Entity, id any) (bool, error)
	EnsureExists(ctx context.Context, entity Entity, id any) error
}

type existenceGuard struct {
	db *gorm.DB
}

func NewExistenceGuard(db *gorm.DB) ExistenceGuard {
	return &existenceGuard{db: db}
}

// Exists reports whether a row with the given key exists.
func (g *existenceGuard) Exists(ctx context.Context, entity Entity, id any) (bool, error) {
	lookup, ok := entityLookups[entity]
	if !ok {
		return false, fmt.Errorf("unknown entity %q", entity)
	}

	var count int64
	if err := g.db.WithContext(ctx).Raw(lookup.query, id).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("check %s exists: %w", entity, err)
	}
	return count > 0, nil
}

// EnsureExists returns an InvalidID error when the row is missing.
func (g *existenceGuard) EnsureExists(ctx context.Context, entity Entity, id any) error {
	found, err := g.Exists(ctx, entity, id)
	if err != nil {
		return err
	}
	if !found {
		return entityLookups[entity].invalid
	}
	return nil
}
