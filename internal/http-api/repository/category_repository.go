package repository

import (
	"context"
	"fmt"

	"ncgames/internal/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	ListSlugs(ctx context.Context) ([]string, error)
	Has(ctx context.Context, slug string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns every category
func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Raw("SELECT slug, description FROM categories;").Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListSlugs returns the current category allow-list
func (r *categoryRepository) ListSlugs(ctx context.Context) ([]string, error) {
	slugs := []string{}
	if err := r.db.WithContext(ctx).Raw("SELECT slug FROM categories;").Scan(&slugs).Error; err != nil {
		return nil, fmt.Errorf("list category slugs: %w", err)
	}
	return slugs, nil
}

// Has checks the live categories table for slug
func (r *categoryRepository) Has(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM categories WHERE slug = ?;", slug).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return count > 0, nil
}
