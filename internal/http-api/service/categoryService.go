package service

import (
	"context"

	"ncgames/internal/apperr"
	"ncgames/internal/http-api/models"
	"ncgames/internal/http-api/repository"
)

// CategorySet answers category allow-list lookups. The repository checks the live table;
// cache.CategoryCache fronts it with Redis.
type CategorySet interface {
	Has(ctx context.Context, slug string) (bool, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return categories, nil
}
