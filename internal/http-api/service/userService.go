package service

import (
	"context"
	"errors"

	"ncgames/internal/apperr"
	"ncgames/internal/http-api/models"
	"ncgames/internal/http-api/repository"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return users, nil
}

// GetUserByUsername is a single read, so the lookup itself is the existence check.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidID("Invalid username")
		}
		return nil, apperr.Unexpected(err)
	}
	return user, nil
}
