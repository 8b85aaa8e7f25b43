package repository

import (
	"context"
	"fmt"

	"ncgames/internal/http-api/models"

	"gorm.io/gorm"
)

// UserRepository is read-only; users are created by the seeder.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Raw("SELECT username, name, avatar_url FROM users;").Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByUsername returns gorm.ErrRecordNotFound when no row matches
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Raw("SELECT username, name, avatar_url FROM users WHERE username = ?;", username).
		Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if len(users) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &users[0], nil
}
