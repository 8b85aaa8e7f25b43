package service

import (
	"context"

	"ncgames/internal/http-api/models"
	"ncgames/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// --- MOCK REPOSITORIES ---

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context, q repository.ReviewQuery) ([]models.ReviewSummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewSummary), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id int64) ([]models.ReviewSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewSummary), args.Error(1)
}

func (m *MockReviewRepository) IncrementVotes(ctx context.Context, id int64, inc int) (*models.Review, error) {
	args := m.Called(ctx, id, inc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) List(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByReview(ctx context.Context, reviewID int64) ([]models.Comment, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, reviewID int64, author, body string) (*models.Comment, error) {
	args := m.Called(ctx, reviewID, author, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	return m.Called(ctx, commentID).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListSlugs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCategoryRepository) Has(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockGuard struct {
	mock.Mock
}

func (m *MockGuard) Exists(ctx context.Context, entity repository.Entity, id any) (bool, error) {
	args := m.Called(ctx, entity, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuard) EnsureExists(ctx context.Context, entity repository.Entity, id any) error {
	return m.Called(ctx, entity, id).Error(0)
}
