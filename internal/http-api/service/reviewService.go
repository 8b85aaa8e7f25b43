package service

import (
	"context"
	"errors"

	"ncgames/internal/apperr"
	"ncgames/internal/http-api/models"
	"ncgames/internal/http-api/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	ListReviews(ctx context.Context, category, sortBy, order string) ([]models.ReviewSummary, error)
	GetReviewByID(ctx context.Context, id int64) (*models.ReviewSummary, error)
	PatchReviewVotes(ctx context.Context, id int64, payload Payload) (*models.Review, error)
}

type reviewService struct {
	repo       repository.ReviewRepository
	guard      repository.ExistenceGuard
	categories CategorySet
}

func NewReviewService(repo repository.ReviewRepository, guard repository.ExistenceGuard, categories CategorySet) ReviewService {
	return &reviewService{
		repo:       repo,
		guard:      guard,
		categories: categories,
	}
}

// ListReviews validates sort tokens, then the category, then runs the listing.
// An invalid sort column or order never reaches the store.
func (s *reviewService) ListReviews(ctx context.Context, category, sortBy, order string) ([]models.ReviewSummary, error) {
	query, err := repository.NewReviewQuery(category, sortBy, order)
	if err != nil {
		return nil, err
	}

	if category != "" {
		ok, err := s.categories.Has(ctx, category)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		if !ok {
			return nil, apperr.ErrInvalidCategory
		}
	}

	reviews, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	return reviews, nil
}

// GetReviewByID returns the review with its comment count
func (s *reviewService) GetReviewByID(ctx context.Context, id int64) (*models.ReviewSummary, error) {
	if err := s.guard.EnsureExists(ctx, repository.EntityReview, id); err != nil {
		return nil, classify(err)
	}

	reviews, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if len(reviews) == 0 {
		// deleted between the guard and the fetch
		return nil, apperr.InvalidID("Invalid review id")
	}
	return &reviews[0], nil
}

// PatchReviewVotes applies inc_votes (negative allowed) and returns the updated review
func (s *reviewService) PatchReviewVotes(ctx context.Context, id int64, payload Payload) (*models.Review, error) {
	inc, err := parseVotePatch(payload)
	if err != nil {
		return nil, err
	}

	if err := s.guard.EnsureExists(ctx, repository.EntityReview, id); err != nil {
		return nil, classify(err)
	}

	review, err := s.repo.IncrementVotes(ctx, id, inc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidID("Invalid review id")
		}
		return nil, classify(err)
	}
	return review, nil
}
