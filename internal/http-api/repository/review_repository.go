package repository

import (
	"context"
	"fmt"

	"ncgames/internal/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	List(ctx context.Context, q ReviewQuery) ([]models.ReviewSummary, error)
	FindByID(ctx context.Context, id int64) ([]models.ReviewSummary, error)
	IncrementVotes(ctx context.Context, id int64, inc int) (*models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// List runs the built review listing. Reviews without comments come back with comment_count 0.
func (r *reviewRepository) List(ctx context.Context, q ReviewQuery) ([]models.ReviewSummary, error) {
	query, args, err := q.Build()
	if err != nil {
		return nil, err
	}

	reviews := []models.ReviewSummary{}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// FindByID returns the review shaped like List, as a collection of zero or one rows.
func (r *reviewRepository) FindByID(ctx context.Context, id int64) ([]models.ReviewSummary, error) {
	query, args := buildReviewByID(id)

	reviews := []models.ReviewSummary{}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return reviews, nil
}

// IncrementVotes adds inc (which may be negative) to the stored votes and returns the updated row.
func (r *reviewRepository) IncrementVotes(ctx context.Context, id int64, inc int) (*models.Review, error) {
	var updated []models.Review
	err := r.db.WithContext(ctx).Raw(
		`UPDATE reviews SET votes = votes + ? WHERE review_id = ?
RETURNING review_id, title, category, designer, owner, review_body, review_img_url, created_at, votes;`,
		inc, id,
	).Scan(&updated).Error
	if err != nil {
		return nil, fmt.Errorf("update review votes: %w", err)
	}
	if len(updated) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &updated[0], nil
}
