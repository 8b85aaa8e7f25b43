package repository

import (
	"context"
	"fmt"

	"ncgames/internal/apperr"
	"ncgames/internal/http-api/models"

	"gorm.io/gorm"
)

const commentColumns = "comment_id, review_id, author, body, votes, created_at"

type CommentRepository interface {
	List(ctx context.Context) ([]models.Comment, error)
	ListByReview(ctx context.Context, reviewID int64) ([]models.Comment, error)
	Create(ctx context.Context, reviewID int64, author, body string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// List returns every comment ordered by id
func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Raw("SELECT " + commentColumns + " FROM comments ORDER BY comment_id ASC;").
		Scan(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// ListByReview returns a review's comments, most recent first
func (r *commentRepository) ListByReview(ctx context.Context, reviewID int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Raw("SELECT "+commentColumns+" FROM comments WHERE review_id = ? ORDER BY created_at DESC;", reviewID).
		Scan(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list review comments: %w", err)
	}
	return comments, nil
}

// Create inserts a comment; the store assigns comment_id, votes (0) and created_at.
func (r *commentRepository) Create(ctx context.Context, reviewID int64, author, body string) (*models.Comment, error) {
	var created []models.Comment
	err := r.db.WithContext(ctx).Raw(
		"INSERT INTO comments (review_id, author, body) VALUES (?, ?, ?) RETURNING "+commentColumns+";",
		reviewID, author, body,
	).Scan(&created).Error
	if err != nil {
		// the guard ran first, so this only happens if a row vanished in between
		if constraint, ok := foreignKeyViolation(err); ok {
			if constraint == "comments_review_id_fkey" {
				return nil, apperr.InvalidID("Invalid review id").WithCause(err)
			}
			return nil, apperr.BadRequest("Invalid username").WithCause(err)
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("insert comment: no row returned")
	}
	return &created[0], nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	result := r.db.WithContext(ctx).Exec("DELETE FROM comments WHERE comment_id = ?;", commentID)
	if result.Error != nil {
		return fmt.Errorf("delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.InvalidID("Invalid comment id")
	}
	return nil
}
