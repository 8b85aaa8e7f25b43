package service

import (
	"context"

	"ncgames/internal/apperr"
	"ncgames/internal/http-api/models"
	"ncgames/internal/http-api/repository"
)

type CommentService interface {
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListCommentsByReview(ctx context.Context, reviewID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, reviewID int64, payload Payload) (*models.Comment, error)
	RemoveComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	repo  repository.CommentRepository
	guard repository.ExistenceGuard
}

func NewCommentService(repo repository.CommentRepository, guard repository.ExistenceGuard) CommentService {
	return &commentService{
		repo:  repo,
		guard: guard,
	}
}

func (s *commentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	comments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return comments, nil
}

// ListCommentsByReview returns the review's comments, newest first. A review with no
// comments yields an empty slice; a missing review is InvalidID.
func (s *commentService) ListCommentsByReview(ctx context.Context, reviewID int64) ([]models.Comment, error) {
	if err := s.guard.EnsureExists(ctx, repository.EntityReview, reviewID); err != nil {
		return nil, classify(err)
	}

	comments, err := s.repo.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, classify(err)
	}
	return comments, nil
}

// AddComment validates the body, checks the review and the author exist, then inserts
func (s *commentService) AddComment(ctx context.Context, reviewID int64, payload Payload) (*models.Comment, error) {
	username, body, err := parseNewComment(payload)
	if err != nil {
		return nil, err
	}

	if err := s.guard.EnsureExists(ctx, repository.EntityReview, reviewID); err != nil {
		return nil, classify(err)
	}

	known, err := s.guard.Exists(ctx, repository.EntityUser, username)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if !known {
		return nil, apperr.BadRequest("Invalid username")
	}

	comment, err := s.repo.Create(ctx, reviewID, username, body)
	if err != nil {
		return nil, classify(err)
	}
	return comment, nil
}

// RemoveComment deletes the comment after confirming it exists
func (s *commentService) RemoveComment(ctx context.Context, commentID int64) error {
	if err := s.guard.EnsureExists(ctx, repository.EntityComment, commentID); err != nil {
		return classify(err)
	}
	return classify(s.repo.Delete(ctx, commentID))
}
