package dto

import "ncgames/internal/http-api/models"

// Response envelopes. Every success body wraps its payload in a single named key.

type CategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type ReviewsResponse struct {
	Reviews []models.ReviewSummary `json:"reviews"`
}

type ReviewResponse struct {
	Review models.ReviewSummary `json:"review"`
}

// PatchedReviewResponse carries the updated row, which has no comment_count.
type PatchedReviewResponse struct {
	Review models.Review `json:"review"`
}

type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type CommentResponse struct {
	Comment models.Comment `json:"comment"`
}

type UsersResponse struct {
	Users []models.User `json:"users"`
}

type UserResponse struct {
	User models.User `json:"user"`
}

type ErrorResponse struct {
	Msg string `json:"msg"`
}
