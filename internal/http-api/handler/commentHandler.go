package handler

import (
	"net/http"

	"ncgames/internal/http-api/dto"
	"ncgames/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers comment routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Review comments
	reviewComments := router.Group("/reviews/:review_id/comments")
	{
		reviewComments.GET("", h.ListByReview)
		reviewComments.POST("", h.Create)
	}

	comments := router.Group("/comments")
	{
		comments.GET("", h.List)
		comments.DELETE("/:comment_id", h.Delete)
	}
}

// List returns every comment
// GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentsResponse{Comments: comments})
}

// ListByReview returns a review's comments, newest first
// GET /api/reviews/:review_id/comments
func (h *CommentHandler) ListByReview(c *gin.Context) {
	reviewID, ok := parseID(c, "review_id", "Invalid review id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListCommentsByReview(c.Request.Context(), reviewID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentsResponse{Comments: comments})
}

// Create posts a comment on a review
// POST /api/reviews/:review_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	reviewID, ok := parseID(c, "review_id", "Invalid review id")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), reviewID, payload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.CommentResponse{Comment: *comment})
}

// Delete removes a comment
// DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseID(c, "comment_id", "Invalid comment id")
	if !ok {
		return
	}

	if err := h.commentService.RemoveComment(c.Request.Context(), commentID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
