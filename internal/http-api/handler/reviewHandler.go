package handler

import (
	"net/http"

	"ncgames/internal/http-api/dto"
	"ncgames/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes under /api/reviews
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.GET("/:review_id", h.Get)
		reviews.PATCH("/:review_id", h.PatchVotes)
	}
}

// List returns reviews with comment counts
// GET /api/reviews?category=&sort_by=&order=
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(
		c.Request.Context(),
		c.Query("category"),
		c.Query("sort_by"),
		c.Query("order"),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ReviewsResponse{Reviews: reviews})
}

// Get returns a single review
// GET /api/reviews/:review_id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "review_id", "Invalid review id")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReviewByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ReviewResponse{Review: *review})
}

// PatchVotes applies {"inc_votes": n}
// PATCH /api/reviews/:review_id
func (h *ReviewHandler) PatchVotes(c *gin.Context) {
	id, ok := parseID(c, "review_id", "Invalid review id")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	review, err := h.reviewService.PatchReviewVotes(c.Request.Context(), id, payload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.PatchedReviewResponse{Review: *review})
}
