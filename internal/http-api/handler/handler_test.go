package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ncgames/internal/apperr"
	"ncgames/internal/http-api/dto"
	"ncgames/internal/http-api/handler"
	"ncgames/internal/http-api/models"
	"ncgames/internal/http-api/router"
	"ncgames/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK SERVICES ---

type MockReviewService struct{ mock.Mock }

func (m *MockReviewService) ListReviews(ctx context.Context, category, sortBy, order string) ([]models.ReviewSummary, error) {
	args := m.Called(ctx, category, sortBy, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewSummary), args.Error(1)
}

func (m *MockReviewService) GetReviewByID(ctx context.Context, id int64) (*models.ReviewSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewSummary), args.Error(1)
}

func (m *MockReviewService) PatchReviewVotes(ctx context.Context, id int64, payload service.Payload) (*models.Review, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

type MockCommentService struct{ mock.Mock }

func (m *MockCommentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) ListCommentsByReview(ctx context.Context, reviewID int64) ([]models.Comment, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) AddComment(ctx context.Context, reviewID int64, payload service.Payload) (*models.Comment, error) {
	args := m.Called(ctx, reviewID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) RemoveComment(ctx context.Context, commentID int64) error {
	return m.Called(ctx, commentID).Error(0)
}

type MockCategoryService struct{ mock.Mock }

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

// --- SETUP ---

type mocks struct {
	reviews    *MockReviewService
	comments   *MockCommentService
	categories *MockCategoryService
	users      *MockUserService
}

func setupRouter(pingErr error) (*gin.Engine, mocks) {
	gin.SetMode(gin.TestMode)
	m := mocks{
		reviews:    new(MockReviewService),
		comments:   new(MockCommentService),
		categories: new(MockCategoryService),
		users:      new(MockUserService),
	}
	r := router.New(router.Handlers{
		API:        handler.NewAPIHandler(fakePinger{err: pingErr}),
		Categories: handler.NewCategoryHandler(m.categories),
		Reviews:    handler.NewReviewHandler(m.reviews),
		Comments:   handler.NewCommentHandler(m.comments),
		Users:      handler.NewUserHandler(m.users),
	}, router.Options{Logger: nil, RequestTimeout: time.Second})
	return r, m
}

func do(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Msg
}

// --- TESTS ---

func TestGetCategories(t *testing.T) {
	r, m := setupRouter(nil)
	m.categories.On("ListCategories", mock.Anything).Return([]models.Category{
		{Slug: "dexterity", Description: "Games involving physical skill"},
	}, nil)

	w := do(r, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dexterity", resp.Categories[0].Slug)
}

func TestUnknownPath(t *testing.T) {
	r, _ := setupRouter(nil)

	w := do(r, http.MethodGet, "/api/categorys", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Path not found", msgOf(t, w))
}

func TestGetReviewsPassesQuery(t *testing.T) {
	r, m := setupRouter(nil)
	m.reviews.On("ListReviews", mock.Anything, "social deduction", "votes", "asc").
		Return([]models.ReviewSummary{{Review: models.Review{ReviewID: 3}, CommentCount: 3}}, nil)

	w := do(r, http.MethodGet, "/api/reviews?category=social+deduction&sort_by=votes&order=asc", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp["reviews"], 1)
	assert.EqualValues(t, 3, resp["reviews"][0]["comment_count"])
	m.reviews.AssertExpectations(t)
}

func TestGetReviewsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid sort", apperr.ErrInvalidSortColumn, http.StatusBadRequest, "Invalid sort query"},
		{"invalid order", apperr.ErrInvalidSortOrder, http.StatusBadRequest, "Invalid order query"},
		{"invalid category", apperr.ErrInvalidCategory, http.StatusBadRequest, "Invalid category"},
		{"store failure", apperr.Unexpected(errors.New("boom")), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := setupRouter(nil)
			m.reviews.On("ListReviews", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := do(r, http.MethodGet, "/api/reviews?sort_by=x", nil)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.msg, msgOf(t, w))
		})
	}
}

func TestGetReviewByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, m := setupRouter(nil)
		m.reviews.On("GetReviewByID", mock.Anything, int64(2)).Return(&models.ReviewSummary{
			Review:       models.Review{ReviewID: 2, Title: "Jenga"},
			CommentCount: 3,
		}, nil)

		w := do(r, http.MethodGet, "/api/reviews/2", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.ReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Jenga", resp.Review.Title)
		assert.Equal(t, 3, resp.Review.CommentCount)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		r, m := setupRouter(nil)

		w := do(r, http.MethodGet, "/api/reviews/banana", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid review id", msgOf(t, w))
		m.reviews.AssertNotCalled(t, "GetReviewByID", mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		r, m := setupRouter(nil)
		m.reviews.On("GetReviewByID", mock.Anything, int64(9999)).Return(nil, apperr.InvalidID("Invalid review id"))

		w := do(r, http.MethodGet, "/api/reviews/9999", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid review id", msgOf(t, w))
	})
}

func TestPatchReviewVotes(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		r, m := setupRouter(nil)
		m.reviews.On("PatchReviewVotes", mock.Anything, int64(1), service.Payload{"inc_votes": float64(10)}).
			Return(&models.Review{ReviewID: 1, Votes: 11}, nil)

		w := do(r, http.MethodPatch, "/api/reviews/1", bytes.NewBufferString(`{"inc_votes": 10}`))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.PatchedReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 11, resp.Review.Votes)
	})

	t.Run("malformed json", func(t *testing.T) {
		r, m := setupRouter(nil)

		w := do(r, http.MethodPatch, "/api/reviews/1", bytes.NewBufferString(`{"inc_votes":`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Bad request", msgOf(t, w))
		m.reviews.AssertNotCalled(t, "PatchReviewVotes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid input from service", func(t *testing.T) {
		r, m := setupRouter(nil)
		m.reviews.On("PatchReviewVotes", mock.Anything, int64(1), mock.Anything).Return(nil, apperr.ErrInvalidInput)

		w := do(r, http.MethodPatch, "/api/reviews/1", bytes.NewBufferString(`{"inc_votes": "cat"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid input", msgOf(t, w))
	})
}

func TestReviewComments(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, m := setupRouter(nil)
		m.comments.On("ListCommentsByReview", mock.Anything, int64(1)).Return([]models.Comment{}, nil)

		w := do(r, http.MethodGet, "/api/reviews/1/comments", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"comments": []}`, w.Body.String())
	})

	t.Run("post", func(t *testing.T) {
		r, m := setupRouter(nil)
		payload := service.Payload{"username": "bainesface", "body": "This boardgame stole my shoes"}
		m.comments.On("AddComment", mock.Anything, int64(2), payload).Return(&models.Comment{
			CommentID: 7, ReviewID: 2, Author: "bainesface", Body: "This boardgame stole my shoes",
		}, nil)

		w := do(r, http.MethodPost, "/api/reviews/2/comments",
			bytes.NewBufferString(`{"username":"bainesface","body":"This boardgame stole my shoes"}`))
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.Comment.CommentID)
		assert.Equal(t, "bainesface", resp.Comment.Author)
	})

	t.Run("post to missing review", func(t *testing.T) {
		r, m := setupRouter(nil)
		m.comments.On("AddComment", mock.Anything, int64(99), mock.Anything).Return(nil, apperr.InvalidID("Invalid review id"))

		w := do(r, http.MethodPost, "/api/reviews/99/comments", bytes.NewBufferString(`{"username":"bainesface","body":"x"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid review id", msgOf(t, w))
	})
}

func TestDeleteComment(t *testing.T) {
	r, m := setupRouter(nil)
	m.comments.On("RemoveComment", mock.Anything, int64(1)).Return(nil)
	m.comments.On("RemoveComment", mock.Anything, int64(99)).Return(apperr.InvalidID("Invalid comment id"))

	w := do(r, http.MethodDelete, "/api/comments/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodDelete, "/api/comments/99", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid comment id", msgOf(t, w))

	w = do(r, http.MethodDelete, "/api/comments/one", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid comment id", msgOf(t, w))
}

func TestUsers(t *testing.T) {
	r, m := setupRouter(nil)
	m.users.On("ListUsers", mock.Anything).Return([]models.User{{Username: "dav3rid", Name: "dave"}}, nil)
	m.users.On("GetUserByUsername", mock.Anything, "dav3rid").Return(&models.User{Username: "dav3rid", Name: "dave"}, nil)
	m.users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, apperr.InvalidID("Invalid username"))

	w := do(r, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list dto.UsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Users, 1)

	w = do(r, http.MethodGet, "/api/users/dav3rid", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var one dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Equal(t, "dave", one.User.Name)

	w = do(r, http.MethodGet, "/api/users/ghost", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid username", msgOf(t, w))
}

func TestEndpointsAndHealth(t *testing.T) {
	r, _ := setupRouter(nil)

	w := do(r, http.MethodGet, "/api", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var endpoints map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &endpoints))
	assert.Contains(t, endpoints, "GET /api/reviews")

	w = do(r, http.MethodGet, "/check-conn", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	down, _ := setupRouter(errors.New("no route to host"))
	w = do(down, http.MethodGet, "/check-conn", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
