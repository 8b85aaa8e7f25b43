package client

// http_client.go = HTTP client for the review API used by the ncgames CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ncgames/internal/http-api/dto"
	"ncgames/internal/http-api/models"
)

// APIError is a non-2xx response. Msg is the server's {"msg": ...} text when present.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Msg, e.StatusCode)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// ReviewFilter holds the optional GET /api/reviews query parameters.
type ReviewFilter struct {
	Category string
	SortBy   string
	Order    string
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do sends a request and decodes a JSON response into out (skipped when out is nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close() // Ensure the response body is closed

	if response.StatusCode != wantStatus {
		apiErr := &APIError{StatusCode: response.StatusCode}
		var errBody dto.ErrorResponse
		if err := json.NewDecoder(response.Body).Decode(&errBody); err == nil {
			apiErr.Msg = errBody.Msg
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}

func (c *HTTPClient) GetCategories(ctx context.Context) ([]models.Category, error) {
	var result dto.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Categories, nil
}

func (c *HTTPClient) GetReviews(ctx context.Context, filter ReviewFilter) ([]models.ReviewSummary, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.SortBy != "" {
		query.Set("sort_by", filter.SortBy)
	}
	if filter.Order != "" {
		query.Set("order", filter.Order)
	}
	path := "/api/reviews"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var result dto.ReviewsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Reviews, nil
}

func (c *HTTPClient) GetReview(ctx context.Context, reviewID int64) (*models.ReviewSummary, error) {
	var result dto.ReviewResponse
	if err := c.do(ctx, http.MethodGet, reviewPath(reviewID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result.Review, nil
}

func (c *HTTPClient) VoteReview(ctx context.Context, reviewID int64, inc int) (*models.Review, error) {
	var result dto.PatchedReviewResponse
	body := dto.VotePatchDTO{IncVotes: inc}
	if err := c.do(ctx, http.MethodPatch, reviewPath(reviewID), body, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result.Review, nil
}

func (c *HTTPClient) GetReviewComments(ctx context.Context, reviewID int64) ([]models.Comment, error) {
	var result dto.CommentsResponse
	if err := c.do(ctx, http.MethodGet, reviewPath(reviewID)+"/comments", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Comments, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, reviewID int64, username, body string) (*models.Comment, error) {
	var result dto.CommentResponse
	req := dto.CreateCommentDTO{Username: username, Body: body}
	if err := c.do(ctx, http.MethodPost, reviewPath(reviewID)+"/comments", req, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result.Comment, nil
}

func (c *HTTPClient) GetComments(ctx context.Context) ([]models.Comment, error) {
	var result dto.CommentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/comments", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Comments, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, commentID int64) error {
	return c.do(ctx, http.MethodDelete, "/api/comments/"+strconv.FormatInt(commentID, 10), nil, http.StatusNoContent, nil)
}

func (c *HTTPClient) GetUsers(ctx context.Context) ([]models.User, error) {
	var result dto.UsersResponse
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, username string) (*models.User, error) {
	var result dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(username), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// CheckConn calls the liveness probe.
func (c *HTTPClient) CheckConn(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/check-conn", nil, http.StatusOK, nil)
}

func reviewPath(reviewID int64) string {
	return "/api/reviews/" + strconv.FormatInt(reviewID, 10)
}
