package repository

import (
	"strings"

	"ncgames/internal/apperr"
)

// SortColumn is a review column that may appear in ORDER BY.
// Values only come from sortColumns, never from client text.
type SortColumn string

// SortOrder is a SQL sort direction keyword.
type SortOrder string

const (
	Ascending  SortOrder = "ASC"
	Descending SortOrder = "DESC"

	DefaultSortColumn SortColumn = "created_at"
	DefaultSortOrder             = Descending
)

// sortColumns maps each allow-listed column to the expression placed in ORDER BY.
var sortColumns = map[SortColumn]string{
	"review_id":      "reviews.review_id",
	"title":          "reviews.title",
	"category":       "reviews.category",
	"designer":       "reviews.designer",
	"owner":          "reviews.owner",
	"review_body":    "reviews.review_body",
	"review_img_url": "reviews.review_img_url",
	"created_at":     "reviews.created_at",
	"votes":          "reviews.votes",
	"comment_count":  "comment_count",
}

var sortOrders = map[string]SortOrder{
	"asc":        Ascending,
	"ascending":  Ascending,
	"ASC":        Ascending,
	"desc":       Descending,
	"descending": Descending,
	"DESC":       Descending,
}

// ParseSortColumn returns the allow-listed column for raw, or DefaultSortColumn when raw is empty.
func ParseSortColumn(raw string) (SortColumn, error) {
	if raw == "" {
		return DefaultSortColumn, nil
	}
	col := SortColumn(raw)
	if _, ok := sortColumns[col]; !ok {
		return "", apperr.ErrInvalidSortColumn
	}
	return col, nil
}

// ParseSortOrder returns the direction for raw, or DefaultSortOrder when raw is empty.
func ParseSortOrder(raw string) (SortOrder, error) {
	if raw == "" {
		return DefaultSortOrder, nil
	}
	order, ok := sortOrders[raw]
	if !ok {
		return "", apperr.ErrInvalidSortOrder
	}
	return order, nil
}

const reviewSummarySelect = `SELECT reviews.review_id, reviews.title, reviews.category, reviews.designer,
reviews.owner, reviews.review_body, reviews.review_img_url, reviews.created_at, reviews.votes,
COUNT(comments.comment_id)::INT AS comment_count
FROM reviews
LEFT JOIN comments ON comments.review_id = reviews.review_id`

// ReviewQuery describes a review listing. Build it with NewReviewQuery so SortBy and Order
// are always allow-listed.
type ReviewQuery struct {
	Category string
	SortBy   SortColumn
	Order    SortOrder
}

// NewReviewQuery validates the sort tokens and returns a query with defaults applied.
// It never touches the store.
func NewReviewQuery(category, sortBy, order string) (ReviewQuery, error) {
	col, err := ParseSortColumn(sortBy)
	if err != nil {
		return ReviewQuery{}, err
	}
	dir, err := ParseSortOrder(order)
	if err != nil {
		return ReviewQuery{}, err
	}
	return ReviewQuery{Category: category, SortBy: col, Order: dir}, nil
}

// Build renders the statement and its bound arguments. The category is always a bound
// parameter; only the allow-listed ORDER BY expression and direction are written inline.
func (q ReviewQuery) Build() (string, []any, error) {
	col := q.SortBy
	if col == "" {
		col = DefaultSortColumn
	}
	expr, ok := sortColumns[col]
	if !ok {
		return "", nil, apperr.ErrInvalidSortColumn
	}

	dir := q.Order
	if dir == "" {
		dir = DefaultSortOrder
	}
	if dir != Ascending && dir != Descending {
		return "", nil, apperr.ErrInvalidSortOrder
	}

	var sb strings.Builder
	var args []any

	sb.WriteString(reviewSummarySelect)
	if q.Category != "" {
		sb.WriteString("\nWHERE reviews.category = ?")
		args = append(args, q.Category)
	}
	sb.WriteString("\nGROUP BY reviews.review_id")
	sb.WriteString("\nORDER BY ")
	sb.WriteString(expr)
	sb.WriteString(" ")
	sb.WriteString(string(dir))
	sb.WriteString(";")

	return sb.String(), args, nil
}

// buildReviewByID renders the single-review variant with the same projection and grouping.
func buildReviewByID(id int64) (string, []any) {
	return reviewSummarySelect + "\nWHERE reviews.review_id = ?\nGROUP BY reviews.review_id;", []any{id}
}
