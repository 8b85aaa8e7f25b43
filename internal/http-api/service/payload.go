package service

import (
	"encoding/json"
	"math"
	"strings"

	"ncgames/internal/apperr"
)

// Payload is a decoded JSON request body. Keeping it untyped lets the services tell a
// missing field (BadRequest) apart from a field of the wrong type (InvalidInput).
type Payload map[string]any

const incVotesKey = "inc_votes"

// parseVotePatch accepts exactly {"inc_votes": <integer>}.
func parseVotePatch(p Payload) (int, error) {
	raw, ok := p[incVotesKey]
	if !ok || len(p) != 1 {
		return 0, apperr.ErrBadRequest
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, apperr.ErrInvalidInput
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, apperr.ErrInvalidInput
		}
		return int(n), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, apperr.ErrInvalidInput
	}
}

// parseNewComment requires non-empty string username and body fields.
func parseNewComment(p Payload) (username, body string, err error) {
	username, ok := p["username"].(string)
	if !ok || strings.TrimSpace(username) == "" {
		return "", "", apperr.ErrBadRequest
	}
	body, ok = p["body"].(string)
	if !ok || strings.TrimSpace(body) == "" {
		return "", "", apperr.ErrBadRequest
	}
	return username, body, nil
}
