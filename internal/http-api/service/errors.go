package service

import (
	"errors"

	"ncgames/internal/apperr"
)

// classify passes typed domain errors through and wraps anything else as Unexpected.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Unexpected(err)
}
