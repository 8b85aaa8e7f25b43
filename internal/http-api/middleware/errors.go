package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"ncgames/internal/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error as {"msg": ...}.
// Client errors use the domain message; anything else is logged and becomes a 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			appErr = apperr.Unexpected(err)
		}

		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err))
		}
		c.JSON(status, gin.H{"msg": appErr.Message})
	}
}

// Recovery turns a panic into a logged 500 with the same {"msg": ...} body as ErrorHandler.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": apperr.ErrUnexpected.Message})
	})
}

// NotFound handles unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "Path not found"})
}
