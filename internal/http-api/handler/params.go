package handler

import (
	"strconv"

	"ncgames/internal/apperr"
	"ncgames/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter. Anything else is reported as the
// given invalid-id error, the same error a missing row produces.
func parseID(c *gin.Context, name, invalidMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		_ = c.Error(apperr.InvalidID(invalidMsg))
		return 0, false
	}
	return id, true
}

// bindPayload decodes the JSON body without a schema so services can tell missing
// fields from mistyped ones.
func bindPayload(c *gin.Context) (service.Payload, bool) {
	var payload service.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(apperr.ErrBadRequest.WithCause(err))
		return nil, false
	}
	return payload, true
}
