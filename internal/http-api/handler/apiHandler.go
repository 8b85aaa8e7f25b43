package handler

import (
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type APIHandler struct {
	db Pinger
}

func NewAPIHandler(db Pinger) *APIHandler {
	return &APIHandler{db: db}
}

// Endpoints serves the endpoint descriptions
// GET /api
func (h *APIHandler) Endpoints(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", endpointsJSON)
}

// CheckConn is the liveness probe
// GET /check-conn
func (h *APIHandler) CheckConn(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "API is alive and database connected"})
}
