// Package router assembles the gin engine for the review API.
package router

import (
	"log/slog"
	"time"

	"ncgames/internal/http-api/handler"
	"ncgames/internal/http-api/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers mounted under /api.
type Handlers struct {
	API        *handler.APIHandler
	Categories *handler.CategoryHandler
	Reviews    *handler.ReviewHandler
	Comments   *handler.CommentHandler
	Users      *handler.UserHandler
}

type Options struct {
	Logger         *slog.Logger
	Limiter        *middleware.KeyedLimiter // nil disables rate limiting
	RequestTimeout time.Duration
}

// New builds the engine: middleware, /api routes, /check-conn and the 404 fallback.
func New(h Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	if opts.Limiter != nil {
		r.Use(middleware.RateLimit(opts.Limiter))
	}
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.ErrorHandler(logger))

	r.GET("/check-conn", h.API.CheckConn)

	api := r.Group("/api")
	{
		api.GET("", h.API.Endpoints)
		h.Categories.RegisterRoutes(api)
		h.Reviews.RegisterRoutes(api)
		h.Comments.RegisterRoutes(api)
		h.Users.RegisterRoutes(api)
	}

	r.NoRoute(middleware.NotFound)
	return r
}
