package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ncgames/database"
	"ncgames/internal/cache"
	"ncgames/internal/config"
	"ncgames/internal/http-api/middleware"
	"ncgames/internal/http-api/repository"
	"ncgames/internal/http-api/router"
	"ncgames/internal/http-api/service"
	"ncgames/internal/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	appLogger := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(appLogger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to the database
	db, err := database.ConnectDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3. Optional Redis category cache
	var categories service.CategorySet
	if cfg.CacheEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			appLogger.Warn("category cache disabled", "error", err)
		} else {
			defer rdb.Close()
			categories = cache.NewCategoryCache(rdb, repository.NewCategoryRepository(db.Gorm), cfg.CacheExpiry(), appLogger)
			appLogger.Info("category cache enabled", "ttl", cfg.CacheExpiry())
		}
	}

	// 4. Setup Gin
	r := router.Wire(db.Gorm, db, categories, router.Options{
		Logger:         appLogger,
		Limiter:        middleware.NewKeyedLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("server running", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", "error", err)
	}
}
