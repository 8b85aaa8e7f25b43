package router

import (
	"ncgames/internal/http-api/handler"
	"ncgames/internal/http-api/repository"
	"ncgames/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Wire builds repositories, services and handlers over db and returns the engine.
// categories fronts the category allow-list; nil means the live table.
func Wire(db *gorm.DB, pinger handler.Pinger, categories service.CategorySet, opts Options) *gin.Engine {
	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	guard := repository.NewExistenceGuard(db)

	if categories == nil {
		categories = categoryRepo
	}

	// Services
	categoryService := service.NewCategoryService(categoryRepo)
	reviewService := service.NewReviewService(reviewRepo, guard, categories)
	commentService := service.NewCommentService(commentRepo, guard)
	userService := service.NewUserService(userRepo)

	return New(Handlers{
		API:        handler.NewAPIHandler(pinger),
		Categories: handler.NewCategoryHandler(categoryService),
		Reviews:    handler.NewReviewHandler(reviewService),
		Comments:   handler.NewCommentHandler(commentService),
		Users:      handler.NewUserHandler(userService),
	}, opts)
}
