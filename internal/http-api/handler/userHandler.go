package handler

import (
	"net/http"

	"ncgames/internal/http-api/dto"
	"ncgames/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:username", h.Get)
	}
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UsersResponse{Users: users})
}

// GET /api/users/:username
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{User: *user})
}
