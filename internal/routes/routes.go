package routes

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Authorization Gate собирается здесь: authRequired (аутентификация),
// затем employerOnly (авторизация по роли) там, где нужна
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokenManager *auth.TokenManager,
) {
	authRequired := middleware.AuthMiddleware(tokenManager)
	employerOnly := middleware.RoleMiddleware(models.UserRoleEmployer)

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authRequired)
		appHandlers.JobHandler.RegisterRoutes(api, authRequired, employerOnly)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authRequired)
	}
}
