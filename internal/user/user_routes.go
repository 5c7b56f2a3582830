package user

import (
	"stock-m/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	users := r.Group("/users")

	users.Use(middleware.AuthMiddleware())

	{
		users.GET("", middleware.Authorize(enforcer, "users", "read"), h.GetAll)
		users.POST("", middleware.Authorize(enforcer, "users", "create"), h.Create)
		// Password change is self-service, no role gate beyond auth.
		users.PUT("/edit", h.ChangePassword)
		users.PUT("/:id", middleware.Authorize(enforcer, "users", "update"), h.Update)
	}
}
