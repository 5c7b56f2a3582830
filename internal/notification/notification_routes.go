package notification

import (
	"stock-m/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	notifications := r.Group("/notification")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.Authorize(enforcer, "notification", "read"), h.List)
		notifications.DELETE("/:id", middleware.Authorize(enforcer, "notification", "delete"), h.Delete)
	}
}
