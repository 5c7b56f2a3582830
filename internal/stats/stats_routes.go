package stats

import (
	"stock-m/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	group := r.Group("/stats")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", middleware.Authorize(enforcer, "stats", "read"), h.Get)
	}
}
