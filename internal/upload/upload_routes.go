package upload

import (
	"stock-m/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	group := r.Group("/upload")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", middleware.Authorize(enforcer, "upload", "create"), h.Upload)
	}
}
