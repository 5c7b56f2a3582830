package company

import (
	"stock-m/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	companies := r.Group("/company")

	companies.Use(middleware.AuthMiddleware())

	{
		companies.GET("", middleware.Authorize(enforcer, "company", "read"), h.Get)
		companies.PUT("", middleware.Authorize(enforcer, "company", "update"), h.Update)
	}
}
