package inventory

import (
	"stock-m/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	inventories := r.Group("/inventory")
	inventories.Use(middleware.AuthMiddleware())
	{
		inventories.GET("", middleware.Authorize(enforcer, "inventory", "read"), h.GetAll)
		inventories.POST("", middleware.Authorize(enforcer, "inventory", "create"), h.Create)
		inventories.PUT("", middleware.Authorize(enforcer, "inventory", "update"), h.Update)
		inventories.DELETE("/:id", middleware.Authorize(enforcer, "inventory", "delete"), h.Delete)
		inventories.GET("/in-stock", middleware.Authorize(enforcer, "inventory", "read"), h.GetInStock)
		inventories.GET("/out-stock", middleware.Authorize(enforcer, "inventory", "read"), h.GetOutStock)
		inventories.GET("/expired", middleware.Authorize(enforcer, "inventory", "read"), h.GetExpired)
	}
}
