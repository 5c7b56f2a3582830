package sale

import (
	"stock-m/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware())
	{
		sales.GET("", middleware.Authorize(enforcer, "sales", "read"), h.GetAll)
		sales.GET("/range/:range", middleware.Authorize(enforcer, "sales", "read"), h.GetAllByRange)
		sales.POST("",
			middleware.Authorize(enforcer, "sales", "create"),
			middleware.RateLimitByUser(5, 10),
			middleware.Idempotency(rdb),
			h.Create,
		)
		sales.DELETE("/:id", middleware.Authorize(enforcer, "sales", "delete"), h.Delete)
	}
}
