package auth

import (
	"stock-m/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.1, 5), h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), h.Register)
	}
}
