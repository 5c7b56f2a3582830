package middleware

import (
	"stock-m/internal/shared/apperror"
	"stock-m/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authorize enforces the role policy for one resource/action pair.
// Runs after AuthMiddleware, which put the role into the context.
func Authorize(enforcer *casbin.Enforcer, obj, act string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, obj, act)
		if err != nil {
			zap.L().Error("rbac enforce failed",
				zap.String("role", role),
				zap.String("obj", obj),
				zap.String("act", act),
				zap.Error(err),
			)
			response.Error(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Code, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
