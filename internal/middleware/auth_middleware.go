package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "stock-m/internal/auth/errors"
	"stock-m/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the session token (authToken cookie, or a
// Bearer header for non-browser clients) and injects the verified
// identity into the gin context and the trusted x-user-id / x-user-role /
// x-company-id request headers. Handlers only ever trust these, never a
// raw client-supplied header.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if cookie, err := c.Cookie("authToken"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if bearer, found := strings.CutPrefix(authHeader, "Bearer "); found {
				tokenString = bearer
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, autherrors.ErrMissingToken.Code, autherrors.ErrMissingToken.Message, nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, autherrors.ErrInvalidToken.Code, "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, autherrors.ErrInvalidToken.Code, "User ID not found in token", nil)
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		companyID, _ := claims["company_id"].(string)

		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("company_id", companyID)

		// Mirror into headers so anything downstream of the router sees
		// the same verified identity.
		c.Request.Header.Set("x-user-id", userID)
		c.Request.Header.Set("x-user-role", role)
		if companyID != "" {
			c.Request.Header.Set("x-company-id", companyID)
		}

		c.Next()
	}
}
