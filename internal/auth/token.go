package auth

import (
	"net/http"
	"os"
	"time"

	autherrors "stock-m/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName carries the signed session token.
	CookieName = "authToken"

	// TokenTTL is the session lifetime.
	TokenTTL = 7 * 24 * time.Hour
)

// TokenPayload is the identity embedded in every session token. The
// company fields ride along so the UI can render without extra lookups.
type TokenPayload struct {
	UserID         string
	Role           string
	CompanyID      string
	Names          string
	Email          string
	CompanyName    string
	CompanyAddress string
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateToken signs a 7-day HS256 token carrying the payload.
func GenerateToken(p TokenPayload) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":         p.UserID,
		"role":            p.Role,
		"company_id":      p.CompanyID,
		"names":           p.Names,
		"email":           p.Email,
		"company_name":    p.CompanyName,
		"company_address": p.CompanyAddress,
		"iat":             now.Unix(),
		"exp":             now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// VerifyToken parses and validates a session token. Any failure —
// bad signature, expiry, wrong algorithm — comes back as an error with a
// nil payload, never a partially trusted one.
func VerifyToken(tokenString string) (*TokenPayload, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}

	p := &TokenPayload{
		UserID:         stringClaim(claims, "user_id"),
		Role:           stringClaim(claims, "role"),
		CompanyID:      stringClaim(claims, "company_id"),
		Names:          stringClaim(claims, "names"),
		Email:          stringClaim(claims, "email"),
		CompanyName:    stringClaim(claims, "company_name"),
		CompanyAddress: stringClaim(claims, "company_address"),
	}
	if p.UserID == "" || p.Role == "" {
		return nil, autherrors.ErrInvalidToken
	}

	return p, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

// SetTokenCookie attaches the session cookie: http-only, strict
// same-site, secure in production.
func SetTokenCookie(c *gin.Context, token string) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})
}

func ClearTokenCookie(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})
}
