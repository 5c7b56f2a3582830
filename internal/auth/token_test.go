package auth_test

import (
	"testing"
	"time"

	"stock-m/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pw")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, auth.VerifyPassword("s3cret-pw", hash))
	assert.False(t, auth.VerifyPassword("wrong", hash))
}

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	payload := auth.TokenPayload{
		UserID:         uuid.New().String(),
		Role:           "Seller",
		CompanyID:      uuid.New().String(),
		Names:          "Jane Smith",
		Email:          "jane@example.com",
		CompanyName:    "Acme Retail",
		CompanyAddress: "12 Main St",
	}

	token, err := auth.GenerateToken(payload)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := auth.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, payload, *got)
}

func TestVerifyToken_RejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken(auth.TokenPayload{UserID: uuid.New().String(), Role: "Admin"})
	assert.NoError(t, err)

	got, err := auth.VerifyToken(token + "x")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestVerifyToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := auth.GenerateToken(auth.TokenPayload{UserID: uuid.New().String(), Role: "Admin"})
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	got, err := auth.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestVerifyToken_RejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "Admin",
		"iat":     time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp":     time.Now().Add(-24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	got, err := auth.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestVerifyToken_RejectsMissingIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"role": "Admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	got, err := auth.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, got)
}
