package auth

import (
	"net/http"

	"stock-m/internal/shared/apperror"
	"stock-m/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	token, userResp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	SetTokenCookie(c, token)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userResp,
	}, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	ClearTokenCookie(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"}, nil)
}

// Session verifies the cookie and echoes the token payload back; the
// UI bootstraps its auth context from this.
func (h *Handler) Session(c *gin.Context) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "No token provided", nil)
		return
	}

	payload, err := VerifyToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token", nil)
		return
	}

	response.Success(c, http.StatusOK, SessionResponse{
		ID:             payload.UserID,
		Role:           payload.Role,
		CompanyID:      payload.CompanyID,
		Names:          payload.Names,
		Email:          payload.Email,
		CompanyName:    payload.CompanyName,
		CompanyAddress: payload.CompanyAddress,
	}, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}
