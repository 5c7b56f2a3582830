package autherrors

import (
	"net/http"

	"stock-m/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrAccountInactive = apperror.New(
		apperror.CodeUnauthorized,
		"Your account is not active, please contact the administrator",
		http.StatusUnauthorized,
	)
	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"No token provided",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Passwords do not match",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists",
		http.StatusConflict,
	)
)
