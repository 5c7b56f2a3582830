package usererrors

import (
	"net/http"

	"stock-m/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Passwords do not match",
		http.StatusBadRequest,
	)
	ErrCurrentPasswordIncorrect = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrPasswordUnchanged = apperror.New(
		apperror.CodeInvalidInput,
		"New password cannot be the same as the current password",
		http.StatusBadRequest,
	)
)
