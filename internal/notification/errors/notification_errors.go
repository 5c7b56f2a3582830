package notificationerrors

import (
	"net/http"

	"stock-m/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)
	ErrInvalidNotificationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid notification ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
)
