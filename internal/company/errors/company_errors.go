package companyerrors

import (
	"net/http"

	"stock-m/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidLowStockLevel = apperror.New(
		apperror.CodeInvalidInput,
		"Low stock level must not be negative",
		http.StatusBadRequest,
	)
)
