package saleerrors

import (
	"net/http"

	"stock-m/internal/shared/apperror"
)

var (
	ErrSaleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Sale not found",
		http.StatusNotFound,
	)
	ErrInvalidSaleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid sale ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown sales range",
		http.StatusBadRequest,
	)
	ErrNotSaleOwner = apperror.New(
		apperror.CodeForbidden,
		"You may only delete your own sales",
		http.StatusForbidden,
	)
)

func ProductNotFound(productID string) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeNotFound,
		http.StatusNotFound,
		"Product %s not found", productID,
	)
}

func InsufficientStock(productName string, available, requested int) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeInsufficientStock,
		http.StatusBadRequest,
		"Insufficient stock for %s: %d available, %d requested",
		productName, available, requested,
	)
}
