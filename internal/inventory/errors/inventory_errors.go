package inventoryerrors

import (
	"net/http"

	"stock-m/internal/shared/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrNegativeQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must not be negative",
		http.StatusBadRequest,
	)
	ErrNegativePrice = apperror.New(
		apperror.CodeInvalidInput,
		"Prices must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrExpirationBeforePurchase = apperror.New(
		apperror.CodeInvalidInput,
		"Expiration date must not precede the purchase date",
		http.StatusBadRequest,
	)
)
