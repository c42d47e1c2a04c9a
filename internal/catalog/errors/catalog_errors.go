package catalogerrors

import (
	"net/http"

	"go-laundry/internal/shared/apperror"
)

var (
	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service not found",
		http.StatusNotFound,
	)

	ErrStaffOnly = apperror.New(
		apperror.CodeForbidden,
		"Only staff may manage services",
		http.StatusForbidden,
	)

	ErrNegativePrice = apperror.New(
		apperror.CodeInvalidInput,
		"Price must be a non-negative number",
		http.StatusBadRequest,
	)

	ErrInvalidServiceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid service ID",
		http.StatusBadRequest,
	)

	ErrServiceInUse = apperror.New(
		apperror.CodeConflict,
		"Service is referenced by existing orders and cannot be deleted",
		http.StatusConflict,
	)
)
