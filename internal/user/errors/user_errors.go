package usererrors

import (
	"net/http"

	"go-laundry/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already registered",
		http.StatusConflict,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)

	ErrStaffOnly = apperror.New(
		apperror.CodeForbidden,
		"Only staff may perform this action",
		http.StatusForbidden,
	)
)
