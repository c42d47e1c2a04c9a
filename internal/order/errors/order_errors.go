package ordererrors

import (
	"net/http"

	"go-laundry/internal/shared/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order ID",
		http.StatusBadRequest,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be greater than zero",
		http.StatusBadRequest,
	)

	ErrPickupAddressRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Pickup address is required",
		http.StatusBadRequest,
	)

	ErrDeliveryAddressRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Delivery address is required",
		http.StatusBadRequest,
	)

	ErrStaffCannotOrder = apperror.New(
		apperror.CodeForbidden,
		"Staff cannot place orders",
		http.StatusForbidden,
	)

	ErrStaffCannotCancel = apperror.New(
		apperror.CodeForbidden,
		"Staff cannot cancel customer orders",
		http.StatusForbidden,
	)

	ErrNotOrderOwner = apperror.New(
		apperror.CodeForbidden,
		"You do not have access to this order",
		http.StatusForbidden,
	)

	ErrStaffOnly = apperror.New(
		apperror.CodeForbidden,
		"Only staff may update order status",
		http.StatusForbidden,
	)

	ErrOrderNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"Only pending orders can be cancelled",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order status",
		http.StatusBadRequest,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Invalid order status transition",
		http.StatusBadRequest,
	)

	ErrOrderNumberExhausted = apperror.New(
		apperror.CodeConflict,
		"Could not generate a unique order number",
		http.StatusConflict,
	)
)
