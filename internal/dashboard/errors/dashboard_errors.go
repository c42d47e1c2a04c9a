package errors

import (
	"net/http"

	"go-laundry/internal/shared/apperror"
)

var ErrStaffOnly = apperror.New(apperror.CodeForbidden, "only staff can view the dashboard", http.StatusForbidden)
