package reporterrors

import (
	"net/http"

	"github.com/chsatyam09/HRMS/internal/shared/apperror"
)

var (
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID is required",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
