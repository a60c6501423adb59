package attendanceerrors

import (
	"net/http"

	"github.com/chsatyam09/HRMS/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Present or Absent",
		http.StatusBadRequest,
	)
	ErrAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"Attendance for this date already exists",
		http.StatusConflict,
	)
)
