package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/chsatyam09/HRMS/internal/employee/errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	errMsg := err.Error()
	isUnique := strings.Contains(errMsg, "UNIQUE constraint failed")
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		isUnique = true
	}
	if !isUnique {
		return err
	}

	switch {
	case strings.Contains(errMsg, "employees.employee_id"):
		return employeeerrors.ErrEmployeeIDAlreadyExists
	case strings.Contains(errMsg, "employees.email"):
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}
