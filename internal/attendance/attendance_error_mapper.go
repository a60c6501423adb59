package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/chsatyam09/HRMS/internal/attendance/errors"

	"github.com/mattn/go-sqlite3"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return attendanceerrors.ErrAlreadyMarked
	}

	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return attendanceerrors.ErrAlreadyMarked
	}

	return err
}
