package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "github.com/chsatyam09/HRMS/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Mark creates one presence record. A concurrent duplicate for the same
// (employee, date) loses on the unique index and surfaces as a conflict,
// which callers treat as expected rather than fatal.
func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("mark attendance requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	employeeUUID, date, err := validateMarkRequest(req)
	if err != nil {
		s.logger.Warn("mark attendance validation failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("mark attendance employee lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if !exists {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	a := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Date:       date,
		Status:     req.Status,
	}

	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Warn("mark attendance persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	s.logger.Info("mark attendance success",
		zap.String("id", a.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", date),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, attendanceerrors.ErrEmployeeNotFound
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func validateMarkRequest(req MarkAttendanceRequest) (uuid.UUID, string, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, "", attendanceerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return uuid.Nil, "", attendanceerrors.ErrInvalidDateFormat
	}

	if req.Status != StatusPresent && req.Status != StatusAbsent {
		return uuid.Nil, "", attendanceerrors.ErrInvalidStatus
	}

	return employeeUUID, date.Format("2006-01-02"), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date,
		Status:     a.Status,
	}
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		resp = append(resp, mapToResponse(a))
	}
	return resp
}
