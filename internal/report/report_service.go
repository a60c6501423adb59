package report

import (
	"context"
	"errors"
	"math"

	reporterrors "github.com/chsatyam09/HRMS/internal/report/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DepartmentAll is the sentinel filter value meaning "do not filter by
// department"; it is not a real department name.
const DepartmentAll = "all"

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	GetReports(ctx context.Context, q ReportQuery) (ReportResponse, error)
	GetEmployeeReport(ctx context.Context, employeeID, startDate, endDate string) (EmployeeReportResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

// GetReports assembles the attendance/department statistics for the given
// filters. The department filter is resolved into a concrete employee-id set
// before any attendance query runs, because attendance rows carry no
// department column; a department with zero members short-circuits to an
// all-zero report instead of flowing an empty IN-list into the store.
func (s *service) GetReports(ctx context.Context, q ReportQuery) (ReportResponse, error) {
	s.logger.Debug("get reports requested",
		zap.String("start_date", q.StartDate),
		zap.String("end_date", q.EndDate),
		zap.String("department", q.Department),
	)

	department := ""
	if q.Department != "" && q.Department != DepartmentAll {
		department = q.Department
	}

	var employeeIDs []string
	if department != "" {
		ids, err := s.repo.FindEmployeeIDsByDepartment(ctx, department)
		if err != nil {
			s.logger.Error("get reports resolve department failed", zap.Error(err))
			return ReportResponse{}, err
		}
		if len(ids) == 0 {
			s.logger.Debug("get reports department has no employees",
				zap.String("department", department),
			)
			return emptyReport(), nil
		}
		employeeIDs = ids
	}

	filter := AttendanceFilter{EmployeeIDs: employeeIDs}
	if q.StartDate != "" && q.EndDate != "" {
		filter.StartDate = q.StartDate
		filter.EndDate = q.EndDate
	}

	totalEmployees, err := s.repo.CountEmployees(ctx, department)
	if err != nil {
		s.logger.Error("get reports count employees failed", zap.Error(err))
		return ReportResponse{}, err
	}

	totalAttendance, err := s.repo.CountAttendance(ctx, filter)
	if err != nil {
		s.logger.Error("get reports count attendance failed", zap.Error(err))
		return ReportResponse{}, err
	}

	presentFilter := filter
	presentFilter.Status = statusPresent
	presentCount, err := s.repo.CountAttendance(ctx, presentFilter)
	if err != nil {
		s.logger.Error("get reports count present failed", zap.Error(err))
		return ReportResponse{}, err
	}

	departmentStats, err := s.repo.DepartmentStats(ctx, department)
	if err != nil {
		s.logger.Error("get reports department stats failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if departmentStats == nil {
		departmentStats = []DepartmentStat{}
	}

	monthlyTrend, err := s.repo.MonthlyTrend(ctx, filter)
	if err != nil {
		s.logger.Error("get reports monthly trend failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if monthlyTrend == nil {
		monthlyTrend = []MonthlyTrendEntry{}
	}

	return ReportResponse{
		TotalEmployees:  totalEmployees,
		TotalAttendance: totalAttendance,
		PresentCount:    presentCount,
		AbsentCount:     totalAttendance - presentCount,
		AttendanceRate:  attendanceRate(presentCount, totalAttendance),
		DepartmentStats: departmentStats,
		MonthlyTrend:    monthlyTrend,
	}, nil
}

func (s *service) GetEmployeeReport(ctx context.Context, employeeID, startDate, endDate string) (EmployeeReportResponse, error) {
	s.logger.Debug("get employee report requested",
		zap.String("employee_id", employeeID),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
	)

	if employeeID == "" {
		return EmployeeReportResponse{}, reporterrors.ErrEmployeeIDRequired
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeReportResponse{}, reporterrors.ErrInvalidEmployeeID
	}

	employee, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeReportResponse{}, reporterrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee report lookup failed", zap.Error(err))
		return EmployeeReportResponse{}, err
	}

	filter := AttendanceFilter{}
	if startDate != "" && endDate != "" {
		filter.StartDate = startDate
		filter.EndDate = endDate
	}
	records, err := s.repo.FindAttendanceByEmployee(ctx, employeeID, filter)
	if err != nil {
		s.logger.Error("get employee report attendance failed", zap.Error(err))
		return EmployeeReportResponse{}, err
	}
	if records == nil {
		records = []AttendanceRecord{}
	}

	var presentDays int64
	for _, r := range records {
		if r.Status == statusPresent {
			presentDays++
		}
	}
	totalDays := int64(len(records))

	return EmployeeReportResponse{
		Employee:       *employee,
		TotalDays:      totalDays,
		PresentDays:    presentDays,
		AbsentDays:     totalDays - presentDays,
		AttendanceRate: attendanceRate(presentDays, totalDays),
		Records:        records,
	}, nil
}

// attendanceRate returns present/total as a percentage rounded to two
// decimal places, and 0 when there is nothing to divide by.
func attendanceRate(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

func emptyReport() ReportResponse {
	return ReportResponse{
		DepartmentStats: []DepartmentStat{},
		MonthlyTrend:    []MonthlyTrendEntry{},
	}
}
