package report

import (
	"context"

	"gorm.io/gorm"
)

// statusPresent mirrors the attendance module's status vocabulary; reports
// only ever distinguish present from everything else.
const statusPresent = "Present"

// AttendanceFilter is the conjunction of the optional report predicates.
// The date bounds apply only when both are set; a nil EmployeeIDs slice
// means "no employee filter" (an empty non-nil slice would match nothing
// and must be short-circuited by the caller before reaching the store).
type AttendanceFilter struct {
	StartDate   string
	EndDate     string
	EmployeeIDs []string
	Status      string
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FindEmployeeIDsByDepartment(ctx context.Context, department string) ([]string, error)
	CountEmployees(ctx context.Context, department string) (int64, error)
	CountAttendance(ctx context.Context, f AttendanceFilter) (int64, error)
	DepartmentStats(ctx context.Context, department string) ([]DepartmentStat, error)
	MonthlyTrend(ctx context.Context, f AttendanceFilter) ([]MonthlyTrendEntry, error)
	FindEmployee(ctx context.Context, id string) (*EmployeeIdentity, error)
	FindAttendanceByEmployee(ctx context.Context, employeeID string, f AttendanceFilter) ([]AttendanceRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// employeeQuery contributes the department condition when one is given.
func (r *repository) employeeQuery(ctx context.Context, department string) *gorm.DB {
	q := r.db.WithContext(ctx).Table("employees")
	if department != "" {
		q = q.Where("department = ?", department)
	}
	return q
}

// attendanceQuery builds the conjunction of the optional attendance
// predicates; each filter contributes zero or one condition.
func (r *repository) attendanceQuery(ctx context.Context, f AttendanceFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Table("attendances")
	if f.StartDate != "" && f.EndDate != "" {
		q = q.Where("date BETWEEN ? AND ?", f.StartDate, f.EndDate)
	}
	if f.EmployeeIDs != nil {
		q = q.Where("employee_id IN ?", f.EmployeeIDs)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (r *repository) FindEmployeeIDsByDepartment(ctx context.Context, department string) ([]string, error) {
	var ids []string
	err := r.employeeQuery(ctx, department).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) CountEmployees(ctx context.Context, department string) (int64, error) {
	var count int64
	err := r.employeeQuery(ctx, department).
		Count(&count).Error
	return count, err
}

func (r *repository) CountAttendance(ctx context.Context, f AttendanceFilter) (int64, error) {
	var count int64
	err := r.attendanceQuery(ctx, f).
		Count(&count).Error
	return count, err
}

func (r *repository) DepartmentStats(ctx context.Context, department string) ([]DepartmentStat, error) {
	var stats []DepartmentStat
	err := r.employeeQuery(ctx, department).
		Select("department, COUNT(id) AS total").
		Group("department").
		Order("department ASC").
		Scan(&stats).Error
	return stats, err
}

func (r *repository) MonthlyTrend(ctx context.Context, f AttendanceFilter) ([]MonthlyTrendEntry, error) {
	var rows []MonthlyTrendEntry
	err := r.attendanceQuery(ctx, f).
		Select(
			"strftime('%Y-%m', date) AS month, "+
				"COUNT(id) AS count, "+
				"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS present",
			statusPresent,
		).
		Group("strftime('%Y-%m', date)").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*EmployeeIdentity, error) {
	var e EmployeeIdentity
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, employee_id, full_name, email, department").
		Where("id = ?", id).
		Take(&e).Error
	return &e, err
}

func (r *repository) FindAttendanceByEmployee(ctx context.Context, employeeID string, f AttendanceFilter) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	err := r.attendanceQuery(ctx, f).
		Select("id, date, status").
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Scan(&records).Error
	return records, err
}
