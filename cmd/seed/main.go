package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chsatyam09/HRMS/internal/app"
	"github.com/chsatyam09/HRMS/internal/attendance"
	"github.com/chsatyam09/HRMS/internal/employee"
	"github.com/chsatyam09/HRMS/internal/leave"
	"github.com/chsatyam09/HRMS/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var demoEmployees = []employee.Employee{
	{EmployeeID: "EMP001", FullName: "John Smith", Email: "john.smith@example.com", Department: "Engineering"},
	{EmployeeID: "EMP002", FullName: "Sarah Johnson", Email: "sarah.johnson@example.com", Department: "HR"},
	{EmployeeID: "EMP003", FullName: "Michael Chen", Email: "michael.chen@example.com", Department: "Engineering"},
	{EmployeeID: "EMP004", FullName: "Emily Davis", Email: "emily.davis@example.com", Department: "Marketing"},
	{EmployeeID: "EMP005", FullName: "David Wilson", Email: "david.wilson@example.com", Department: "Sales"},
	{EmployeeID: "EMP006", FullName: "Jessica Martinez", Email: "jessica.martinez@example.com", Department: "Engineering"},
	{EmployeeID: "EMP007", FullName: "Robert Taylor", Email: "robert.taylor@example.com", Department: "HR"},
	{EmployeeID: "EMP008", FullName: "Amanda Brown", Email: "amanda.brown@example.com", Department: "Marketing"},
	{EmployeeID: "EMP009", FullName: "James Anderson", Email: "james.anderson@example.com", Department: "Sales"},
	{EmployeeID: "EMP010", FullName: "Lisa Thompson", Email: "lisa.thompson@example.com", Department: "Engineering"},
	{EmployeeID: "EMP011", FullName: "Christopher Lee", Email: "christopher.lee@example.com", Department: "Engineering"},
	{EmployeeID: "EMP012", FullName: "Michelle White", Email: "michelle.white@example.com", Department: "HR"},
	{EmployeeID: "EMP013", FullName: "Daniel Harris", Email: "daniel.harris@example.com", Department: "Sales"},
	{EmployeeID: "EMP014", FullName: "Jennifer Clark", Email: "jennifer.clark@example.com", Department: "Marketing"},
	{EmployeeID: "EMP015", FullName: "Matthew Lewis", Email: "matthew.lewis@example.com", Department: "Engineering"},
}

type demoLeave struct {
	employeeIndex int
	startOffset   int
	endOffset     int
	reason        string
	status        string
}

var demoLeaves = []demoLeave{
	{0, 5, 7, "Family vacation", leave.StatusPending},
	{2, 10, 12, "Personal work", leave.StatusPending},
	{5, 3, 4, "Medical appointment", leave.StatusPending},
	{8, 15, 17, "Wedding", leave.StatusPending},
	{11, 8, 9, "Family emergency", leave.StatusPending},
	{1, -5, -3, "Sick leave", leave.StatusApproved},
	{3, -10, -8, "Holiday", leave.StatusApproved},
	{6, -2, -1, "Personal day", leave.StatusApproved},
	{9, -7, -6, "Medical checkup", leave.StatusApproved},
	{12, -12, -10, "Family event", leave.StatusApproved},
	{4, 20, 25, "Long vacation", leave.StatusRejected},
	{7, 6, 8, "Personal", leave.StatusRejected},
	{10, 4, 5, "Casual leave", leave.StatusRejected},
}

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "hrms.db"
	}

	db, err := connection.ConnectSQLite(dbPath)
	if err != nil {
		return err
	}
	if err := app.Migrate(db); err != nil {
		return err
	}

	// Fresh seed: clear dependents before owners
	for _, table := range []string{"attendances", "leaves", "employees"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}

	employees, err := seedEmployees(db, logger)
	if err != nil {
		return err
	}

	if err := seedLeaves(db, employees, logger); err != nil {
		return err
	}

	if err := seedAttendance(db, employees, logger); err != nil {
		return err
	}

	logger.Info("seeding complete", zap.Int("employees", len(employees)))
	return nil
}

func seedEmployees(db *gorm.DB, logger *zap.Logger) ([]employee.Employee, error) {
	created := make([]employee.Employee, 0, len(demoEmployees))
	var skipped int

	for _, e := range demoEmployees {
		e.ID = uuid.New()
		e.CreatedAt = time.Now().UTC()

		if err := db.Create(&e).Error; err != nil {
			if isUniqueViolation(err) {
				skipped++
				continue
			}
			return nil, fmt.Errorf("seed employee %s: %w", e.EmployeeID, err)
		}
		created = append(created, e)
	}

	logger.Info("employees seeded",
		zap.Int("created", len(created)),
		zap.Int("skipped", skipped),
	)
	return created, nil
}

func seedLeaves(db *gorm.DB, employees []employee.Employee, logger *zap.Logger) error {
	var created, skipped int
	today := time.Now().UTC()

	for _, d := range demoLeaves {
		if d.employeeIndex >= len(employees) {
			continue
		}
		l := leave.Leave{
			ID:         uuid.New(),
			EmployeeID: employees[d.employeeIndex].ID,
			StartDate:  dateOffset(today, d.startOffset),
			EndDate:    dateOffset(today, d.endOffset),
			Reason:     d.reason,
			Status:     d.status,
		}
		if err := db.Create(&l).Error; err != nil {
			if isUniqueViolation(err) {
				skipped++
				continue
			}
			return fmt.Errorf("seed leave for %s: %w", employees[d.employeeIndex].EmployeeID, err)
		}
		created++
	}

	logger.Info("leave requests seeded",
		zap.Int("created", created),
		zap.Int("skipped", skipped),
	)
	return nil
}

// seedAttendance marks the last 7 days for every employee with a
// deterministic pattern of roughly 70% present. Duplicate (employee, date)
// rows are skipped, not fatal, so reseeding over existing data converges.
func seedAttendance(db *gorm.DB, employees []employee.Employee, logger *zap.Logger) error {
	var created, skipped int
	today := time.Now().UTC()

	for dayOffset := -6; dayOffset <= 0; dayOffset++ {
		date := dateOffset(today, dayOffset)

		for i, e := range employees {
			status := attendance.StatusPresent
			if (i+dayOffset)%10 >= 7 {
				status = attendance.StatusAbsent
			}

			a := attendance.Attendance{
				ID:         uuid.New(),
				EmployeeID: e.ID,
				Date:       date,
				Status:     status,
			}
			if err := db.Create(&a).Error; err != nil {
				if isUniqueViolation(err) {
					skipped++
					continue
				}
				return fmt.Errorf("seed attendance for %s on %s: %w", e.EmployeeID, date, err)
			}
			created++
		}
	}

	logger.Info("attendance records seeded",
		zap.Int("created", created),
		zap.Int("skipped", skipped),
	)
	return nil
}

func dateOffset(from time.Time, days int) string {
	return from.AddDate(0, 0, days).Format("2006-01-02")
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
