package app

import (
	"database/sql"

	"github.com/chsatyam09/HRMS/internal/attendance"
	"github.com/chsatyam09/HRMS/internal/dashboard"
	"github.com/chsatyam09/HRMS/internal/employee"
	"github.com/chsatyam09/HRMS/internal/leave"
	"github.com/chsatyam09/HRMS/internal/middleware"
	"github.com/chsatyam09/HRMS/internal/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	leaveService := leave.NewService(db, leaveRepo, logger)
	reportService := report.NewService(reportRepo, logger)
	dashboardService := dashboard.NewService(dashboardRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.ContextLogger(logger))
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		leave.RegisterRoutes(api, leaveHandler)
		report.RegisterRoutes(api, reportHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}
}
