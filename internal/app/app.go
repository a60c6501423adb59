package app

import (
	"os"

	"github.com/chsatyam09/HRMS/internal/attendance"
	"github.com/chsatyam09/HRMS/internal/employee"
	"github.com/chsatyam09/HRMS/internal/leave"
	"github.com/chsatyam09/HRMS/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultDBPath = "hrms.db"

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	gormDB, err := connection.ConnectSQLite(dbPath)
	if err != nil {
		return err
	}
	logger.Info("database connection established", zap.String("path", dbPath))

	if err := Migrate(gormDB); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
	}))

	registerModules(router, db, gormDB, logger)

	return nil
}

// Migrate creates the three tables and their unique indexes.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&leave.Leave{},
	)
}
