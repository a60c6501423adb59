package connection

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectSQLite opens the database file, enabling foreign keys and a busy
// timeout so concurrent writers queue instead of failing immediately.
func ConnectSQLite(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database %q: %w", path, err)
	}

	// SQLite serializes writers itself; a single connection avoids
	// SQLITE_BUSY churn under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
