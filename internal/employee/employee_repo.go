package employee

import (
	"context"
	"database/sql"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Delete(ctx context.Context, id string) error
	DeleteAttendanceByEmployee(ctx context.Context, id string) (int64, error)
	DeleteLeavesByEmployee(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db, err := gorm.Open(sqlite.New(sqlite.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) DeleteAttendanceByEmployee(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM attendances WHERE employee_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteLeavesByEmployee(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM leaves WHERE employee_id = ?", id)
	return res.RowsAffected, res.Error
}
