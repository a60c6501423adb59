package dashboard

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountPresentOn(ctx context.Context, date string) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Count(&count).Error
	return count, err
}

func (r *repository) CountPresentOn(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Where("date = ?", date).
		Where("status = ?", "Present").
		Count(&count).Error
	return count, err
}

func (r *repository) CountPendingLeaves(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leaves").
		Where("status = ?", "Pending").
		Count(&count).Error
	return count, err
}
