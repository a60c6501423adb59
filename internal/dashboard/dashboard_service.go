package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context) (DashboardStatsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

func (s *service) GetStats(ctx context.Context) (DashboardStatsResponse, error) {
	totalEmployees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("dashboard count employees failed", zap.Error(err))
		return DashboardStatsResponse{}, err
	}

	today := s.now().UTC().Format("2006-01-02")
	presentToday, err := s.repo.CountPresentOn(ctx, today)
	if err != nil {
		s.logger.Error("dashboard count present today failed", zap.Error(err))
		return DashboardStatsResponse{}, err
	}

	pendingLeaves, err := s.repo.CountPendingLeaves(ctx)
	if err != nil {
		s.logger.Error("dashboard count pending leaves failed", zap.Error(err))
		return DashboardStatsResponse{}, err
	}

	return DashboardStatsResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   presentToday,
		PendingLeaves:  pendingLeaves,
	}, nil
}
