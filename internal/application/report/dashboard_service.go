package report

import (
	"context"
	"time"

	"github.com/stockbook/backend/internal/domain/report"
)

// DashboardService provides the aggregated business overview
type DashboardService struct {
	dashboardRepo report.DashboardRepository
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo report.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// GetStats returns the dashboard statistics as of today
func (s *DashboardService) GetStats(ctx context.Context) (*report.DashboardStats, error) {
	return s.dashboardRepo.GetStats(ctx, s.now())
}
