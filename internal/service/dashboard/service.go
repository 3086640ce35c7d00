package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/cache"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, cache cache.Cache, cacheTTL time.Duration) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		cache:               cache,
		cacheTTL:            cacheTTL,
		now:                 time.Now,
	}
}

// GetDashboard runs the four aggregate queries in parallel.
// Cache failures are logged and fall through to the database.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	var cached dashboard.DashboardResponse
	found, err := s.cache.Get(ctx, dashboard.CacheKey, &cached)
	if err != nil {
		slog.Warn("Dashboard cache read failed", "error", err)
	}
	if found {
		return cached, nil
	}

	current := period.Of(s.now())
	previous := current.Previous()

	var (
		total, active   int64
		thisMonth       decimal.Decimal
		lastMonth       decimal.Decimal
		pendingSalaries int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee counts
	g.Go(func() error {
		var err error
		total, active, err = s.CountEmployees(gCtx)
		return err
	})

	// 2. Salary total for the current month
	g.Go(func() error {
		var err error
		thisMonth, err = s.SumFinalSalary(gCtx, current.Month, current.Year)
		return err
	})

	// 3. Salary total for the previous month
	g.Go(func() error {
		var err error
		lastMonth, err = s.SumFinalSalary(gCtx, previous.Month, previous.Year)
		return err
	})

	// 4. Active employees still waiting for this month's salary
	g.Go(func() error {
		var err error
		pendingSalaries, err = s.CountPendingSalaries(gCtx, current.Month, current.Year)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	resp := dashboard.DashboardResponse{
		TotalEmployees:           total,
		ActiveEmployees:          active,
		TotalSalaryThisMonth:     thisMonth,
		TotalSalaryLastMonth:     lastMonth,
		PendingSalaryGenerations: pendingSalaries,
	}

	if err := s.cache.Set(ctx, dashboard.CacheKey, resp, s.cacheTTL); err != nil {
		slog.Warn("Dashboard cache write failed", "error", err)
	}

	return resp, nil
}
