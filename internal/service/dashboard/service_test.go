package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	mu      sync.Mutex
	periods []string
	sums    map[string]decimal.Decimal
	fail    bool
}

func key(month, year int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (r *stubDashboardRepo) CountEmployees(context.Context) (int64, int64, error) {
	if r.fail {
		return 0, 0, errors.New("db down")
	}
	return 12, 10, nil
}

func (r *stubDashboardRepo) SumFinalSalary(_ context.Context, month, year int) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods = append(r.periods, key(month, year))
	return r.sums[key(month, year)], nil
}

func (r *stubDashboardRepo) CountPendingSalaries(context.Context, int, int) (int64, error) {
	return 4, nil
}

type mapCache struct {
	values map[string]dashboard.DashboardResponse
}

func (m *mapCache) Get(_ context.Context, k string, target interface{}) (bool, error) {
	v, ok := m.values[k]
	if ok {
		*target.(*dashboard.DashboardResponse) = v
	}
	return ok, nil
}

func (m *mapCache) Set(_ context.Context, k string, value interface{}, _ time.Duration) error {
	m.values[k] = value.(dashboard.DashboardResponse)
	return nil
}

func (m *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func TestGetDashboardAggregates(t *testing.T) {
	repo := &stubDashboardRepo{sums: map[string]decimal.Decimal{
		"2025-01": decimal.NewFromInt(90000),
		"2024-12": decimal.NewFromInt(85000),
	}}
	svc := NewDashboardService(repo, cache.NewNoopCache(), time.Minute).(*DashboardServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC) }

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), resp.TotalEmployees)
	assert.Equal(t, int64(10), resp.ActiveEmployees)
	assert.True(t, decimal.NewFromInt(90000).Equal(resp.TotalSalaryThisMonth))
	assert.True(t, decimal.NewFromInt(85000).Equal(resp.TotalSalaryLastMonth))
	assert.Equal(t, int64(4), resp.PendingSalaryGenerations)
	assert.ElementsMatch(t, []string{"2025-01", "2024-12"}, repo.periods)
}

func TestGetDashboardServesFromCache(t *testing.T) {
	repo := &stubDashboardRepo{sums: map[string]decimal.Decimal{}}
	c := &mapCache{values: map[string]dashboard.DashboardResponse{}}
	svc := NewDashboardService(repo, c, time.Minute)

	first, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Contains(t, c.values, dashboard.CacheKey)

	repo.fail = true
	second, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, c.Delete(context.Background(), dashboard.CacheKey))
	_, err = svc.GetDashboard(context.Background())
	assert.Error(t, err)
}
