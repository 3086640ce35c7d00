package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (total int64, active int64, err error)
	SumFinalSalary(ctx context.Context, month, year int) (decimal.Decimal, error)
	// CountPendingSalaries counts active employees with no salary for the period.
	CountPendingSalaries(ctx context.Context, month, year int) (int64, error)
}
