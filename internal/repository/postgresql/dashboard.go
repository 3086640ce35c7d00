package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE active) FROM employees`

	var total, active int64
	if err := q.QueryRow(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, active, nil
}

// SumFinalSalary implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) SumFinalSalary(ctx context.Context, month, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(final_salary), 0) FROM salaries WHERE month = $1 AND year = $2`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, month, year).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum salaries: %w", err)
	}
	return total, nil
}

// CountPendingSalaries implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingSalaries(ctx context.Context, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM employees e
		WHERE e.active = TRUE
			AND NOT EXISTS (
				SELECT 1 FROM salaries s
				WHERE s.employee_id = e.id AND s.month = $1 AND s.year = $2
			)
	`

	var pending int64
	if err := q.QueryRow(ctx, query, month, year).Scan(&pending); err != nil {
		return 0, fmt.Errorf("failed to count pending salaries: %w", err)
	}
	return pending, nil
}
