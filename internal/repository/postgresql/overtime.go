package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeSelect = `
	SELECT o.id, o.employee_id, e.name, o.overtime_date, o.hours, o.rate_per_hour, o.total_amount, o.created_at
	FROM overtimes o
	JOIN employees e ON e.id = o.employee_id
	WHERE o.deleted_at IS NULL`

func (r *overtimeRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtimes: %w", err)
	}
	defer rows.Close()

	overtimes := make([]overtime.Overtime, 0)
	for rows.Next() {
		var o overtime.Overtime
		if err := rows.Scan(&o.ID, &o.EmployeeID, &o.EmployeeName, &o.OvertimeDate, &o.Hours, &o.RatePerHour, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		overtimes = append(overtimes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return overtimes, nil
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return overtime.Overtime{}, err
	}

	query := `
		INSERT INTO overtimes (id, employee_id, overtime_date, hours, rate_per_hour, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = q.QueryRow(ctx, query, id, o.EmployeeID, o.OvertimeDate, o.Hours, o.RatePerHour, o.TotalAmount).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}
	return o, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) List(ctx context.Context) ([]overtime.Overtime, error) {
	return r.query(ctx, overtimeSelect+` ORDER BY o.overtime_date DESC, o.created_at DESC`)
}

// ListByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.Overtime, error) {
	return r.query(ctx, overtimeSelect+` AND o.employee_id = $1 ORDER BY o.overtime_date DESC, o.created_at DESC`, employeeID)
}

// ListByEmployeeBetween implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]overtime.Overtime, error) {
	return r.query(ctx, overtimeSelect+` AND o.employee_id = $1 AND o.overtime_date BETWEEN $2 AND $3 ORDER BY o.overtime_date ASC, o.created_at ASC`,
		employeeID, from, to)
}

// SoftDelete implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE overtimes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.ErrOvertimeNotFound
		}
		return fmt.Errorf("failed to soft delete overtime: %w", err)
	}
	return nil
}
