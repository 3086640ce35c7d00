package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

const advanceSelect = `
	SELECT a.id, a.employee_id, e.name, a.amount, a.advance_date, a.description, a.created_at
	FROM advances a
	JOIN employees e ON e.id = a.employee_id
	WHERE a.deleted_at IS NULL`

func (r *advanceRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	advances := make([]advance.Advance, 0)
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Amount, &a.AdvanceDate, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return advances, nil
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return advance.Advance{}, err
	}

	query := `
		INSERT INTO advances (id, employee_id, amount, advance_date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	if err := q.QueryRow(ctx, query, id, a.EmployeeID, a.Amount, a.AdvanceDate, a.Description).Scan(&a.ID, &a.CreatedAt); err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}
	return a, nil
}

// List implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) List(ctx context.Context) ([]advance.Advance, error) {
	return r.query(ctx, advanceSelect+` ORDER BY a.advance_date DESC, a.created_at DESC`)
}

// ListByEmployee implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	return r.query(ctx, advanceSelect+` AND a.employee_id = $1 ORDER BY a.advance_date DESC, a.created_at DESC`, employeeID)
}

// ListByEmployeeBetween implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]advance.Advance, error) {
	return r.query(ctx, advanceSelect+` AND a.employee_id = $1 AND a.advance_date BETWEEN $2 AND $3 ORDER BY a.advance_date ASC, a.created_at ASC`,
		employeeID, from, to)
}

// SoftDelete implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE advances SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to soft delete advance: %w", err)
	}
	return nil
}
