package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveSelect = `
	SELECT l.id, l.employee_id, e.name, l.leave_date, l.leave_type, l.description, l.created_at
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id
	WHERE l.deleted_at IS NULL`

func (r *leaveRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.EmployeeName, &l.LeaveDate, &l.LeaveType, &l.Description, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leaves, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return leave.Leave{}, err
	}

	query := `
		INSERT INTO leaves (id, employee_id, leave_date, leave_type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	if err := q.QueryRow(ctx, query, id, l.EmployeeID, l.LeaveDate, l.LeaveType, l.Description).Scan(&l.ID, &l.CreatedAt); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context) ([]leave.Leave, error) {
	return r.query(ctx, leaveSelect+` ORDER BY l.leave_date DESC, l.created_at DESC`)
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	return r.query(ctx, leaveSelect+` AND l.employee_id = $1 ORDER BY l.leave_date DESC, l.created_at DESC`, employeeID)
}

// ListByEmployeeBetween implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return r.query(ctx, leaveSelect+` AND l.employee_id = $1 AND l.leave_date BETWEEN $2 AND $3 ORDER BY l.leave_date ASC, l.created_at ASC`,
		employeeID, from, to)
}

// ListUnpaidByEmployeeBetween implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListUnpaidByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return r.query(ctx, leaveSelect+` AND l.employee_id = $1 AND l.leave_type = $4 AND l.leave_date BETWEEN $2 AND $3 ORDER BY l.leave_date ASC, l.created_at ASC`,
		employeeID, from, to, leave.LeaveTypeUnpaid)
}

// SoftDelete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leaves SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to soft delete leave: %w", err)
	}
	return nil
}
