package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, e.name, a.attendance_date, a.status, a.notes, a.created_at, a.updated_at
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	WHERE a.deleted_at IS NULL`

func (r *attendanceRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.AttendanceDate, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		INSERT INTO attendances (id, employee_id, attendance_date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, attendance_date) WHERE deleted_at IS NULL
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err = q.QueryRow(ctx, query, id, a.EmployeeID, a.AttendanceDate, a.Status, a.Notes).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return a, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	return r.query(ctx, attendanceSelect+` ORDER BY a.attendance_date DESC, e.name ASC`)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return r.query(ctx, attendanceSelect+` AND a.employee_id = $1 ORDER BY a.attendance_date DESC`, employeeID)
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return r.query(ctx, attendanceSelect+` AND a.employee_id = $1 AND a.attendance_date BETWEEN $2 AND $3 ORDER BY a.attendance_date ASC`,
		employeeID, from, to)
}

// SoftDelete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE attendances SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to soft delete attendance: %w", err)
	}
	return nil
}
