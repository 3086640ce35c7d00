package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salarySelect = `
	SELECT s.id, s.employee_id, e.name, e.mobile, s.month, s.year, s.base_salary,
		s.total_overtime, s.total_advances, s.total_leaves, s.pf_deduction, s.final_salary,
		s.sms_sent, s.sms_sent_at, s.created_at
	FROM salaries s
	JOIN employees e ON e.id = s.employee_id`

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var s salary.Salary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.EmployeeName, &s.EmployeeMobile, &s.Month, &s.Year, &s.BaseSalary,
		&s.TotalOvertime, &s.TotalAdvances, &s.TotalLeaves, &s.PFDeduction, &s.FinalSalary,
		&s.SMSSent, &s.SMSSentAt, &s.CreatedAt,
	)
	return s, err
}

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return salary.Salary{}, err
	}

	query := `
		INSERT INTO salaries (
			id, employee_id, month, year, base_salary, total_overtime, total_advances,
			total_leaves, pf_deduction, final_salary, sms_sent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE)
		RETURNING id, created_at
	`
	err = q.QueryRow(ctx, query,
		id, s.EmployeeID, s.Month, s.Year, s.BaseSalary, s.TotalOvertime, s.TotalAdvances,
		s.TotalLeaves, s.PFDeduction, s.FinalSalary,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_salaries_employee_period") {
			return salary.Salary{}, salary.ErrSalaryAlreadyExists
		}
		return salary.Salary{}, fmt.Errorf("failed to create salary: %w", err)
	}

	detailQuery := `
		INSERT INTO salary_details (id, salary_id, detail_date, detail_type, amount, description, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i := range s.Details {
		detailID, err := newID()
		if err != nil {
			return salary.Salary{}, err
		}
		d := &s.Details[i]
		if _, err := q.Exec(ctx, detailQuery, detailID, s.ID, d.Date, d.Type, d.Amount, d.Description, i); err != nil {
			return salary.Salary{}, fmt.Errorf("failed to create salary detail: %w", err)
		}
		d.ID = detailID
		d.SalaryID = s.ID
	}

	return s, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSalary(q.QueryRow(ctx, salarySelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary by id: %w", err)
	}

	details, err := r.listDetails(ctx, []string{s.ID})
	if err != nil {
		return salary.Salary{}, err
	}
	s.Details = details[s.ID]
	return s, nil
}

// ExistsForPeriod implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM salaries WHERE employee_id = $1 AND month = $2 AND year = $3)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check salary period: %w", err)
	}
	return exists, nil
}

// ListByEmployee implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	return r.list(ctx, salarySelect+` WHERE s.employee_id = $1 ORDER BY s.year DESC, s.month DESC`, employeeID)
}

// ListByPeriod implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]salary.Salary, error) {
	return r.list(ctx, salarySelect+` WHERE s.month = $1 AND s.year = $2 ORDER BY e.name ASC`, month, year)
}

// ListPendingSMS implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListPendingSMS(ctx context.Context, createdSince time.Time) ([]salary.Salary, error) {
	return r.list(ctx, salarySelect+` WHERE s.sms_sent = FALSE AND s.created_at >= $1 ORDER BY s.created_at ASC`, createdSince)
}

// MarkSMSSent implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) MarkSMSSent(ctx context.Context, id string, sentAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE salaries SET sms_sent = TRUE, sms_sent_at = $2 WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, sentAt).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.ErrSalaryNotFound
		}
		return fmt.Errorf("failed to mark salary sms sent: %w", err)
	}
	return nil
}

func (r *salaryRepositoryImpl) list(ctx context.Context, sql string, args ...interface{}) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries: %w", err)
	}
	defer rows.Close()

	salaries := make([]salary.Salary, 0)
	ids := make([]string, 0)
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return salaries, nil
	}

	details, err := r.listDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range salaries {
		salaries[i].Details = details[salaries[i].ID]
	}
	return salaries, nil
}

func (r *salaryRepositoryImpl) listDetails(ctx context.Context, salaryIDs []string) (map[string][]salary.SalaryDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, salary_id, detail_date, detail_type, amount, COALESCE(description, '')
		FROM salary_details
		WHERE salary_id = ANY($1::uuid[])
		ORDER BY salary_id, position ASC
	`
	rows, err := q.Query(ctx, query, salaryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary details: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]salary.SalaryDetail, len(salaryIDs))
	for rows.Next() {
		var d salary.SalaryDetail
		if err := rows.Scan(&d.ID, &d.SalaryID, &d.Date, &d.Type, &d.Amount, &d.Description); err != nil {
			return nil, fmt.Errorf("failed to scan salary detail: %w", err)
		}
		result[d.SalaryID] = append(result[d.SalaryID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
