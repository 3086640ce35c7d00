package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/foodexpense"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type foodExpenseRepositoryImpl struct {
	db *database.DB
}

func NewFoodExpenseRepository(db *database.DB) foodexpense.FoodExpenseRepository {
	return &foodExpenseRepositoryImpl{db: db}
}

const foodExpenseSelect = `
	SELECT f.id, f.employee_id, e.name, f.expense_date, f.amount, f.description, f.created_at, f.updated_at
	FROM food_expenses f
	JOIN employees e ON e.id = f.employee_id
	WHERE f.deleted_at IS NULL`

func (r *foodExpenseRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]foodexpense.FoodExpense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query food expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]foodexpense.FoodExpense, 0)
	for rows.Next() {
		var f foodexpense.FoodExpense
		if err := rows.Scan(&f.ID, &f.EmployeeID, &f.EmployeeName, &f.ExpenseDate, &f.Amount, &f.Description, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan food expense: %w", err)
		}
		expenses = append(expenses, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Upsert implements foodexpense.FoodExpenseRepository.
func (r *foodExpenseRepositoryImpl) Upsert(ctx context.Context, f foodexpense.FoodExpense) (foodexpense.FoodExpense, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return foodexpense.FoodExpense{}, err
	}

	query := `
		INSERT INTO food_expenses (id, employee_id, expense_date, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, expense_date) WHERE deleted_at IS NULL
		DO UPDATE SET amount = EXCLUDED.amount, description = EXCLUDED.description, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err = q.QueryRow(ctx, query, id, f.EmployeeID, f.ExpenseDate, f.Amount, f.Description).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return foodexpense.FoodExpense{}, fmt.Errorf("failed to upsert food expense: %w", err)
	}
	return f, nil
}

// List implements foodexpense.FoodExpenseRepository.
func (r *foodExpenseRepositoryImpl) List(ctx context.Context) ([]foodexpense.FoodExpense, error) {
	return r.query(ctx, foodExpenseSelect+` ORDER BY f.expense_date DESC, e.name ASC`)
}

// ListByEmployee implements foodexpense.FoodExpenseRepository.
func (r *foodExpenseRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]foodexpense.FoodExpense, error) {
	return r.query(ctx, foodExpenseSelect+` AND f.employee_id = $1 ORDER BY f.expense_date DESC`, employeeID)
}

// ListByEmployeeBetween implements foodexpense.FoodExpenseRepository.
func (r *foodExpenseRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]foodexpense.FoodExpense, error) {
	return r.query(ctx, foodExpenseSelect+` AND f.employee_id = $1 AND f.expense_date BETWEEN $2 AND $3 ORDER BY f.expense_date ASC`,
		employeeID, from, to)
}

// SoftDelete implements foodexpense.FoodExpenseRepository.
func (r *foodExpenseRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE food_expenses SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return foodexpense.ErrFoodExpenseNotFound
		}
		return fmt.Errorf("failed to soft delete food expense: %w", err)
	}
	return nil
}
