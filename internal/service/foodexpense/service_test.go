package foodexpense

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/foodexpense"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	activeEmployeeID   = "0190a8c2-4d3e-7a11-8b2c-1f0e9d8c7b6a"
	inactiveEmployeeID = "0190a8c2-4d3e-7a11-8b2c-1f0e9d8c7b6b"
	missingEmployeeID  = "0190a8c2-4d3e-7a11-8b2c-1f0e9d8c7b6c"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (s stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// memFoodExpenseRepo mirrors the (employee, date) upsert of the SQL implementation.
type memFoodExpenseRepo struct {
	foodexpense.FoodExpenseRepository
	rows  map[string]foodexpense.FoodExpense
	calls int
}

func (m *memFoodExpenseRepo) Upsert(_ context.Context, f foodexpense.FoodExpense) (foodexpense.FoodExpense, error) {
	m.calls++
	key := f.EmployeeID + "|" + period.FormatDate(f.ExpenseDate)
	if existing, ok := m.rows[key]; ok {
		f.ID = existing.ID
	} else {
		f.ID = key
	}
	m.rows[key] = f
	return f, nil
}

func newTestService() (foodexpense.FoodExpenseService, *memFoodExpenseRepo) {
	repo := &memFoodExpenseRepo{rows: map[string]foodexpense.FoodExpense{}}
	employees := stubEmployeeRepo{employees: map[string]employee.Employee{
		activeEmployeeID:   {ID: activeEmployeeID, Name: "Asha", Active: true},
		inactiveEmployeeID: {ID: inactiveEmployeeID, Name: "Ravi", Active: false},
	}}
	return NewFoodExpenseService(repo, employees), repo
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRecordFoodExpenseUpdatesSameDay(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.RecordFoodExpense(ctx, foodexpense.UpsertFoodExpenseRequest{
		EmployeeID: activeEmployeeID, ExpenseDate: "2024-06-03", Amount: amount("120"),
	})
	require.NoError(t, err)

	second, err := svc.RecordFoodExpense(ctx, foodexpense.UpsertFoodExpenseRequest{
		EmployeeID: activeEmployeeID, ExpenseDate: "2024-06-03", Amount: amount("95.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "95.50", second.Amount.StringFixed(2))
	assert.Len(t, repo.rows, 1)

	other, err := svc.RecordFoodExpense(ctx, foodexpense.UpsertFoodExpenseRequest{
		EmployeeID: activeEmployeeID, ExpenseDate: "2024-06-04", Amount: amount("80"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Len(t, repo.rows, 2)
}

func TestRecordFoodExpenseRejectsUnusableEmployee(t *testing.T) {
	tests := []struct {
		name       string
		employeeID string
		wantErr    error
	}{
		{"inactive", inactiveEmployeeID, employee.ErrEmployeeInactive},
		{"missing", missingEmployeeID, employee.ErrEmployeeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			_, err := svc.RecordFoodExpense(context.Background(), foodexpense.UpsertFoodExpenseRequest{
				EmployeeID: tt.employeeID, ExpenseDate: "2024-06-03", Amount: amount("120"),
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.calls)
		})
	}
}
