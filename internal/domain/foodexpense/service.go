package foodexpense

import "context"

type FoodExpenseService interface {
	RecordFoodExpense(ctx context.Context, req UpsertFoodExpenseRequest) (FoodExpenseResponse, error)
	ListFoodExpenses(ctx context.Context) ([]FoodExpenseResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]FoodExpenseResponse, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]FoodExpenseResponse, error)
	DeleteFoodExpense(ctx context.Context, id string) error
}
