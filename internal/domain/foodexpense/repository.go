package foodexpense

import (
	"context"
	"time"
)

type FoodExpenseRepository interface {
	Upsert(ctx context.Context, f FoodExpense) (FoodExpense, error)
	List(ctx context.Context) ([]FoodExpense, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]FoodExpense, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]FoodExpense, error)
	SoftDelete(ctx context.Context, id string) error
}
