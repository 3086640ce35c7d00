package foodexpense

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodExpense struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	ExpenseDate  time.Time
	Amount       decimal.Decimal
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
