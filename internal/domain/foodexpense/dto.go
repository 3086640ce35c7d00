package foodexpense

import (
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertFoodExpenseRequest struct {
	EmployeeID  string           `json:"employeeId"`
	ExpenseDate string           `json:"expenseDate"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description,omitempty"`
}

func (r *UpsertFoodExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is invalid"})
	}
	if validator.IsEmpty(r.ExpenseDate) {
		errs = append(errs, validator.ValidationError{Field: "expenseDate", Message: "Date is required"})
	} else if _, ok := validator.IsValidDate(r.ExpenseDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "expenseDate", Message: "Date must be in YYYY-MM-DD format"})
	}
	if r.Amount == nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount is required"})
	} else if !validator.IsPositive(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FoodExpenseResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	ExpenseDate  string          `json:"expenseDate"`
	Amount       decimal.Decimal `json:"amount"`
	Description  *string         `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func NewFoodExpenseResponse(f FoodExpense) FoodExpenseResponse {
	return FoodExpenseResponse{
		ID:           f.ID,
		EmployeeID:   f.EmployeeID,
		EmployeeName: f.EmployeeName,
		ExpenseDate:  period.FormatDate(f.ExpenseDate),
		Amount:       f.Amount,
		Description:  f.Description,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}
