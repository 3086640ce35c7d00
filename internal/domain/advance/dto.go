package advance

import (
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	EmployeeID  string           `json:"employeeId"`
	Amount      *decimal.Decimal `json:"amount"`
	AdvanceDate string           `json:"advanceDate"`
	Description *string          `json:"description,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is invalid"})
	}
	if r.Amount == nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount is required"})
	} else if !validator.IsPositive(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be greater than 0"})
	}
	if validator.IsEmpty(r.AdvanceDate) {
		errs = append(errs, validator.ValidationError{Field: "advanceDate", Message: "Date is required"})
	} else if _, ok := validator.IsValidDate(r.AdvanceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "advanceDate", Message: "Date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Amount       decimal.Decimal `json:"amount"`
	AdvanceDate  string          `json:"advanceDate"`
	Description  *string         `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func NewAdvanceResponse(a Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Amount:       a.Amount,
		AdvanceDate:  period.FormatDate(a.AdvanceDate),
		Description:  a.Description,
		CreatedAt:    a.CreatedAt,
	}
}
