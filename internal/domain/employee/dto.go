package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EmployeeRequest is shared by create and update; both replace every field.
type EmployeeRequest struct {
	Name       string           `json:"name"`
	Mobile     string           `json:"mobile"`
	BaseSalary *decimal.Decimal `json:"baseSalary"`
	PFAmount   *decimal.Decimal `json:"pfAmount"`
}

func (r *EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Mobile = strings.TrimSpace(r.Mobile)

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}

	if validator.IsEmpty(r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "Mobile number is required"})
	} else if !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "Mobile number must be 10 digits"})
	}

	if r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "Base salary is required"})
	} else if !validator.IsPositive(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "Base salary must be greater than 0"})
	}

	if r.PFAmount == nil {
		errs = append(errs, validator.ValidationError{Field: "pfAmount", Message: "PF amount is required"})
	} else if r.PFAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pfAmount", Message: "PF amount must be 0 or greater"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Mobile     string          `json:"mobile"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	PFAmount   decimal.Decimal `json:"pfAmount"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Mobile:     e.Mobile,
		BaseSalary: e.BaseSalary,
		PFAmount:   e.PFAmount,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
