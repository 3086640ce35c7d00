package overtime

import (
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOvertimeRequest struct {
	EmployeeID   string           `json:"employeeId"`
	OvertimeDate string           `json:"overtimeDate"`
	Hours        *decimal.Decimal `json:"hours"`
	RatePerHour  *decimal.Decimal `json:"ratePerHour"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is invalid"})
	}
	if validator.IsEmpty(r.OvertimeDate) {
		errs = append(errs, validator.ValidationError{Field: "overtimeDate", Message: "Date is required"})
	} else if _, ok := validator.IsValidDate(r.OvertimeDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "overtimeDate", Message: "Date must be in YYYY-MM-DD format"})
	}
	if r.Hours == nil {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "Hours is required"})
	} else if !validator.IsPositive(r.Hours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "Hours must be greater than 0"})
	}
	if r.RatePerHour == nil {
		errs = append(errs, validator.ValidationError{Field: "ratePerHour", Message: "Rate per hour is required"})
	} else if !validator.IsPositive(r.RatePerHour) {
		errs = append(errs, validator.ValidationError{Field: "ratePerHour", Message: "Rate per hour must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	OvertimeDate string          `json:"overtimeDate"`
	Hours        decimal.Decimal `json:"hours"`
	RatePerHour  decimal.Decimal `json:"ratePerHour"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func NewOvertimeResponse(o Overtime) OvertimeResponse {
	return OvertimeResponse{
		ID:           o.ID,
		EmployeeID:   o.EmployeeID,
		EmployeeName: o.EmployeeName,
		OvertimeDate: period.FormatDate(o.OvertimeDate),
		Hours:        o.Hours,
		RatePerHour:  o.RatePerHour,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
	}
}
