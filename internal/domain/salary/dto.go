package salary

import (
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalaryPeriodRequest struct {
	EmployeeID string `json:"employeeId"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *SalaryPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is invalid"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakdownItem struct {
	Date        string          `json:"date"`
	Type        DetailType      `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func NewBreakdownItems(details []SalaryDetail) []BreakdownItem {
	items := make([]BreakdownItem, 0, len(details))
	for _, d := range details {
		items = append(items, BreakdownItem{
			Date:        period.FormatDate(d.Date),
			Type:        d.Type,
			Amount:      d.Amount,
			Description: d.Description,
		})
	}
	return items
}

type SalaryPreviewResponse struct {
	EmployeeID        string          `json:"employeeId"`
	EmployeeName      string          `json:"employeeName"`
	EmployeeMobile    string          `json:"employeeMobile"`
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	TotalOvertime     decimal.Decimal `json:"totalOvertime"`
	TotalAdvances     decimal.Decimal `json:"totalAdvances"`
	PFDeduction       decimal.Decimal `json:"pfDeduction"`
	UnpaidLeaveDays   int             `json:"unpaidLeaveDays"`
	LeaveDeduction    decimal.Decimal `json:"leaveDeduction"`
	FinalSalary       decimal.Decimal `json:"finalSalary"`
	DateWiseBreakdown []BreakdownItem `json:"dateWiseBreakdown"`
}

type SalaryResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	EmployeeName   string          `json:"employeeName"`
	EmployeeMobile string          `json:"employeeMobile"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	TotalOvertime  decimal.Decimal `json:"totalOvertime"`
	TotalAdvances  decimal.Decimal `json:"totalAdvances"`
	TotalLeaves    decimal.Decimal `json:"totalLeaves"`
	PFDeduction    decimal.Decimal `json:"pfDeduction"`
	FinalSalary    decimal.Decimal `json:"finalSalary"`
	SMSSent        bool            `json:"smsSent"`
	SMSSentAt      *time.Time      `json:"smsSentAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	Details        []BreakdownItem `json:"details"`
}

func NewSalaryResponse(s Salary) SalaryResponse {
	return SalaryResponse{
		ID:             s.ID,
		EmployeeID:     s.EmployeeID,
		EmployeeName:   s.EmployeeName,
		EmployeeMobile: s.EmployeeMobile,
		Month:          s.Month,
		Year:           s.Year,
		BaseSalary:     s.BaseSalary,
		TotalOvertime:  s.TotalOvertime,
		TotalAdvances:  s.TotalAdvances,
		TotalLeaves:    s.TotalLeaves,
		PFDeduction:    s.PFDeduction,
		FinalSalary:    s.FinalSalary,
		SMSSent:        s.SMSSent,
		SMSSentAt:      s.SMSSentAt,
		CreatedAt:      s.CreatedAt,
		Details:        NewBreakdownItems(s.Details),
	}
}

// ExportFile is a rendered salary register ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
