package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type DetailType string

const (
	DetailTypeOvertime DetailType = "OVERTIME"
	DetailTypeAdvance  DetailType = "ADVANCE"
	DetailTypeLeave    DetailType = "LEAVE"
)

// rank orders same-day breakdown items.
func (t DetailType) rank() int {
	switch t {
	case DetailTypeOvertime:
		return 0
	case DetailTypeAdvance:
		return 1
	default:
		return 2
	}
}

// Less orders details by date, then OVERTIME, ADVANCE, LEAVE.
func (d SalaryDetail) Less(o SalaryDetail) bool {
	if !d.Date.Equal(o.Date) {
		return d.Date.Before(o.Date)
	}
	return d.Type.rank() < o.Type.rank()
}

// SalaryDetail is one signed line of the date-wise breakdown.
type SalaryDetail struct {
	ID          string
	SalaryID    string
	Date        time.Time
	Type        DetailType
	Amount      decimal.Decimal
	Description string
}

type Salary struct {
	ID             string
	EmployeeID     string
	EmployeeName   string
	EmployeeMobile string
	Month          int
	Year           int
	BaseSalary     decimal.Decimal
	TotalOvertime  decimal.Decimal
	TotalAdvances  decimal.Decimal
	TotalLeaves    decimal.Decimal
	PFDeduction    decimal.Decimal
	FinalSalary    decimal.Decimal
	SMSSent        bool
	SMSSentAt      *time.Time
	CreatedAt      time.Time
	Details        []SalaryDetail
}
