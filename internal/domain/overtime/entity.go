package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type Overtime struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	OvertimeDate time.Time
	Hours        decimal.Decimal
	RatePerHour  decimal.Decimal
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
}

// TotalFor is hours × rate rounded half-up to two decimals. Hours are rounded
// to the two places the column stores before multiplying.
func TotalFor(hours, rate decimal.Decimal) decimal.Decimal {
	return hours.Round(2).Mul(rate).Round(2)
}
