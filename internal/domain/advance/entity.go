package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Advance struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	AdvanceDate  time.Time
	Description  *string
	CreatedAt    time.Time
}
