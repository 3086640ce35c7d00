package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	List(ctx context.Context) ([]Overtime, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Overtime, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Overtime, error)
	SoftDelete(ctx context.Context, id string) error
}
