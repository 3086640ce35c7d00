package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	List(ctx context.Context) ([]Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
	// ListUnpaidByEmployeeBetween feeds the salary engine.
	ListUnpaidByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
	SoftDelete(ctx context.Context, id string) error
}
