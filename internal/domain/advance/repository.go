package advance

import (
	"context"
	"time"
)

type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	List(ctx context.Context) ([]Advance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Advance, error)
	// ListByEmployeeBetween is inclusive on both dates.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Advance, error)
	SoftDelete(ctx context.Context, id string) error
}
