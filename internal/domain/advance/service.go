package advance

import "context"

type AdvanceService interface {
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	ListAdvances(ctx context.Context) ([]AdvanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvanceResponse, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]AdvanceResponse, error)
	DeleteAdvance(ctx context.Context, id string) error
}
