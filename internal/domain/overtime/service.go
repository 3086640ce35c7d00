package overtime

import "context"

type OvertimeService interface {
	CreateOvertime(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	ListOvertimes(ctx context.Context) ([]OvertimeResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]OvertimeResponse, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]OvertimeResponse, error)
	DeleteOvertime(ctx context.Context, id string) error
}
