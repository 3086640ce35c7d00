package leave

import "context"

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListLeaves(ctx context.Context) ([]LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]LeaveResponse, error)
	DeleteLeave(ctx context.Context, id string) error
}
