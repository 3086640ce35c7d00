package employee

import "context"

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)
	DeactivateEmployee(ctx context.Context, id string) error
}
