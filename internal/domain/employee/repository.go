package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	// ExistsByMobile ignores the employee with excludeID when set.
	ExistsByMobile(ctx context.Context, mobile string, excludeID *string) (bool, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Deactivate(ctx context.Context, id string) error
}
