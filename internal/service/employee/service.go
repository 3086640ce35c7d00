package employee

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/cache"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	cache        cache.Cache
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, cache cache.Cache) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		cache:        cache,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByMobile(ctx, req.Mobile, nil)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrMobileExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:       req.Name,
		Mobile:     req.Mobile,
		BaseSalary: *req.BaseSalary,
		PFAmount:   *req.PFAmount,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidateDashboard(ctx)
	return employee.NewEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if current.Mobile != req.Mobile {
		exists, err := s.employeeRepo.ExistsByMobile(ctx, req.Mobile, &id)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrMobileExists
		}
	}

	current.Name = req.Name
	current.Mobile = req.Mobile
	current.BaseSalary = *req.BaseSalary
	current.PFAmount = *req.PFAmount

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidateDashboard(ctx)
	return employee.NewEmployeeResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.Active {
		return employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

func (s *EmployeeServiceImpl) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Delete(ctx, dashboard.CacheKey); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "error", err)
	}
}
