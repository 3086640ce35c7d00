package advance

import (
	"context"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateAdvance implements advance.AdvanceService.
func (s *AdvanceServiceImpl) CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if !emp.Active {
		return advance.AdvanceResponse{}, employee.ErrEmployeeInactive
	}

	advanceDate, _ := validator.IsValidDate(req.AdvanceDate)
	created, err := s.advanceRepo.Create(ctx, advance.Advance{
		EmployeeID:  emp.ID,
		Amount:      *req.Amount,
		AdvanceDate: advanceDate,
		Description: req.Description,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	created.EmployeeName = emp.Name

	return advance.NewAdvanceResponse(created), nil
}

// ListAdvances implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(advances), nil
}

// ListByEmployee implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(advances), nil
}

// ListByEmployeeAndMonth implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]advance.AdvanceResponse, error) {
	if err := validator.ValidatePeriod(month, year); err != nil {
		return nil, err
	}
	p := period.Period{Month: month, Year: year}

	advances, err := s.advanceRepo.ListByEmployeeBetween(ctx, employeeID, p.Start(), p.End())
	if err != nil {
		return nil, err
	}
	return toResponses(advances), nil
}

// DeleteAdvance implements advance.AdvanceService.
func (s *AdvanceServiceImpl) DeleteAdvance(ctx context.Context, id string) error {
	return s.advanceRepo.SoftDelete(ctx, id)
}

func toResponses(advances []advance.Advance) []advance.AdvanceResponse {
	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		responses = append(responses, advance.NewAdvanceResponse(a))
	}
	return responses
}
