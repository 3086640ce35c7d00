package overtime

import (
	"context"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository, employeeRepo employee.EmployeeRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo: overtimeRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateOvertime stores the entry with its total computed server-side.
func (s *OvertimeServiceImpl) CreateOvertime(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if !emp.Active {
		return overtime.OvertimeResponse{}, employee.ErrEmployeeInactive
	}

	overtimeDate, _ := validator.IsValidDate(req.OvertimeDate)
	created, err := s.overtimeRepo.Create(ctx, overtime.Overtime{
		EmployeeID:   emp.ID,
		OvertimeDate: overtimeDate,
		Hours:        req.Hours.Round(2),
		RatePerHour:  *req.RatePerHour,
		TotalAmount:  overtime.TotalFor(*req.Hours, *req.RatePerHour),
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	created.EmployeeName = emp.Name

	return overtime.NewOvertimeResponse(created), nil
}

// ListOvertimes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListOvertimes(ctx context.Context) ([]overtime.OvertimeResponse, error) {
	overtimes, err := s.overtimeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(overtimes), nil
}

// ListByEmployee implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.OvertimeResponse, error) {
	overtimes, err := s.overtimeRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(overtimes), nil
}

// ListByEmployeeAndMonth implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]overtime.OvertimeResponse, error) {
	if err := validator.ValidatePeriod(month, year); err != nil {
		return nil, err
	}
	p := period.Period{Month: month, Year: year}

	overtimes, err := s.overtimeRepo.ListByEmployeeBetween(ctx, employeeID, p.Start(), p.End())
	if err != nil {
		return nil, err
	}
	return toResponses(overtimes), nil
}

// DeleteOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DeleteOvertime(ctx context.Context, id string) error {
	return s.overtimeRepo.SoftDelete(ctx, id)
}

func toResponses(overtimes []overtime.Overtime) []overtime.OvertimeResponse {
	responses := make([]overtime.OvertimeResponse, 0, len(overtimes))
	for _, o := range overtimes {
		responses = append(responses, overtime.NewOvertimeResponse(o))
	}
	return responses
}
