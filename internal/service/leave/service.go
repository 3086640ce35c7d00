package leave

import (
	"context"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !emp.Active {
		return leave.LeaveResponse{}, employee.ErrEmployeeInactive
	}

	leaveDate, _ := validator.IsValidDate(req.LeaveDate)
	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID:  emp.ID,
		LeaveDate:   leaveDate,
		LeaveType:   leave.LeaveType(req.LeaveType),
		Description: req.Description,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	created.EmployeeName = emp.Name

	return leave.NewLeaveResponse(created), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(leaves), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(leaves), nil
}

// ListByEmployeeAndMonth returns paid and unpaid leaves alike.
func (s *LeaveServiceImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]leave.LeaveResponse, error) {
	if err := validator.ValidatePeriod(month, year); err != nil {
		return nil, err
	}
	p := period.Period{Month: month, Year: year}

	leaves, err := s.leaveRepo.ListByEmployeeBetween(ctx, employeeID, p.Start(), p.End())
	if err != nil {
		return nil, err
	}
	return toResponses(leaves), nil
}

// DeleteLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	return s.leaveRepo.SoftDelete(ctx, id)
}

func toResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.NewLeaveResponse(l))
	}
	return responses
}
