package attendance

import (
	"context"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// RecordAttendance creates or replaces the record for the employee and date.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.Active {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	attendanceDate, _ := validator.IsValidDate(req.AttendanceDate)
	saved, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID:     emp.ID,
		AttendanceDate: attendanceDate,
		Status:         attendance.Status(req.Status),
		Notes:          req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	saved.EmployeeName = emp.Name

	return attendance.NewAttendanceResponse(saved), nil
}

// ListAttendances implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendances(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListByEmployeeAndMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.AttendanceResponse, error) {
	if err := validator.ValidatePeriod(month, year); err != nil {
		return nil, err
	}
	p := period.Period{Month: month, Year: year}

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, p.Start(), p.End())
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return s.attendanceRepo.SoftDelete(ctx, id)
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.NewAttendanceResponse(a))
	}
	return responses
}
