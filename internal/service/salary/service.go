package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/cache"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/export"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/sms"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

type SalaryServiceImpl struct {
	tx           database.Transactor
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
	overtimeRepo overtime.OvertimeRepository
	advanceRepo  advance.AdvanceRepository
	leaveRepo    leave.LeaveRepository
	smsSender    sms.Sender
	countryCode  string
	cache        cache.Cache
	now          func() time.Time
}

func NewSalaryService(
	tx database.Transactor,
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	overtimeRepo overtime.OvertimeRepository,
	advanceRepo advance.AdvanceRepository,
	leaveRepo leave.LeaveRepository,
	smsSender sms.Sender,
	countryCode string,
	cache cache.Cache,
) salary.SalaryService {
	return &SalaryServiceImpl{
		tx:           tx,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		overtimeRepo: overtimeRepo,
		advanceRepo:  advanceRepo,
		leaveRepo:    leaveRepo,
		smsSender:    smsSender,
		countryCode:  countryCode,
		cache:        cache,
		now:          time.Now,
	}
}

// PreviewSalary computes the salary without persisting anything.
func (s *SalaryServiceImpl) PreviewSalary(ctx context.Context, req salary.SalaryPeriodRequest) (salary.SalaryPreviewResponse, error) {
	emp, p, err := s.prepare(ctx, &req)
	if err != nil {
		return salary.SalaryPreviewResponse{}, err
	}

	calc, err := s.calculate(ctx, emp, p)
	if err != nil {
		return salary.SalaryPreviewResponse{}, err
	}

	return salary.SalaryPreviewResponse{
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		EmployeeMobile:    emp.Mobile,
		Month:             p.Month,
		Year:              p.Year,
		BaseSalary:        emp.BaseSalary,
		TotalOvertime:     calc.TotalOvertime,
		TotalAdvances:     calc.TotalAdvances,
		PFDeduction:       calc.PFDeduction,
		UnpaidLeaveDays:   calc.UnpaidLeaveDays,
		LeaveDeduction:    calc.LeaveDeduction,
		FinalSalary:       calc.FinalSalary,
		DateWiseBreakdown: salary.NewBreakdownItems(calc.Details),
	}, nil
}

// GenerateSalary persists the salary and its breakdown, then tries the SMS.
// A failed SMS leaves smsSent=false for the sweep job to retry.
func (s *SalaryServiceImpl) GenerateSalary(ctx context.Context, req salary.SalaryPeriodRequest) (salary.SalaryResponse, error) {
	emp, p, err := s.prepare(ctx, &req)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	var created salary.Salary
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.salaryRepo.ExistsForPeriod(txCtx, emp.ID, p.Month, p.Year)
		if err != nil {
			return err
		}
		if exists {
			return salary.ErrSalaryAlreadyExists
		}

		calc, err := s.calculate(txCtx, emp, p)
		if err != nil {
			return err
		}

		created, err = s.salaryRepo.Create(txCtx, salary.Salary{
			EmployeeID:    emp.ID,
			Month:         p.Month,
			Year:          p.Year,
			BaseSalary:    emp.BaseSalary,
			TotalOvertime: calc.TotalOvertime,
			TotalAdvances: calc.TotalAdvances,
			TotalLeaves:   calc.LeaveDeduction,
			PFDeduction:   calc.PFDeduction,
			FinalSalary:   calc.FinalSalary,
			Details:       calc.Details,
		})
		return err
	})
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	created.EmployeeName = emp.Name
	created.EmployeeMobile = emp.Mobile

	s.invalidateDashboard(ctx)

	if err := s.deliver(ctx, &created); err != nil {
		slog.Warn("GenerateSalary SMS not delivered", "salary_id", created.ID, "error", err)
	}

	return salary.NewSalaryResponse(created), nil
}

func (s *SalaryServiceImpl) GetSalaryHistory(ctx context.Context, employeeID string) ([]salary.SalaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryResponse, 0, len(salaries))
	for _, sal := range salaries {
		responses = append(responses, salary.NewSalaryResponse(sal))
	}
	return responses, nil
}

// SendSalarySMS (re)sends the slip for an existing salary.
func (s *SalaryServiceImpl) SendSalarySMS(ctx context.Context, salaryID string) (salary.SalaryResponse, error) {
	sal, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	if err := s.deliver(ctx, &sal); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("%w: %w", salary.ErrSMSDeliveryFailed, err)
	}

	return salary.NewSalaryResponse(sal), nil
}

func (s *SalaryServiceImpl) ExportSalaryRegister(ctx context.Context, month, year int) (salary.ExportFile, error) {
	if err := validator.ValidatePeriod(month, year); err != nil {
		return salary.ExportFile{}, err
	}

	salaries, err := s.salaryRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return salary.ExportFile{}, err
	}

	rows := make([]export.RegisterRow, 0, len(salaries))
	for _, sal := range salaries {
		rows = append(rows, export.RegisterRow{
			EmployeeName:  sal.EmployeeName,
			Mobile:        sal.EmployeeMobile,
			BaseSalary:    sal.BaseSalary,
			TotalOvertime: sal.TotalOvertime,
			TotalAdvances: sal.TotalAdvances,
			TotalLeaves:   sal.TotalLeaves,
			PFDeduction:   sal.PFDeduction,
			FinalSalary:   sal.FinalSalary,
			SMSSent:       sal.SMSSent,
		})
	}

	p := period.Period{Month: month, Year: year}
	content, err := export.SalaryRegister("Salary Register - "+p.Label(), rows)
	if err != nil {
		return salary.ExportFile{}, fmt.Errorf("failed to render salary register: %w", err)
	}

	return salary.ExportFile{
		Filename:    fmt.Sprintf("salary-register-%04d-%02d.xlsx", year, month),
		ContentType: export.ContentTypeXLSX,
		Content:     content,
	}, nil
}

// prepare validates the request and loads an active employee.
func (s *SalaryServiceImpl) prepare(ctx context.Context, req *salary.SalaryPeriodRequest) (employee.Employee, period.Period, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, period.Period{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, period.Period{}, err
	}
	if !emp.Active {
		return employee.Employee{}, period.Period{}, employee.ErrEmployeeInactive
	}

	p, err := period.New(req.Month, req.Year)
	if err != nil {
		return employee.Employee{}, period.Period{}, err
	}
	return emp, p, nil
}

func (s *SalaryServiceImpl) calculate(ctx context.Context, emp employee.Employee, p period.Period) (Calculation, error) {
	from, to := p.Start(), p.End()

	overtimes, err := s.overtimeRepo.ListByEmployeeBetween(ctx, emp.ID, from, to)
	if err != nil {
		return Calculation{}, err
	}
	advances, err := s.advanceRepo.ListByEmployeeBetween(ctx, emp.ID, from, to)
	if err != nil {
		return Calculation{}, err
	}
	leaves, err := s.leaveRepo.ListUnpaidByEmployeeBetween(ctx, emp.ID, from, to)
	if err != nil {
		return Calculation{}, err
	}

	return Calculate(emp, p, overtimes, advances, leaves), nil
}

// deliver sends the slip and records the send on success.
func (s *SalaryServiceImpl) deliver(ctx context.Context, sal *salary.Salary) error {
	to := sms.FormatPhoneNumber(sal.EmployeeMobile, s.countryCode)
	if err := s.smsSender.Send(ctx, to, FormatSalarySlip(*sal)); err != nil {
		return err
	}

	sentAt := s.now()
	if err := s.salaryRepo.MarkSMSSent(ctx, sal.ID, sentAt); err != nil {
		return err
	}
	sal.SMSSent = true
	sal.SMSSentAt = &sentAt
	return nil
}

func (s *SalaryServiceImpl) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Delete(ctx, dashboard.CacheKey); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "error", err)
	}
}
