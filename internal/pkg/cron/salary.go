package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
)

type SalaryJobs struct {
	salaryRepo salary.SalaryRepository
	salarySvc  salary.SalaryService
	lookback   time.Duration
	now        func() time.Time
}

func NewSalaryJobs(salaryRepo salary.SalaryRepository, salarySvc salary.SalaryService, lookbackDays int) *SalaryJobs {
	return &SalaryJobs{
		salaryRepo: salaryRepo,
		salarySvc:  salarySvc,
		lookback:   time.Duration(lookbackDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

func (j *SalaryJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	return scheduler.AddJob("send_pending_salary_sms", spec, j.SendPendingSMS)
}

// SendPendingSMS retries slips for salaries generated inside the lookback
// window whose SMS never went out. One failure does not stop the sweep.
func (j *SalaryJobs) SendPendingSMS(ctx context.Context) error {
	since := j.now().Add(-j.lookback)

	pending, err := j.salaryRepo.ListPendingSMS(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to list pending salary sms: %w", err)
	}

	if len(pending) == 0 {
		slog.Debug("Cron: No pending salary SMS")
		return nil
	}

	slog.Info("Cron: Sending pending salary SMS", "count", len(pending))

	sent := 0
	for _, s := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := j.salarySvc.SendSalarySMS(ctx, s.ID); err != nil {
			slog.Error("Cron: Failed to send salary SMS", "salary_id", s.ID, "employee_id", s.EmployeeID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Cron: Pending salary SMS sweep finished", "sent", sent, "failed", len(pending)-sent)
	return nil
}
