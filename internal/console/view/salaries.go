package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
)

type Salaries struct {
	svc    *service.Salaries
	notify *Notifier
	out    io.Writer
}

func NewSalaries(svc *service.Salaries, notify *Notifier, out io.Writer) *Salaries {
	return &Salaries{svc: svc, notify: notify, out: out}
}

// Preview prints the breakdown and the final salary exactly as the server computed it.
func (v *Salaries) Preview(ctx context.Context, f form.SalaryPeriod) (form.Errors, error) {
	if errs := f.Validate(); errs.Any() {
		return errs, nil
	}

	p, err := v.svc.Preview(ctx, f.EmployeeID, f.Month, f.Year)
	if err != nil {
		return submitErrors(v.notify, err, "Failed to preview salary"), err
	}

	fmt.Fprintf(v.out, "Salary preview: %s (%s) - %s\n\n", p.EmployeeName, p.EmployeeMobile, period.Period{Month: p.Month, Year: p.Year}.Label())

	if len(p.DateWiseBreakdown) > 0 {
		tw := newTable(v.out, "DATE", "TYPE", "DESCRIPTION", "AMOUNT")
		for _, item := range p.DateWiseBreakdown {
			row(tw, item.Date, string(item.Type), item.Description, money(item.Amount))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
		fmt.Fprintln(v.out)
	}

	tw := newTable(v.out, "COMPONENT", "AMOUNT")
	row(tw, "Base Salary", money(p.BaseSalary))
	row(tw, "Overtime", "+"+money(p.TotalOvertime))
	row(tw, "Advances", "-"+money(p.TotalAdvances))
	row(tw, "PF Deduction", "-"+money(p.PFDeduction))
	row(tw, fmt.Sprintf("Leave Deduction (%d unpaid days)", p.UnpaidLeaveDays), "-"+money(p.LeaveDeduction))
	row(tw, "Final Salary", money(p.FinalSalary))
	return nil, tw.Flush()
}

func (v *Salaries) Generate(ctx context.Context, f form.SalaryPeriod) (form.Errors, error) {
	if errs := f.Validate(); errs.Any() {
		return errs, nil
	}

	s, err := v.svc.Generate(ctx, f.EmployeeID, f.Month, f.Year)
	if err != nil {
		return submitErrors(v.notify, err, "Failed to generate salary"), err
	}

	v.notify.Success("Salary generated successfully!")
	if !s.SMSSent {
		v.notify.Warning("Salary SMS was not delivered; retry with send-sms " + s.ID)
	}
	return nil, v.renderSalaries([]salary.SalaryResponse{s})
}

func (v *Salaries) History(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		v.notify.Warning("Please select an employee")
		return ErrNoEmployee
	}

	salaries, err := v.svc.History(ctx, employeeID)
	if err != nil {
		v.notify.Failure(err, "Failed to fetch salary history")
		return err
	}
	if len(salaries) == 0 {
		fmt.Fprintln(v.out, "No salaries found")
		return nil
	}
	return v.renderSalaries(salaries)
}

func (v *Salaries) SendSMS(ctx context.Context, salaryID string) error {
	if _, err := v.svc.SendSMS(ctx, salaryID); err != nil {
		v.notify.Failure(err, "Failed to send SMS")
		return err
	}
	v.notify.Success("SMS sent successfully!")
	return nil
}

// Export writes the register into dir and returns the file path.
func (v *Salaries) Export(ctx context.Context, month, year int, dir string) (string, error) {
	data, filename, err := v.svc.Export(ctx, month, year)
	if err != nil {
		v.notify.Failure(err, "Failed to export salaries")
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("salary-register-%04d-%02d.xlsx", year, month)
	}

	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		v.notify.Error("Failed to save " + path)
		return "", err
	}
	v.notify.Success("Salary register saved to " + path)
	return path, nil
}

func (v *Salaries) renderSalaries(salaries []salary.SalaryResponse) error {
	tw := newTable(v.out, "ID", "PERIOD", "BASE", "OVERTIME", "ADVANCES", "LEAVES", "PF", "FINAL", "SMS")
	for _, s := range salaries {
		sms := "pending"
		if s.SMSSent {
			sms = "sent"
		}
		row(tw, s.ID, period.Period{Month: s.Month, Year: s.Year}.Label(),
			money(s.BaseSalary), money(s.TotalOvertime), money(s.TotalAdvances),
			money(s.TotalLeaves), money(s.PFDeduction), money(s.FinalSalary), sms)
	}
	return tw.Flush()
}
