package salary

import (
	"sort"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// Calculation is the outcome of one monthly salary run.
type Calculation struct {
	DailySalary     decimal.Decimal
	TotalOvertime   decimal.Decimal
	TotalAdvances   decimal.Decimal
	PFDeduction     decimal.Decimal
	UnpaidLeaveDays int
	LeaveDeduction  decimal.Decimal
	FinalSalary     decimal.Decimal
	Details         []salary.SalaryDetail
}

// Calculate derives the salary for p. Records dated outside p and paid leaves
// are ignored, so callers may pass unfiltered slices.
//
//	final = base + overtime - advances - pf - unpaidDays*round(base/daysInMonth, 2)
//
// The result is not clamped at zero.
func Calculate(emp employee.Employee, p period.Period, overtimes []overtime.Overtime, advances []advance.Advance, leaves []leave.Leave) Calculation {
	calc := Calculation{
		DailySalary:    emp.BaseSalary.Div(decimal.NewFromInt(int64(p.Days()))).Round(2),
		TotalOvertime:  decimal.Zero,
		TotalAdvances:  decimal.Zero,
		PFDeduction:    emp.PFAmount,
		LeaveDeduction: decimal.Zero,
		Details:        make([]salary.SalaryDetail, 0, len(overtimes)+len(advances)+len(leaves)),
	}

	for _, ot := range overtimes {
		if !p.Contains(ot.OvertimeDate) {
			continue
		}
		calc.TotalOvertime = calc.TotalOvertime.Add(ot.TotalAmount)
		calc.Details = append(calc.Details, salary.SalaryDetail{
			Date:        ot.OvertimeDate,
			Type:        salary.DetailTypeOvertime,
			Amount:      ot.TotalAmount,
			Description: ot.Hours.StringFixed(2) + " hrs @ " + ot.RatePerHour.StringFixed(2) + "/hr",
		})
	}

	for _, adv := range advances {
		if !p.Contains(adv.AdvanceDate) {
			continue
		}
		calc.TotalAdvances = calc.TotalAdvances.Add(adv.Amount)
		description := "Advance"
		if adv.Description != nil && *adv.Description != "" {
			description = *adv.Description
		}
		calc.Details = append(calc.Details, salary.SalaryDetail{
			Date:        adv.AdvanceDate,
			Type:        salary.DetailTypeAdvance,
			Amount:      adv.Amount.Neg(),
			Description: description,
		})
	}

	for _, l := range leaves {
		if l.LeaveType != leave.LeaveTypeUnpaid || !p.Contains(l.LeaveDate) {
			continue
		}
		calc.UnpaidLeaveDays++
		description := "Unpaid Leave"
		if l.Description != nil && *l.Description != "" {
			description = "Unpaid Leave: " + *l.Description
		}
		calc.Details = append(calc.Details, salary.SalaryDetail{
			Date:        l.LeaveDate,
			Type:        salary.DetailTypeLeave,
			Amount:      calc.DailySalary.Neg(),
			Description: description,
		})
	}

	calc.LeaveDeduction = calc.DailySalary.Mul(decimal.NewFromInt(int64(calc.UnpaidLeaveDays)))
	calc.FinalSalary = emp.BaseSalary.
		Add(calc.TotalOvertime).
		Sub(calc.TotalAdvances).
		Sub(calc.PFDeduction).
		Sub(calc.LeaveDeduction)

	sort.SliceStable(calc.Details, func(i, j int) bool {
		return calc.Details[i].Less(calc.Details[j])
	})

	return calc
}
