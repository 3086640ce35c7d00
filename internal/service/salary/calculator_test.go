package salary

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func TestCalculateFinalSalaryIdentity(t *testing.T) {
	emp := employee.Employee{ID: "e1", BaseSalary: d("31000"), PFAmount: d("1800"), Active: true}
	p := period.Period{Month: 3, Year: 2024}

	overtimes := []overtime.Overtime{
		{OvertimeDate: day(2024, 3, 2), Hours: d("2"), RatePerHour: d("250"), TotalAmount: d("500")},
	}
	advances := []advance.Advance{
		{AdvanceDate: day(2024, 3, 9), Amount: d("2000")},
		{AdvanceDate: day(2024, 4, 1), Amount: d("999")},
	}
	leaves := []leave.Leave{
		{LeaveDate: day(2024, 3, 15), LeaveType: leave.LeaveTypeUnpaid, Description: strPtr("Sick")},
		{LeaveDate: day(2024, 3, 16), LeaveType: leave.LeaveTypePaid},
	}

	calc := Calculate(emp, p, overtimes, advances, leaves)

	assert.True(t, d("1000").Equal(calc.DailySalary))
	assert.True(t, d("500").Equal(calc.TotalOvertime))
	assert.True(t, d("2000").Equal(calc.TotalAdvances))
	assert.True(t, d("1800").Equal(calc.PFDeduction))
	assert.Equal(t, 1, calc.UnpaidLeaveDays)
	assert.True(t, d("1000").Equal(calc.LeaveDeduction))
	assert.True(t, d("26700").Equal(calc.FinalSalary), "got %s", calc.FinalSalary)

	identity := emp.BaseSalary.Add(calc.TotalOvertime).Sub(calc.TotalAdvances).Sub(calc.PFDeduction).Sub(calc.LeaveDeduction)
	assert.True(t, identity.Equal(calc.FinalSalary))

	require.Len(t, calc.Details, 3)
	assert.Equal(t, salary.DetailTypeOvertime, calc.Details[0].Type)
	assert.Equal(t, "2.00 hrs @ 250.00/hr", calc.Details[0].Description)
	assert.Equal(t, salary.DetailTypeAdvance, calc.Details[1].Type)
	assert.Equal(t, "Advance", calc.Details[1].Description)
	assert.True(t, d("-2000").Equal(calc.Details[1].Amount))
	assert.Equal(t, salary.DetailTypeLeave, calc.Details[2].Type)
	assert.Equal(t, "Unpaid Leave: Sick", calc.Details[2].Description)
	assert.True(t, d("-1000").Equal(calc.Details[2].Amount))
}

func TestCalculateRoundsDailySalaryHalfUp(t *testing.T) {
	// 100.35 / 30 = 3.345
	emp := employee.Employee{BaseSalary: d("100.35"), PFAmount: decimal.Zero}
	p := period.Period{Month: 4, Year: 2024}
	leaves := []leave.Leave{
		{LeaveDate: day(2024, 4, 1), LeaveType: leave.LeaveTypeUnpaid},
		{LeaveDate: day(2024, 4, 2), LeaveType: leave.LeaveTypeUnpaid},
	}

	calc := Calculate(emp, p, nil, nil, leaves)

	assert.True(t, d("3.35").Equal(calc.DailySalary), "got %s", calc.DailySalary)
	assert.True(t, d("6.70").Equal(calc.LeaveDeduction))
	assert.True(t, d("93.65").Equal(calc.FinalSalary))
}

func TestCalculateUsesDaysOfTheMonth(t *testing.T) {
	emp := employee.Employee{BaseSalary: d("30000"), PFAmount: decimal.Zero}

	feb := Calculate(emp, period.Period{Month: 2, Year: 2024}, nil, nil, nil)
	assert.True(t, d("1034.48").Equal(feb.DailySalary), "got %s", feb.DailySalary)

	jun := Calculate(emp, period.Period{Month: 6, Year: 2024}, nil, nil, nil)
	assert.True(t, d("1000").Equal(jun.DailySalary))
}

func TestCalculateOrdersBreakdownByDateThenType(t *testing.T) {
	emp := employee.Employee{BaseSalary: d("30000"), PFAmount: decimal.Zero}
	p := period.Period{Month: 6, Year: 2024}

	calc := Calculate(emp, p,
		[]overtime.Overtime{{OvertimeDate: day(2024, 6, 10), Hours: d("1"), RatePerHour: d("100"), TotalAmount: d("100")}},
		[]advance.Advance{{AdvanceDate: day(2024, 6, 10), Amount: d("50"), Description: strPtr("Bus fare")}},
		[]leave.Leave{
			{LeaveDate: day(2024, 6, 10), LeaveType: leave.LeaveTypeUnpaid},
			{LeaveDate: day(2024, 6, 1), LeaveType: leave.LeaveTypeUnpaid},
		},
	)

	require.Len(t, calc.Details, 4)
	assert.Equal(t, day(2024, 6, 1), calc.Details[0].Date)
	assert.Equal(t, salary.DetailTypeLeave, calc.Details[0].Type)
	assert.Equal(t, salary.DetailTypeOvertime, calc.Details[1].Type)
	assert.Equal(t, salary.DetailTypeAdvance, calc.Details[2].Type)
	assert.Equal(t, "Bus fare", calc.Details[2].Description)
	assert.Equal(t, salary.DetailTypeLeave, calc.Details[3].Type)
}

func TestCalculateAllowsNegativeFinalSalary(t *testing.T) {
	emp := employee.Employee{BaseSalary: d("1000"), PFAmount: d("200")}
	p := period.Period{Month: 1, Year: 2025}

	calc := Calculate(emp, p, nil, []advance.Advance{{AdvanceDate: day(2025, 1, 5), Amount: d("5000")}}, nil)

	assert.True(t, d("-4200").Equal(calc.FinalSalary), "got %s", calc.FinalSalary)
}
