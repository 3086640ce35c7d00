package form

import (
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/foodexpense"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (f *Login) Validate() Errors {
	trim(&f.Username)
	return check(f, map[string]string{
		"username": "Username is required",
		"password": "Password is required",
	})
}

// Employee holds the raw inputs of the create/edit employee form.
type Employee struct {
	Name       string `json:"name" validate:"required"`
	Mobile     string `json:"mobile" validate:"required,mobile"`
	BaseSalary string `json:"baseSalary" validate:"required,amount_gt0"`
	PFAmount   string `json:"pfAmount" validate:"required,amount_gte0"`
}

var EmployeeFieldOrder = []string{"name", "mobile", "baseSalary", "pfAmount"}

func (f *Employee) Validate() Errors {
	trim(&f.Name, &f.Mobile, &f.BaseSalary, &f.PFAmount)
	return check(f, map[string]string{
		"name.required":       "Name is required",
		"mobile.required":     "Mobile number is required",
		"mobile.mobile":       "Mobile number must be exactly 10 digits",
		"baseSalary.required": "Base salary is required",
		"baseSalary":          "Base salary must be a valid positive number",
		"pfAmount.required":   "PF amount is required",
		"pfAmount":            "PF amount must be a valid number (0 or greater)",
	})
}

// Request converts a validated form.
func (f *Employee) Request() employee.EmployeeRequest {
	return employee.EmployeeRequest{
		Name:       f.Name,
		Mobile:     f.Mobile,
		BaseSalary: mustDecimal(f.BaseSalary),
		PFAmount:   mustDecimal(f.PFAmount),
	}
}

type Advance struct {
	Amount      string `json:"amount" validate:"required,amount_gt0"`
	AdvanceDate string `json:"advanceDate" validate:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

func (f *Advance) Validate() Errors {
	trim(&f.Amount, &f.AdvanceDate, &f.Description)
	return check(f, map[string]string{
		"amount.required":      "Amount is required",
		"amount":               "Amount must be positive",
		"advanceDate.required": "Date is required",
		"advanceDate":          "Date must be in YYYY-MM-DD format",
	})
}

func (f *Advance) Request(employeeID string) advance.CreateAdvanceRequest {
	return advance.CreateAdvanceRequest{
		EmployeeID:  employeeID,
		Amount:      mustDecimal(f.Amount),
		AdvanceDate: f.AdvanceDate,
		Description: optional(f.Description),
	}
}

type Leave struct {
	LeaveDate   string `json:"leaveDate" validate:"required,datetime=2006-01-02"`
	LeaveType   string `json:"leaveType" validate:"required,oneof=PAID UNPAID"`
	Description string `json:"description"`
}

func (f *Leave) Validate() Errors {
	trim(&f.LeaveDate, &f.LeaveType, &f.Description)
	return check(f, map[string]string{
		"leaveDate.required": "Date is required",
		"leaveDate":          "Date must be in YYYY-MM-DD format",
		"leaveType.required": "Leave type is required",
		"leaveType":          "Leave type must be PAID or UNPAID",
	})
}

func (f *Leave) Request(employeeID string) leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID:  employeeID,
		LeaveDate:   f.LeaveDate,
		LeaveType:   f.LeaveType,
		Description: optional(f.Description),
	}
}

type Overtime struct {
	Hours        string `json:"hours" validate:"required,amount_gt0"`
	RatePerHour  string `json:"ratePerHour" validate:"required,amount_gt0"`
	OvertimeDate string `json:"overtimeDate" validate:"required,datetime=2006-01-02"`
}

func (f *Overtime) Validate() Errors {
	trim(&f.Hours, &f.RatePerHour, &f.OvertimeDate)
	return check(f, map[string]string{
		"hours.required":        "Hours is required",
		"hours":                 "Hours must be positive",
		"ratePerHour.required":  "Rate per hour is required",
		"ratePerHour":           "Rate must be positive",
		"overtimeDate.required": "Date is required",
		"overtimeDate":          "Date must be in YYYY-MM-DD format",
	})
}

// Total previews hours × rate; ok is false until both inputs parse.
func (f *Overtime) Total() (total decimal.Decimal, ok bool) {
	hours, rate := mustDecimal(f.Hours), mustDecimal(f.RatePerHour)
	if hours == nil || rate == nil {
		return decimal.Zero, false
	}
	return overtime.TotalFor(*hours, *rate), true
}

func (f *Overtime) Request(employeeID string) overtime.CreateOvertimeRequest {
	return overtime.CreateOvertimeRequest{
		EmployeeID:   employeeID,
		OvertimeDate: f.OvertimeDate,
		Hours:        mustDecimal(f.Hours),
		RatePerHour:  mustDecimal(f.RatePerHour),
	}
}

type Attendance struct {
	AttendanceDate string `json:"attendanceDate" validate:"required,datetime=2006-01-02"`
	Status         string `json:"status" validate:"required,oneof=PRESENT ABSENT HALF_DAY"`
	Notes          string `json:"notes"`
}

func (f *Attendance) Validate() Errors {
	trim(&f.AttendanceDate, &f.Status, &f.Notes)
	return check(f, map[string]string{
		"attendanceDate.required": "Date is required",
		"attendanceDate":          "Date must be in YYYY-MM-DD format",
		"status.required":         "Status is required",
		"status":                  "Status must be PRESENT, ABSENT or HALF_DAY",
	})
}

func (f *Attendance) Request(employeeID string) attendance.UpsertAttendanceRequest {
	return attendance.UpsertAttendanceRequest{
		EmployeeID:     employeeID,
		AttendanceDate: f.AttendanceDate,
		Status:         f.Status,
		Notes:          optional(f.Notes),
	}
}

type FoodExpense struct {
	ExpenseDate string `json:"expenseDate" validate:"required,datetime=2006-01-02"`
	Amount      string `json:"amount" validate:"required,amount_gt0"`
	Description string `json:"description"`
}

func (f *FoodExpense) Validate() Errors {
	trim(&f.ExpenseDate, &f.Amount, &f.Description)
	return check(f, map[string]string{
		"expenseDate.required": "Date is required",
		"expenseDate":          "Date must be in YYYY-MM-DD format",
		"amount.required":      "Amount is required",
		"amount":               "Amount must be positive",
	})
}

func (f *FoodExpense) Request(employeeID string) foodexpense.UpsertFoodExpenseRequest {
	return foodexpense.UpsertFoodExpenseRequest{
		EmployeeID:  employeeID,
		ExpenseDate: f.ExpenseDate,
		Amount:      mustDecimal(f.Amount),
		Description: optional(f.Description),
	}
}

type SalaryPeriod struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Month      int    `json:"month" validate:"min=1,max=12"`
	Year       int    `json:"year" validate:"min=2000"`
}

func (f *SalaryPeriod) Validate() Errors {
	trim(&f.EmployeeID)
	return check(f, map[string]string{
		"employeeId": "Please select an employee",
		"month":      "Month must be between 1 and 12",
		"year":       "Year must be 2000 or later",
	})
}

func (f *SalaryPeriod) Request() salary.SalaryPeriodRequest {
	return salary.SalaryPeriodRequest{EmployeeID: f.EmployeeID, Month: f.Month, Year: f.Year}
}
