package leave

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
	salaryService "github.com/cmlabs-hris/salary-admin-go/internal/service/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	activeEmployeeID   = "0190a8c2-4d3e-7a11-8b2c-1f0e9d8c7b6a"
	inactiveEmployeeID = "0190a8c2-4d3e-7a11-8b2c-1f0e9d8c7b6b"
	missingEmployeeID  = "0190a8c2-4d3e-7a11-8b2c-1f0e9d8c7b6c"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (s stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type memLeaveRepo struct {
	leave.LeaveRepository
	rows []leave.Leave
}

func (m *memLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = l.EmployeeID + "|" + period.FormatDate(l.LeaveDate)
	m.rows = append(m.rows, l)
	return l, nil
}

func (m *memLeaveRepo) ListUnpaidByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range m.rows {
		if l.EmployeeID == employeeID && l.LeaveType == leave.LeaveTypeUnpaid &&
			!l.LeaveDate.Before(from) && !l.LeaveDate.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

var asha = employee.Employee{
	ID:         activeEmployeeID,
	Name:       "Asha",
	BaseSalary: decimal.NewFromInt(30000),
	PFAmount:   decimal.NewFromInt(1800),
	Active:     true,
}

func newTestService() (leave.LeaveService, *memLeaveRepo) {
	repo := &memLeaveRepo{}
	employees := stubEmployeeRepo{employees: map[string]employee.Employee{
		activeEmployeeID:   asha,
		inactiveEmployeeID: {ID: inactiveEmployeeID, Name: "Ravi", Active: false},
	}}
	return NewLeaveService(repo, employees), repo
}

func TestCreateLeave(t *testing.T) {
	tests := []struct {
		name      string
		req       leave.CreateLeaveRequest
		wantErr   error
		wantField string
		wantMsg   string
	}{
		{
			name: "unpaid leave",
			req:  leave.CreateLeaveRequest{EmployeeID: activeEmployeeID, LeaveDate: "2024-06-10", LeaveType: "UNPAID"},
		},
		{
			name:      "unknown leave type",
			req:       leave.CreateLeaveRequest{EmployeeID: activeEmployeeID, LeaveDate: "2024-06-10", LeaveType: "SICK"},
			wantField: "leaveType",
			wantMsg:   "Leave type must be PAID or UNPAID",
		},
		{
			name:      "lowercase leave type",
			req:       leave.CreateLeaveRequest{EmployeeID: activeEmployeeID, LeaveDate: "2024-06-10", LeaveType: "paid"},
			wantField: "leaveType",
			wantMsg:   "Leave type must be PAID or UNPAID",
		},
		{
			name:    "inactive employee",
			req:     leave.CreateLeaveRequest{EmployeeID: inactiveEmployeeID, LeaveDate: "2024-06-10", LeaveType: "PAID"},
			wantErr: employee.ErrEmployeeInactive,
		},
		{
			name:    "missing employee",
			req:     leave.CreateLeaveRequest{EmployeeID: missingEmployeeID, LeaveDate: "2024-06-10", LeaveType: "PAID"},
			wantErr: employee.ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			resp, err := svc.CreateLeave(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.rows)
			case tt.wantField != "":
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Equal(t, tt.wantMsg, verrs.ToMap()[tt.wantField])
				assert.Empty(t, repo.rows)
			default:
				require.NoError(t, err)
				assert.Equal(t, leave.LeaveTypeUnpaid, resp.LeaveType)
				assert.Equal(t, "Asha", resp.EmployeeName)
			}
		})
	}
}

func TestUnpaidLeaveFeedsSalaryDeduction(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, req := range []leave.CreateLeaveRequest{
		{EmployeeID: activeEmployeeID, LeaveDate: "2024-06-10", LeaveType: "UNPAID"},
		{EmployeeID: activeEmployeeID, LeaveDate: "2024-06-11", LeaveType: "PAID"},
		{EmployeeID: activeEmployeeID, LeaveDate: "2024-07-01", LeaveType: "UNPAID"},
	} {
		_, err := svc.CreateLeave(ctx, req)
		require.NoError(t, err)
	}

	june := period.Period{Month: 6, Year: 2024}
	unpaid, err := repo.ListUnpaidByEmployeeBetween(ctx, activeEmployeeID, june.Start(), june.End())
	require.NoError(t, err)
	require.Len(t, unpaid, 1)

	calc := salaryService.Calculate(asha, june, nil, nil, unpaid)

	// 30000 / 30 days = 1000.00 per day
	assert.Equal(t, 1, calc.UnpaidLeaveDays)
	assert.Equal(t, "1000.00", calc.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "27200.00", calc.FinalSalary.StringFixed(2))
}
