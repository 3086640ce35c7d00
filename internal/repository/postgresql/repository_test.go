package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEmployee(t *testing.T, repo employee.EmployeeRepository, mobile string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		Name:       "Ravi Kumar",
		Mobile:     mobile,
		BaseSalary: decimal.NewFromInt(30000),
		PFAmount:   decimal.NewFromInt(1800),
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	t.Run("create and fetch", func(t *testing.T) {
		emp := createEmployee(t, repo, "9876543210")
		assert.NotEmpty(t, emp.ID)
		assert.True(t, emp.Active)

		got, err := repo.GetByID(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, "9876543210", got.Mobile)
		assert.True(t, decimal.NewFromInt(30000).Equal(got.BaseSalary))
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		_, err := repo.Create(ctx, employee.Employee{
			Name:       "Someone Else",
			Mobile:     "9876543210",
			BaseSalary: decimal.NewFromInt(1000),
		})
		assert.ErrorIs(t, err, employee.ErrMobileExists)
	})

	t.Run("exists by mobile honours exclusion", func(t *testing.T) {
		emp := createEmployee(t, repo, "9000000001")

		exists, err := repo.ExistsByMobile(ctx, "9000000001", nil)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByMobile(ctx, "9000000001", &emp.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("deactivate hides from active list", func(t *testing.T) {
		emp := createEmployee(t, repo, "9000000002")
		require.NoError(t, repo.Deactivate(ctx, emp.ID))

		list, err := repo.ListActive(ctx)
		require.NoError(t, err)
		for _, e := range list {
			assert.NotEqual(t, emp.ID, e.ID)
		}
	})

	t.Run("missing employee", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "0190a3f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestLeaveRepositoryFiltersUnpaidByPeriod(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	emp := createEmployee(t, postgresql.NewEmployeeRepository(db), "9111111111")
	repo := postgresql.NewLeaveRepository(db)

	for _, l := range []leave.Leave{
		{EmployeeID: emp.ID, LeaveDate: date(2024, 3, 4), LeaveType: leave.LeaveTypeUnpaid},
		{EmployeeID: emp.ID, LeaveDate: date(2024, 3, 5), LeaveType: leave.LeaveTypePaid},
		{EmployeeID: emp.ID, LeaveDate: date(2024, 4, 1), LeaveType: leave.LeaveTypeUnpaid},
	} {
		_, err := repo.Create(ctx, l)
		require.NoError(t, err)
	}

	unpaid, err := repo.ListUnpaidByEmployeeBetween(ctx, emp.ID, date(2024, 3, 1), date(2024, 3, 31))
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, "Ravi Kumar", unpaid[0].EmployeeName)

	require.NoError(t, repo.SoftDelete(ctx, unpaid[0].ID))
	assert.ErrorIs(t, repo.SoftDelete(ctx, unpaid[0].ID), leave.ErrLeaveNotFound)
}

func TestAttendanceRepositoryUpsertKeepsOneRowPerDay(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	emp := createEmployee(t, postgresql.NewEmployeeRepository(db), "9222222222")
	repo := postgresql.NewAttendanceRepository(db)

	first, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: emp.ID, AttendanceDate: date(2024, 3, 4), Status: attendance.StatusPresent})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: emp.ID, AttendanceDate: date(2024, 3, 4), Status: attendance.StatusHalfDay})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err := repo.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, attendance.StatusHalfDay, list[0].Status)
}

func TestSalaryRepository(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	emp := createEmployee(t, postgresql.NewEmployeeRepository(db), "9333333333")
	repo := postgresql.NewSalaryRepository(db)
	tx := postgresql.NewTransactor(db)

	s := salary.Salary{
		EmployeeID:    emp.ID,
		Month:         3,
		Year:          2024,
		BaseSalary:    decimal.NewFromInt(31000),
		TotalOvertime: decimal.NewFromInt(500),
		TotalAdvances: decimal.NewFromInt(2000),
		TotalLeaves:   decimal.NewFromInt(1000),
		PFDeduction:   decimal.NewFromInt(1800),
		FinalSalary:   decimal.NewFromInt(26700),
		Details: []salary.SalaryDetail{
			{Date: date(2024, 3, 2), Type: salary.DetailTypeOvertime, Amount: decimal.NewFromInt(500), Description: "2 hrs @ 250/hr"},
			{Date: date(2024, 3, 9), Type: salary.DetailTypeAdvance, Amount: decimal.NewFromInt(-2000), Description: "Advance"},
		},
	}

	var created salary.Salary
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = repo.Create(ctx, s)
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.Mobile, got.EmployeeMobile)
	require.Len(t, got.Details, 2)
	assert.Equal(t, salary.DetailTypeOvertime, got.Details[0].Type)
	assert.True(t, decimal.NewFromInt(-2000).Equal(got.Details[1].Amount))

	exists, err := repo.ExistsForPeriod(ctx, emp.ID, 3, 2024)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Create(ctx, s)
	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyExists)

	pending, err := repo.ListPendingSMS(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, repo.MarkSMSSent(ctx, created.ID, time.Now()))
	pending, err = repo.ListPendingSMS(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
