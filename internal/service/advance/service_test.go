package advance

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
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

type recordingAdvanceRepo struct {
	advance.AdvanceRepository
	created []advance.Advance
}

func (r *recordingAdvanceRepo) Create(_ context.Context, a advance.Advance) (advance.Advance, error) {
	a.ID = "adv-1"
	r.created = append(r.created, a)
	return a, nil
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateAdvance(t *testing.T) {
	tests := []struct {
		name      string
		req       advance.CreateAdvanceRequest
		wantErr   error
		wantField string
	}{
		{
			name: "active employee",
			req:  advance.CreateAdvanceRequest{EmployeeID: activeEmployeeID, Amount: amount("1500"), AdvanceDate: "2024-06-05"},
		},
		{
			name:    "inactive employee",
			req:     advance.CreateAdvanceRequest{EmployeeID: inactiveEmployeeID, Amount: amount("1500"), AdvanceDate: "2024-06-05"},
			wantErr: employee.ErrEmployeeInactive,
		},
		{
			name:    "missing employee",
			req:     advance.CreateAdvanceRequest{EmployeeID: missingEmployeeID, Amount: amount("1500"), AdvanceDate: "2024-06-05"},
			wantErr: employee.ErrEmployeeNotFound,
		},
		{
			name:      "malformed employee id",
			req:       advance.CreateAdvanceRequest{EmployeeID: "emp-1", Amount: amount("1500"), AdvanceDate: "2024-06-05"},
			wantField: "employeeId",
		},
		{
			name:      "zero amount",
			req:       advance.CreateAdvanceRequest{EmployeeID: activeEmployeeID, Amount: amount("0"), AdvanceDate: "2024-06-05"},
			wantField: "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingAdvanceRepo{}
			svc := NewAdvanceService(repo, stubEmployeeRepo{employees: map[string]employee.Employee{
				activeEmployeeID:   {ID: activeEmployeeID, Name: "Asha", Active: true},
				inactiveEmployeeID: {ID: inactiveEmployeeID, Name: "Ravi", Active: false},
			}})

			resp, err := svc.CreateAdvance(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.created)
			case tt.wantField != "":
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Contains(t, verrs.ToMap(), tt.wantField)
				assert.Empty(t, repo.created)
			default:
				require.NoError(t, err)
				require.Len(t, repo.created, 1)
				assert.Equal(t, "Asha", resp.EmployeeName)
				assert.Equal(t, "1500.00", resp.Amount.StringFixed(2))
				assert.Equal(t, "2024-06-05", resp.AdvanceDate)
			}
		})
	}
}
