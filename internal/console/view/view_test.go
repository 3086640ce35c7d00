package view

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/api"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *service.Services
	store *session.Store
	out   *bytes.Buffer
	calls *atomic.Int32
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := api.NewClient(srv.URL+"/api", time.Second, store)
	return &fixture{svc: service.New(client, store), store: store, out: &bytes.Buffer{}, calls: calls}
}

func (f *fixture) notifier() *Notifier { return NewNotifier(f.out) }

func TestGuard(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.ErrorIs(t, Guard(f.svc.Auth), ErrLoginRequired)

	require.NoError(t, f.store.Save("tok", "admin"))
	assert.NoError(t, Guard(f.svc.Auth))
}

func TestLoginSubmit(t *testing.T) {
	t.Run("missing fields never reach the API", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		route, errs := NewLogin(f.svc.Auth, f.notifier()).Submit(context.Background(), form.Login{Username: "  "})

		assert.Equal(t, RouteNone, route)
		assert.Equal(t, "Username is required", errs["username"])
		assert.Equal(t, "Password is required", errs["password"])
		assert.Zero(t, f.calls.Load())
	})

	t.Run("rejected credentials stay on login", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Invalid username or password"}`))
		})
		route, errs := NewLogin(f.svc.Auth, f.notifier()).Submit(context.Background(), form.Login{Username: "admin", Password: "bad"})

		assert.Equal(t, RouteLogin, route)
		assert.Nil(t, errs)
		assert.Contains(t, f.out.String(), "[error] Invalid username or password")
		assert.False(t, f.svc.Auth.IsAuthenticated())
	})

	t.Run("success routes to dashboard", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-1","username":"admin","expiresAt":1}}`))
		})
		route, _ := NewLogin(f.svc.Auth, f.notifier()).Submit(context.Background(), form.Login{Username: "admin", Password: "s3cret"})

		assert.Equal(t, RouteDashboard, route)
		assert.Contains(t, f.out.String(), "[success] Login successful!")
		assert.Equal(t, "tok-1", f.store.Token())
	})
}

func TestLayoutLogout(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"Logged out"}`))
	})
	require.NoError(t, f.store.Save("tok", "admin"))

	route, err := NewLayout(f.svc.Auth, f.notifier(), f.out).Logout(context.Background())
	require.NoError(t, err)

	assert.Equal(t, RouteLogin, route)
	assert.False(t, f.svc.Auth.IsAuthenticated())
	assert.Contains(t, f.out.String(), "[success] Logged out successfully")
	assert.Contains(t, f.out.String(), LoginPrompt)
}

func TestLayoutExpired(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	require.NoError(t, f.store.Save("stale", "admin"))

	route := NewLayout(f.svc.Auth, f.notifier(), f.out).Expired(context.Background())

	assert.Equal(t, RouteLogin, route)
	assert.False(t, f.svc.Auth.IsAuthenticated())
	assert.Contains(t, f.out.String(), "[warning] Session expired")
	assert.NotContains(t, f.out.String(), "[error]")
}

func TestLayoutExpired_ReportsClearFailure(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewStore(path)
	require.NoError(t, store.Save("stale", "admin"))

	// A non-empty directory at the session path cannot be removed.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.MkdirAll(filepath.Join(path, "locked"), 0o700))

	auth := service.New(api.NewClient("http://127.0.0.1:0/api", time.Second, store), store).Auth
	route := NewLayout(auth, f.notifier(), f.out).Expired(context.Background())

	assert.Equal(t, RouteLogin, route)
	assert.Contains(t, f.out.String(), "[error] Could not clear the saved session: failed to remove session file")
	assert.Contains(t, f.out.String(), LoginPrompt)
}

func TestEmployeeSubmit(t *testing.T) {
	t.Run("short mobile is rejected locally", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		v := NewEmployees(f.svc.Employees, f.notifier(), f.out)

		errs, err := v.Submit(context.Background(), form.Employee{
			Name: "Asha", Mobile: "98765", BaseSalary: "30000", PFAmount: "1800",
		}, "")
		require.NoError(t, err)

		assert.Equal(t, "Mobile number must be exactly 10 digits", errs["mobile"])
		assert.Zero(t, f.calls.Load())
	})

	t.Run("server field errors are mapped back", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"success":false,"message":"Mobile number already exists","data":{"mobile":"Mobile number already exists"}}`))
		})
		v := NewEmployees(f.svc.Employees, f.notifier(), f.out)

		errs, err := v.Submit(context.Background(), form.Employee{
			Name: "Asha", Mobile: "9876543210", BaseSalary: "30000", PFAmount: "0",
		}, "")
		require.Error(t, err)

		assert.Equal(t, "Mobile number already exists", errs["mobile"])
		assert.Contains(t, f.out.String(), "[error] Mobile number already exists")
	})

	t.Run("update uses PUT", func(t *testing.T) {
		var method, path string
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"emp-1","name":"Asha"}}`))
		})
		v := NewEmployees(f.svc.Employees, f.notifier(), f.out)

		errs, err := v.Submit(context.Background(), form.Employee{
			Name: "Asha", Mobile: "9876543210", BaseSalary: "32000", PFAmount: "1800",
		}, "emp-1")
		require.NoError(t, err)

		assert.Nil(t, errs)
		assert.Equal(t, http.MethodPut, method)
		assert.Equal(t, "/api/employees/emp-1", path)
		assert.Contains(t, f.out.String(), "[success] Employee updated successfully")
	})
}

func TestEmployeeListEmpty(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	require.NoError(t, NewEmployees(f.svc.Employees, f.notifier(), f.out).List(context.Background()))
	assert.Contains(t, f.out.String(), "No employees found")
}

func TestTransactionsShow(t *testing.T) {
	t.Run("no employee selected", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		v := NewTransactions(f.svc, f.notifier(), f.out)

		require.NoError(t, v.Show(context.Background(), TabAdvances, "", 0, 0))
		assert.Contains(t, f.out.String(), NoEmployeeSelected)
		assert.Zero(t, f.calls.Load())
	})

	t.Run("empty tab", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
		})
		v := NewTransactions(f.svc, f.notifier(), f.out)

		require.NoError(t, v.Show(context.Background(), TabAdvances, "emp-1", 0, 0))
		assert.Contains(t, f.out.String(), "No advances found")
	})

	t.Run("month filter and rows", func(t *testing.T) {
		var path string
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"fe-1","employeeId":"emp-1","expenseDate":"2024-06-03","amount":"120.5"}]}`))
		})
		v := NewTransactions(f.svc, f.notifier(), f.out)

		require.NoError(t, v.Show(context.Background(), TabFoodExpenses, "emp-1", 6, 2024))
		assert.Equal(t, "/api/food-expenses/employee/emp-1/month/6/year/2024", path)
		assert.Contains(t, f.out.String(), "fe-1")
		assert.Contains(t, f.out.String(), "120.50")
	})
}

func TestTransactionsAdd(t *testing.T) {
	t.Run("requires an employee", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		v := NewTransactions(f.svc, f.notifier(), f.out)

		_, err := v.AddAdvance(context.Background(), "", form.Advance{Amount: "500", AdvanceDate: "2024-06-01"})
		assert.ErrorIs(t, err, ErrNoEmployee)
		assert.Contains(t, f.out.String(), "[warning] Please select an employee first")
		assert.Zero(t, f.calls.Load())
	})

	t.Run("overtime shows the computed total", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"ot-1"}}`))
		})
		v := NewTransactions(f.svc, f.notifier(), f.out)

		errs, err := v.AddOvertime(context.Background(), "emp-1", form.Overtime{
			Hours: "2.5", RatePerHour: "150.333", OvertimeDate: "2024-06-10",
		})
		require.NoError(t, err)

		assert.Nil(t, errs)
		assert.Contains(t, f.out.String(), "Total amount: 375.83")
		assert.Contains(t, f.out.String(), "[success] Overtime recorded successfully")
	})

	t.Run("invalid leave type", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		v := NewTransactions(f.svc, f.notifier(), f.out)

		errs, err := v.AddLeave(context.Background(), "emp-1", form.Leave{LeaveDate: "2024-06-10", LeaveType: "SICK"})
		require.NoError(t, err)

		assert.Equal(t, "Leave type must be PAID or UNPAID", errs["leaveType"])
		assert.Zero(t, f.calls.Load())
	})
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("food-expenses")
	require.NoError(t, err)
	assert.Equal(t, "food expenses", tab.Label())

	_, err = ParseTab("bonuses")
	assert.Error(t, err)
}

const previewJSON = `{"success":true,"data":{
	"employeeId":"emp-1","employeeName":"Asha","employeeMobile":"9876543210",
	"month":6,"year":2024,
	"baseSalary":"30000","totalOvertime":"375.83","totalAdvances":"500",
	"pfDeduction":"1800","unpaidLeaveDays":1,"leaveDeduction":"1000","finalSalary":"27075.83",
	"dateWiseBreakdown":[
		{"date":"2024-06-05","type":"ADVANCE","amount":"500","description":"Advance"},
		{"date":"2024-06-10","type":"OVERTIME","amount":"375.83","description":"Overtime 2.5h"}
	]}}`

func TestSalaryPreview(t *testing.T) {
	t.Run("renders the server figures", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/salaries/preview", r.URL.Path)
			_, _ = w.Write([]byte(previewJSON))
		})
		v := NewSalaries(f.svc.Salaries, f.notifier(), f.out)

		errs, err := v.Preview(context.Background(), form.SalaryPeriod{EmployeeID: "emp-1", Month: 6, Year: 2024})
		require.NoError(t, err)
		assert.Nil(t, errs)

		out := f.out.String()
		assert.Contains(t, out, "Asha (9876543210) - Jun 2024")
		assert.Contains(t, out, "Overtime 2.5h")
		assert.Contains(t, out, "Leave Deduction (1 unpaid days)")
		assert.Regexp(t, `Final Salary\s+27075\.83`, out)
	})

	t.Run("invalid period never reaches the API", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		v := NewSalaries(f.svc.Salaries, f.notifier(), f.out)

		errs, err := v.Preview(context.Background(), form.SalaryPeriod{Month: 13, Year: 2024})
		require.NoError(t, err)

		assert.Equal(t, "Please select an employee", errs["employeeId"])
		assert.Equal(t, "Month must be between 1 and 12", errs["month"])
		assert.Zero(t, f.calls.Load())
	})
}

func TestSalaryGenerate(t *testing.T) {
	t.Run("warns when SMS was not sent", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"sal-1","month":6,"year":2024,"baseSalary":"30000","finalSalary":"27075.83","smsSent":false}}`))
		})
		v := NewSalaries(f.svc.Salaries, f.notifier(), f.out)

		_, err := v.Generate(context.Background(), form.SalaryPeriod{EmployeeID: "emp-1", Month: 6, Year: 2024})
		require.NoError(t, err)

		out := f.out.String()
		assert.Contains(t, out, "[success] Salary generated successfully!")
		assert.Contains(t, out, "[warning] Salary SMS was not delivered")
		assert.Contains(t, out, "27075.83")
	})

	t.Run("duplicate period", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"success":false,"message":"Salary already generated for this period"}`))
		})
		v := NewSalaries(f.svc.Salaries, f.notifier(), f.out)

		_, err := v.Generate(context.Background(), form.SalaryPeriod{EmployeeID: "emp-1", Month: 6, Year: 2024})
		require.Error(t, err)
		assert.Contains(t, f.out.String(), "[error] Salary already generated for this period")
	})
}

func TestSalarySendSMSFailure(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"success":false}`))
	})
	v := NewSalaries(f.svc.Salaries, f.notifier(), f.out)

	require.Error(t, v.SendSMS(context.Background(), "sal-1"))
	assert.Contains(t, f.out.String(), "[error] Failed to send SMS")
}

func TestSalaryExport(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "month=6&year=2024", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="salary-register-2024-06.xlsx"`)
		_, _ = w.Write([]byte("xlsx-bytes"))
	})
	v := NewSalaries(f.svc.Salaries, f.notifier(), f.out)
	dir := t.TempDir()

	path, err := v.Export(context.Background(), 6, 2024, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "salary-register-2024-06.xlsx"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(data))
}
