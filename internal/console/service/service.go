// Package service maps console actions onto the REST endpoints.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/api"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/session"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/foodexpense"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
)

// Services bundles one wrapper per REST resource.
type Services struct {
	Auth         *Auth
	Dashboard    *Dashboard
	Employees    *Employees
	Advances     *Ledger[advance.CreateAdvanceRequest, advance.AdvanceResponse]
	Leaves       *Ledger[leave.CreateLeaveRequest, leave.LeaveResponse]
	Overtimes    *Ledger[overtime.CreateOvertimeRequest, overtime.OvertimeResponse]
	Attendances  *Ledger[attendance.UpsertAttendanceRequest, attendance.AttendanceResponse]
	FoodExpenses *Ledger[foodexpense.UpsertFoodExpenseRequest, foodexpense.FoodExpenseResponse]
	Salaries     *Salaries
}

func New(client *api.Client, store *session.Store) *Services {
	return &Services{
		Auth:         &Auth{client: client, store: store},
		Dashboard:    &Dashboard{client: client},
		Employees:    &Employees{client: client},
		Advances:     NewLedger[advance.CreateAdvanceRequest, advance.AdvanceResponse](client, "/advances"),
		Leaves:       NewLedger[leave.CreateLeaveRequest, leave.LeaveResponse](client, "/leaves"),
		Overtimes:    NewLedger[overtime.CreateOvertimeRequest, overtime.OvertimeResponse](client, "/overtimes"),
		Attendances:  NewLedger[attendance.UpsertAttendanceRequest, attendance.AttendanceResponse](client, "/attendances"),
		FoodExpenses: NewLedger[foodexpense.UpsertFoodExpenseRequest, foodexpense.FoodExpenseResponse](client, "/food-expenses"),
		Salaries:     &Salaries{client: client},
	}
}

type Auth struct {
	client *api.Client
	store  *session.Store
}

// Login stores the issued token so later invocations are authenticated.
func (a *Auth) Login(ctx context.Context, username, password string) (auth.LoginResponse, error) {
	var resp auth.LoginResponse
	err := a.client.Post(ctx, "/auth/login", auth.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if err := a.store.Save(resp.Token, resp.Username); err != nil {
		return auth.LoginResponse{}, err
	}
	return resp, nil
}

// Logout revokes the token server-side when possible and always clears the local session.
func (a *Auth) Logout(ctx context.Context) error {
	if a.store.IsAuthenticated() {
		if err := a.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
			slog.Debug("Server logout failed", "error", err)
		}
	}
	return a.store.Clear()
}

func (a *Auth) IsAuthenticated() bool {
	return a.store.IsAuthenticated()
}

func (a *Auth) Username() string {
	return a.store.Username()
}

type Dashboard struct {
	client *api.Client
}

func (d *Dashboard) Get(ctx context.Context) (dashboard.DashboardResponse, error) {
	var resp dashboard.DashboardResponse
	err := d.client.Get(ctx, "/dashboard", &resp)
	return resp, err
}

type Employees struct {
	client *api.Client
}

func (e *Employees) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var resp []employee.EmployeeResponse
	err := e.client.Get(ctx, "/employees", &resp)
	return resp, err
}

func (e *Employees) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	var resp employee.EmployeeResponse
	err := e.client.Get(ctx, "/employees/"+url.PathEscape(id), &resp)
	return resp, err
}

func (e *Employees) Create(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	var resp employee.EmployeeResponse
	err := e.client.Post(ctx, "/employees", req, &resp)
	return resp, err
}

func (e *Employees) Update(ctx context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	var resp employee.EmployeeResponse
	err := e.client.Put(ctx, "/employees/"+url.PathEscape(id), req, &resp)
	return resp, err
}

func (e *Employees) Deactivate(ctx context.Context, id string) error {
	return e.client.Delete(ctx, "/employees/"+url.PathEscape(id), nil)
}

// Ledger wraps the per-employee transaction resources, which share one route layout.
type Ledger[Req, Resp any] struct {
	client *api.Client
	base   string
}

func NewLedger[Req, Resp any](client *api.Client, base string) *Ledger[Req, Resp] {
	return &Ledger[Req, Resp]{client: client, base: base}
}

// Create posts a new entry; attendance and food expense replace the entry for the same day.
func (l *Ledger[Req, Resp]) Create(ctx context.Context, req Req) (Resp, error) {
	var resp Resp
	err := l.client.Post(ctx, l.base, req, &resp)
	return resp, err
}

func (l *Ledger[Req, Resp]) List(ctx context.Context) ([]Resp, error) {
	var resp []Resp
	err := l.client.Get(ctx, l.base, &resp)
	return resp, err
}

func (l *Ledger[Req, Resp]) ListByEmployee(ctx context.Context, employeeID string) ([]Resp, error) {
	var resp []Resp
	err := l.client.Get(ctx, l.base+"/employee/"+url.PathEscape(employeeID), &resp)
	return resp, err
}

func (l *Ledger[Req, Resp]) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]Resp, error) {
	var resp []Resp
	path := fmt.Sprintf("%s/employee/%s/month/%d/year/%d", l.base, url.PathEscape(employeeID), month, year)
	err := l.client.Get(ctx, path, &resp)
	return resp, err
}

func (l *Ledger[Req, Resp]) Delete(ctx context.Context, id string) error {
	return l.client.Delete(ctx, l.base+"/"+url.PathEscape(id), nil)
}

type Salaries struct {
	client *api.Client
}

func (s *Salaries) Preview(ctx context.Context, employeeID string, month, year int) (salary.SalaryPreviewResponse, error) {
	var resp salary.SalaryPreviewResponse
	err := s.client.Post(ctx, "/salaries/preview", salary.SalaryPeriodRequest{EmployeeID: employeeID, Month: month, Year: year}, &resp)
	return resp, err
}

func (s *Salaries) Generate(ctx context.Context, employeeID string, month, year int) (salary.SalaryResponse, error) {
	var resp salary.SalaryResponse
	err := s.client.Post(ctx, "/salaries/generate", salary.SalaryPeriodRequest{EmployeeID: employeeID, Month: month, Year: year}, &resp)
	return resp, err
}

func (s *Salaries) History(ctx context.Context, employeeID string) ([]salary.SalaryResponse, error) {
	var resp []salary.SalaryResponse
	err := s.client.Get(ctx, "/salaries/employee/"+url.PathEscape(employeeID), &resp)
	return resp, err
}

func (s *Salaries) SendSMS(ctx context.Context, salaryID string) (salary.SalaryResponse, error) {
	var resp salary.SalaryResponse
	err := s.client.Post(ctx, "/salaries/"+url.PathEscape(salaryID)+"/send-sms", nil, &resp)
	return resp, err
}

// Export returns the xlsx register and the server-suggested filename.
func (s *Salaries) Export(ctx context.Context, month, year int) ([]byte, string, error) {
	return s.client.GetRaw(ctx, fmt.Sprintf("/salaries/export?month=%d&year=%d", month, year))
}
