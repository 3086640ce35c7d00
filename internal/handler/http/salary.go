package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/goccy/go-json"
)

type SalaryHandler interface {
	PreviewSalary(w http.ResponseWriter, r *http.Request)
	GenerateSalary(w http.ResponseWriter, r *http.Request)
	GetSalaryHistory(w http.ResponseWriter, r *http.Request)
	SendSalarySMS(w http.ResponseWriter, r *http.Request)
	ExportSalaryRegister(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// PreviewSalary handles POST /salaries/preview; nothing is persisted.
func (h *salaryHandlerImpl) PreviewSalary(w http.ResponseWriter, r *http.Request) {
	var req salary.SalaryPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PreviewSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.PreviewSalary(r.Context(), req)
	if err != nil {
		slog.Error("PreviewSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateSalary handles POST /salaries/generate
func (h *salaryHandlerImpl) GenerateSalary(w http.ResponseWriter, r *http.Request) {
	var req salary.SalaryPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GenerateSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.GenerateSalary(r.Context(), req)
	if err != nil {
		slog.Error("GenerateSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	message := "Salary generated successfully"
	if !result.SMSSent {
		message = "Salary generated successfully, SMS not sent"
	}
	response.Created(w, message, result)
}

// GetSalaryHistory handles GET /salaries/employee/{employeeId}
func (h *salaryHandlerImpl) GetSalaryHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	results, err := h.salaryService.GetSalaryHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SendSalarySMS handles POST /salaries/{id}/send-sms
func (h *salaryHandlerImpl) SendSalarySMS(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", salary.ErrSalaryNotFound)
	if !ok {
		return
	}

	result, err := h.salaryService.SendSalarySMS(r.Context(), id)
	if err != nil {
		slog.Error("SendSalarySMS service error", "salary_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "SMS sent successfully", result)
}

// ExportSalaryRegister handles GET /salaries/export?month=&year=
func (h *salaryHandlerImpl) ExportSalaryRegister(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParam(r)
	if !ok {
		response.BadRequest(w, "Month and year must be numbers", nil)
		return
	}

	file, err := h.salaryService.ExportSalaryRegister(r.Context(), month, year)
	if err != nil {
		slog.Error("ExportSalaryRegister service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}
