package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type OvertimeHandler interface {
	CreateOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertimes(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	DeleteOvertime(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

// CreateOvertime implements OvertimeHandler
func (h *overtimeHandlerImpl) CreateOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.CreateOvertime(r.Context(), req)
	if err != nil {
		slog.Error("CreateOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime saved successfully", result)
}

// ListOvertimes implements OvertimeHandler
func (h *overtimeHandlerImpl) ListOvertimes(w http.ResponseWriter, r *http.Request) {
	results, err := h.overtimeService.ListOvertimes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee serves /employee/{employeeId} and its /month/{month}/year/{year} variant.
func (h *overtimeHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	var (
		results []overtime.OvertimeResponse
		err     error
	)
	if chi.URLParam(r, "month") != "" {
		month, year, ok := monthYearParam(r)
		if !ok {
			response.BadRequest(w, "Month and year must be numbers", nil)
			return
		}
		results, err = h.overtimeService.ListByEmployeeAndMonth(r.Context(), employeeID, month, year)
	} else {
		results, err = h.overtimeService.ListByEmployee(r.Context(), employeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteOvertime implements OvertimeHandler
func (h *overtimeHandlerImpl) DeleteOvertime(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", overtime.ErrOvertimeNotFound)
	if !ok {
		return
	}

	if err := h.overtimeService.DeleteOvertime(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime deleted successfully", nil)
}
