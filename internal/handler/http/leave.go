package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// CreateLeave implements LeaveHandler
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave saved successfully", result)
}

// ListLeaves implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.ListLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee serves /employee/{employeeId} and its /month/{month}/year/{year} variant.
func (h *leaveHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	var (
		results []leave.LeaveResponse
		err     error
	)
	if chi.URLParam(r, "month") != "" {
		month, year, ok := monthYearParam(r)
		if !ok {
			response.BadRequest(w, "Month and year must be numbers", nil)
			return
		}
		results, err = h.leaveService.ListByEmployeeAndMonth(r.Context(), employeeID, month, year)
	} else {
		results, err = h.leaveService.ListByEmployee(r.Context(), employeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteLeave implements LeaveHandler
func (h *leaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", leave.ErrLeaveNotFound)
	if !ok {
		return
	}

	if err := h.leaveService.DeleteLeave(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave deleted successfully", nil)
}
