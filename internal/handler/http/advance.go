package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type AdvanceHandler interface {
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	DeleteAdvance(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

// CreateAdvance implements AdvanceHandler
func (h *advanceHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.advanceService.CreateAdvance(r.Context(), req)
	if err != nil {
		slog.Error("CreateAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance saved successfully", result)
}

// ListAdvances implements AdvanceHandler
func (h *advanceHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	results, err := h.advanceService.ListAdvances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee serves /employee/{employeeId} and its /month/{month}/year/{year} variant.
func (h *advanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	var (
		results []advance.AdvanceResponse
		err     error
	)
	if chi.URLParam(r, "month") != "" {
		month, year, ok := monthYearParam(r)
		if !ok {
			response.BadRequest(w, "Month and year must be numbers", nil)
			return
		}
		results, err = h.advanceService.ListByEmployeeAndMonth(r.Context(), employeeID, month, year)
	} else {
		results, err = h.advanceService.ListByEmployee(r.Context(), employeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteAdvance implements AdvanceHandler
func (h *advanceHandlerImpl) DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", advance.ErrAdvanceNotFound)
	if !ok {
		return
	}

	if err := h.advanceService.DeleteAdvance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance deleted successfully", nil)
}
