package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type AttendanceHandler interface {
	RecordAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendances(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordAttendance creates or replaces the record for the employee and date.
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		slog.Error("RecordAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance saved successfully", result)
}

// ListAttendances implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendances(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.ListAttendances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee serves /employee/{employeeId} and its /month/{month}/year/{year} variant.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	var (
		results []attendance.AttendanceResponse
		err     error
	)
	if chi.URLParam(r, "month") != "" {
		month, year, ok := monthYearParam(r)
		if !ok {
			response.BadRequest(w, "Month and year must be numbers", nil)
			return
		}
		results, err = h.attendanceService.ListByEmployeeAndMonth(r.Context(), employeeID, month, year)
	} else {
		results, err = h.attendanceService.ListByEmployee(r.Context(), employeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", attendance.ErrAttendanceNotFound)
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}
