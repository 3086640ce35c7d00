package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/foodexpense"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type FoodExpenseHandler interface {
	RecordFoodExpense(w http.ResponseWriter, r *http.Request)
	ListFoodExpenses(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	DeleteFoodExpense(w http.ResponseWriter, r *http.Request)
}

type foodExpenseHandlerImpl struct {
	foodExpenseService foodexpense.FoodExpenseService
}

func NewFoodExpenseHandler(foodExpenseService foodexpense.FoodExpenseService) FoodExpenseHandler {
	return &foodExpenseHandlerImpl{foodExpenseService: foodExpenseService}
}

// RecordFoodExpense implements FoodExpenseHandler
func (h *foodExpenseHandlerImpl) RecordFoodExpense(w http.ResponseWriter, r *http.Request) {
	var req foodexpense.UpsertFoodExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordFoodExpense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.foodExpenseService.RecordFoodExpense(r.Context(), req)
	if err != nil {
		slog.Error("RecordFoodExpense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Food expense saved successfully", result)
}

// ListFoodExpenses implements FoodExpenseHandler
func (h *foodExpenseHandlerImpl) ListFoodExpenses(w http.ResponseWriter, r *http.Request) {
	results, err := h.foodExpenseService.ListFoodExpenses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee serves /employee/{employeeId} and its /month/{month}/year/{year} variant.
func (h *foodExpenseHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	var (
		results []foodexpense.FoodExpenseResponse
		err     error
	)
	if chi.URLParam(r, "month") != "" {
		month, year, ok := monthYearParam(r)
		if !ok {
			response.BadRequest(w, "Month and year must be numbers", nil)
			return
		}
		results, err = h.foodExpenseService.ListByEmployeeAndMonth(r.Context(), employeeID, month, year)
	} else {
		results, err = h.foodExpenseService.ListByEmployee(r.Context(), employeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteFoodExpense implements FoodExpenseHandler
func (h *foodExpenseHandlerImpl) DeleteFoodExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", foodexpense.ErrFoodExpenseNotFound)
	if !ok {
		return
	}

	if err := h.foodExpenseService.DeleteFoodExpense(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Food expense deleted successfully", nil)
}
