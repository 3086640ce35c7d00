package foodexpense

import (
	"context"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/foodexpense"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

type FoodExpenseServiceImpl struct {
	foodExpenseRepo foodexpense.FoodExpenseRepository
	employeeRepo    employee.EmployeeRepository
}

func NewFoodExpenseService(foodExpenseRepo foodexpense.FoodExpenseRepository, employeeRepo employee.EmployeeRepository) foodexpense.FoodExpenseService {
	return &FoodExpenseServiceImpl{
		foodExpenseRepo: foodExpenseRepo,
		employeeRepo:    employeeRepo,
	}
}

// RecordFoodExpense keeps a single expense per employee and day.
func (s *FoodExpenseServiceImpl) RecordFoodExpense(ctx context.Context, req foodexpense.UpsertFoodExpenseRequest) (foodexpense.FoodExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return foodexpense.FoodExpenseResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return foodexpense.FoodExpenseResponse{}, err
	}
	if !emp.Active {
		return foodexpense.FoodExpenseResponse{}, employee.ErrEmployeeInactive
	}

	expenseDate, _ := validator.IsValidDate(req.ExpenseDate)
	saved, err := s.foodExpenseRepo.Upsert(ctx, foodexpense.FoodExpense{
		EmployeeID:  emp.ID,
		ExpenseDate: expenseDate,
		Amount:      *req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return foodexpense.FoodExpenseResponse{}, err
	}
	saved.EmployeeName = emp.Name

	return foodexpense.NewFoodExpenseResponse(saved), nil
}

// ListFoodExpenses implements foodexpense.FoodExpenseService.
func (s *FoodExpenseServiceImpl) ListFoodExpenses(ctx context.Context) ([]foodexpense.FoodExpenseResponse, error) {
	expenses, err := s.foodExpenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(expenses), nil
}

// ListByEmployee implements foodexpense.FoodExpenseService.
func (s *FoodExpenseServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]foodexpense.FoodExpenseResponse, error) {
	expenses, err := s.foodExpenseRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(expenses), nil
}

// ListByEmployeeAndMonth implements foodexpense.FoodExpenseService.
func (s *FoodExpenseServiceImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]foodexpense.FoodExpenseResponse, error) {
	if err := validator.ValidatePeriod(month, year); err != nil {
		return nil, err
	}
	p := period.Period{Month: month, Year: year}

	expenses, err := s.foodExpenseRepo.ListByEmployeeBetween(ctx, employeeID, p.Start(), p.End())
	if err != nil {
		return nil, err
	}
	return toResponses(expenses), nil
}

// DeleteFoodExpense implements foodexpense.FoodExpenseService.
func (s *FoodExpenseServiceImpl) DeleteFoodExpense(ctx context.Context, id string) error {
	return s.foodExpenseRepo.SoftDelete(ctx, id)
}

func toResponses(expenses []foodexpense.FoodExpense) []foodexpense.FoodExpenseResponse {
	responses := make([]foodexpense.FoodExpenseResponse, 0, len(expenses))
	for _, f := range expenses {
		responses = append(responses, foodexpense.NewFoodExpenseResponse(f))
	}
	return responses
}
