package salary

import (
	"context"
	"time"
)

type SalaryRepository interface {
	// Create inserts the salary and its details; run it inside a transaction.
	Create(ctx context.Context, s Salary) (Salary, error)
	GetByID(ctx context.Context, id string) (Salary, error)
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	// ListByEmployee returns newest period first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Salary, error)
	ListByPeriod(ctx context.Context, month, year int) ([]Salary, error)
	ListPendingSMS(ctx context.Context, createdSince time.Time) ([]Salary, error)
	MarkSMSSent(ctx context.Context, id string, sentAt time.Time) error
}
