package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert keeps one live row per (employee, date); the existing ID survives an update.
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	SoftDelete(ctx context.Context, id string) error
}
