package attendance

import "context"

type AttendanceService interface {
	RecordAttendance(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	ListAttendances(ctx context.Context) ([]AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}
