package attendance

import (
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

// UpsertAttendanceRequest creates the record for (employee, date) or replaces it.
type UpsertAttendanceRequest struct {
	EmployeeID     string  `json:"employeeId"`
	AttendanceDate string  `json:"attendanceDate"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is invalid"})
	}
	if validator.IsEmpty(r.AttendanceDate) {
		errs = append(errs, validator.ValidationError{Field: "attendanceDate", Message: "Date is required"})
	} else if _, ok := validator.IsValidDate(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "attendanceDate", Message: "Date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status is required"})
	} else if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be PRESENT, ABSENT or HALF_DAY"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	EmployeeName   string    `json:"employeeName"`
	AttendanceDate string    `json:"attendanceDate"`
	Status         Status    `json:"status"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		AttendanceDate: period.FormatDate(a.AttendanceDate),
		Status:         a.Status,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
