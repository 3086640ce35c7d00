package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/advance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/foodexpense"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/overtime"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/sms"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMobileExists):
		Conflict(w, "Mobile number already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Transaction domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, foodexpense.ErrFoodExpenseNotFound):
		NotFound(w, "Food expense not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary not found")
	case errors.Is(err, salary.ErrSalaryAlreadyExists):
		Conflict(w, "Salary already generated for this period")
	case errors.Is(err, sms.ErrNotConfigured):
		BadRequest(w, "SMS delivery is not configured", nil)
	case errors.Is(err, salary.ErrSMSDeliveryFailed):
		BadGateway(w, "Failed to send salary SMS")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
