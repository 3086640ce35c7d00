package leave

import (
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID  string  `json:"employeeId"`
	LeaveDate   string  `json:"leaveDate"`
	LeaveType   string  `json:"leaveType"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is invalid"})
	}
	if validator.IsEmpty(r.LeaveDate) {
		errs = append(errs, validator.ValidationError{Field: "leaveDate", Message: "Date is required"})
	} else if _, ok := validator.IsValidDate(r.LeaveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "leaveDate", Message: "Date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "Leave type is required"})
	} else if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "Leave type must be PAID or UNPAID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	LeaveDate    string    `json:"leaveDate"`
	LeaveType    LeaveType `json:"leaveType"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveDate:    period.FormatDate(l.LeaveDate),
		LeaveType:    l.LeaveType,
		Description:  l.Description,
		CreatedAt:    l.CreatedAt,
	}
}
