package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeUnpaid LeaveType = "UNPAID"
)

// LeaveTypes lists the accepted leaveType values.
var LeaveTypes = []string{string(LeaveTypePaid), string(LeaveTypeUnpaid)}

type Leave struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	LeaveDate    time.Time
	LeaveType    LeaveType
	Description  *string
	CreatedAt    time.Time
}
