package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
)

// Statuses lists the accepted attendance status values.
var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusHalfDay)}

type Attendance struct {
	ID             string
	EmployeeID     string
	EmployeeName   string
	AttendanceDate time.Time
	Status         Status
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
