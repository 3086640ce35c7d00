package salary

import "errors"

var (
	ErrSalaryNotFound      = errors.New("salary not found")
	ErrSalaryAlreadyExists = errors.New("salary already generated for this period")
	ErrSMSDeliveryFailed   = errors.New("failed to send salary SMS")
)
