package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrMobileExists            = errors.New("mobile number already registered")
	ErrEmployeeInactive        = errors.New("employee is inactive")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
)
