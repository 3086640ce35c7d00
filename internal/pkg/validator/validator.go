package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

// IsValidMobile accepts exactly ten digits, no country code.
func IsValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsPositive reports whether d is set and strictly greater than zero.
func IsPositive(d *decimal.Decimal) bool {
	return d != nil && d.GreaterThan(decimal.Zero)
}

// IsValidMonth accepts 1..12.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidYear rejects years before the system's earliest payroll period.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 9999
}

// ValidatePeriod reports month and year problems under the "month" and "year" keys.
func ValidatePeriod(month, year int) error {
	var errs ValidationErrors
	if !IsValidMonth(month) {
		errs = append(errs, ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if !IsValidYear(year) {
		errs = append(errs, ValidationError{Field: "year", Message: "Year must be 2000 or later"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
