package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	types := []string{"PAID", "UNPAID"}
	if !IsInSlice("UNPAID", types) {
		t.Errorf("IsInSlice(%q) = false, want true", "UNPAID")
	}
	for _, s := range []string{"paid", "SICK", ""} {
		if IsInSlice(s, types) {
			t.Errorf("IsInSlice(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "", "2023/01/01"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	valid := []string{"9876543210", "0000000000"}
	invalid := []string{"987654321", "98765432100", "98765-4321", "+919876543210", "abcdefghij", ""}
	for _, s := range valid {
		if !IsValidMobile(s) {
			t.Errorf("IsValidMobile(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMobile(s) {
			t.Errorf("IsValidMobile(%q) = true, want false", s)
		}
	}
}

func TestIsPositive(t *testing.T) {
	pos := decimal.NewFromFloat(0.01)
	zero := decimal.Zero
	neg := decimal.NewFromInt(-5)

	if !IsPositive(&pos) {
		t.Errorf("IsPositive(0.01) = false, want true")
	}
	if IsPositive(&zero) {
		t.Errorf("IsPositive(0) = true, want false")
	}
	if IsPositive(&neg) {
		t.Errorf("IsPositive(-5) = true, want false")
	}
	if IsPositive(nil) {
		t.Errorf("IsPositive(nil) = true, want false")
	}
}

func TestIsValidMonthAndYear(t *testing.T) {
	for _, m := range []int{1, 6, 12} {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
	if IsValidYear(1999) {
		t.Errorf("IsValidYear(1999) = true, want false")
	}
	if !IsValidYear(2024) {
		t.Errorf("IsValidYear(2024) = false, want true")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "mobile", Message: "Mobile number must be 10 digits"},
		{Field: "name", Message: "Name is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["mobile"] != "Mobile number must be 10 digits" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "mobile: Mobile number must be 10 digits; name: Name is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}

func TestValidatePeriod(t *testing.T) {
	if err := ValidatePeriod(6, 2024); err != nil {
		t.Errorf("ValidatePeriod(6, 2024) = %v, want nil", err)
	}
	err := ValidatePeriod(13, 1999)
	verrs, ok := err.(ValidationErrors)
	if !ok || len(verrs) != 2 {
		t.Fatalf("ValidatePeriod(13, 1999) = %v, want two errors", err)
	}
	if verrs.ToMap()["month"] != "Month must be between 1 and 12" {
		t.Errorf("month message = %q", verrs.ToMap()["month"])
	}
}
