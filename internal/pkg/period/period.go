// Package period holds calendar-month arithmetic shared by the salary engine,
// the monthly transaction listings and the dashboard.
package period

import (
	"fmt"
	"time"
)

// Period is a calendar month.
type Period struct {
	Month int
	Year  int
}

func New(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month %d", month)
	}
	if year < 1 {
		return Period{}, fmt.Errorf("invalid year %d", year)
	}
	return Period{Month: month, Year: year}, nil
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Start is the first day of the month at midnight UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month at midnight UTC (inclusive bound for DATE columns).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) Days() int {
	return p.End().Day()
}

func (p Period) Previous() Period {
	return Of(p.Start().AddDate(0, -1, 0))
}

// Contains compares calendar dates only.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

// Label renders "Jan 2024".
func (p Period) Label() string {
	return p.Start().Format("Jan 2006")
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// FormatDate renders a calendar date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
