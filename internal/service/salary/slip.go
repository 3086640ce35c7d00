package salary

import (
	"strings"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/period"
)

// FormatSalarySlip renders the SMS body for a generated salary.
func FormatSalarySlip(s salary.Salary) string {
	var sb strings.Builder

	p := period.Period{Month: s.Month, Year: s.Year}
	sb.WriteString("Salary Slip - " + p.Label() + "\n")
	sb.WriteString("Emp: " + s.EmployeeName + "\n")
	sb.WriteString("Base: Rs " + s.BaseSalary.StringFixed(2) + "\n")

	if len(s.Details) > 0 {
		sb.WriteString("\nDate-wise Details:\n")
		for _, d := range s.Details {
			sb.WriteString(d.Date.Format("02/01") + ": " + string(d.Type) + " ")
			if d.Amount.IsNegative() {
				sb.WriteString("-Rs " + d.Amount.Abs().StringFixed(2))
			} else {
				sb.WriteString("+Rs " + d.Amount.StringFixed(2))
			}
			if d.Description != "" {
				sb.WriteString(" (" + d.Description + ")")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nOvertime: +Rs " + s.TotalOvertime.StringFixed(2) + "\n")
	sb.WriteString("Advances: -Rs " + s.TotalAdvances.StringFixed(2) + "\n")
	sb.WriteString("PF: -Rs " + s.PFDeduction.StringFixed(2) + "\n")
	sb.WriteString("Leaves: -Rs " + s.TotalLeaves.StringFixed(2) + "\n")
	sb.WriteString("Final: Rs " + s.FinalSalary.StringFixed(2) + "\n")

	return sb.String()
}
