// Package export renders salary data as spreadsheets.
package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const registerSheet = "Salaries"

type RegisterRow struct {
	EmployeeName  string
	Mobile        string
	BaseSalary    decimal.Decimal
	TotalOvertime decimal.Decimal
	TotalAdvances decimal.Decimal
	TotalLeaves   decimal.Decimal
	PFDeduction   decimal.Decimal
	FinalSalary   decimal.Decimal
	SMSSent       bool
}

var registerHeader = []interface{}{
	"Employee", "Mobile", "Base Salary", "Overtime", "Advances", "Leave Deduction", "PF", "Final Salary", "SMS Sent",
}

// SalaryRegister writes one row per salary plus a totals row and returns the xlsx bytes.
func SalaryRegister(title string, rows []RegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetCellValue(registerSheet, "A1", title); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(registerSheet, "A1", "A1", bold); err != nil {
		return nil, err
	}

	header := registerHeader
	if err := f.SetSheetRow(registerSheet, "A3", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(registerSheet, "A3", "I3", bold); err != nil {
		return nil, err
	}

	total := RegisterRow{EmployeeName: "Total"}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return nil, err
		}
		smsSent := "No"
		if r.SMSSent {
			smsSent = "Yes"
		}
		values := []interface{}{
			r.EmployeeName, r.Mobile,
			r.BaseSalary.InexactFloat64(), r.TotalOvertime.InexactFloat64(), r.TotalAdvances.InexactFloat64(),
			r.TotalLeaves.InexactFloat64(), r.PFDeduction.InexactFloat64(), r.FinalSalary.InexactFloat64(),
			smsSent,
		}
		if err := f.SetSheetRow(registerSheet, cell, &values); err != nil {
			return nil, err
		}

		total.BaseSalary = total.BaseSalary.Add(r.BaseSalary)
		total.TotalOvertime = total.TotalOvertime.Add(r.TotalOvertime)
		total.TotalAdvances = total.TotalAdvances.Add(r.TotalAdvances)
		total.TotalLeaves = total.TotalLeaves.Add(r.TotalLeaves)
		total.PFDeduction = total.PFDeduction.Add(r.PFDeduction)
		total.FinalSalary = total.FinalSalary.Add(r.FinalSalary)
	}

	totalRow := len(rows) + 4
	cell, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return nil, err
	}
	totals := []interface{}{
		total.EmployeeName, "",
		total.BaseSalary.InexactFloat64(), total.TotalOvertime.InexactFloat64(), total.TotalAdvances.InexactFloat64(),
		total.TotalLeaves.InexactFloat64(), total.PFDeduction.InexactFloat64(), total.FinalSalary.InexactFloat64(),
	}
	if err := f.SetSheetRow(registerSheet, cell, &totals); err != nil {
		return nil, err
	}
	end, err := excelize.CoordinatesToCellName(9, totalRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(registerSheet, cell, end, bold); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(registerSheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(registerSheet, "B", "I", 15); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
