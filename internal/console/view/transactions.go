package view

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
)

type Tab string

const (
	TabAdvances     Tab = "advances"
	TabLeaves       Tab = "leaves"
	TabOvertimes    Tab = "overtimes"
	TabAttendances  Tab = "attendances"
	TabFoodExpenses Tab = "food-expenses"
)

var Tabs = []Tab{TabAdvances, TabLeaves, TabOvertimes, TabAttendances, TabFoodExpenses}

const NoEmployeeSelected = "Please select an employee to view transactions"

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q, expected one of advances, leaves, overtimes, attendances, food-expenses", s)
}

// Label is the tab name as shown to the user.
func (t Tab) Label() string {
	return strings.ReplaceAll(string(t), "-", " ")
}

func (t Tab) singular() string {
	switch t {
	case TabAdvances:
		return "Advance"
	case TabLeaves:
		return "Leave"
	case TabOvertimes:
		return "Overtime"
	case TabAttendances:
		return "Attendance"
	default:
		return "Food expense"
	}
}

type Transactions struct {
	svc    *service.Services
	notify *Notifier
	out    io.Writer
}

func NewTransactions(svc *service.Services, notify *Notifier, out io.Writer) *Transactions {
	return &Transactions{svc: svc, notify: notify, out: out}
}

// Show lists one tab for an employee; month 0 lists every month. Without an
// employee nothing is fetched.
func (v *Transactions) Show(ctx context.Context, tab Tab, employeeID string, month, year int) error {
	if employeeID == "" {
		fmt.Fprintln(v.out, NoEmployeeSelected)
		return nil
	}

	var (
		tw    *tabwriter.Writer
		count int
		err   error
	)
	switch tab {
	case TabAdvances:
		items, e := listOf(ctx, v.svc.Advances, employeeID, month, year)
		err, count = e, len(items)
		tw = newTable(v.out, "ID", "DATE", "AMOUNT", "DESCRIPTION")
		for _, a := range items {
			row(tw, a.ID, a.AdvanceDate, money(a.Amount), deref(a.Description))
		}
	case TabLeaves:
		items, e := listOf(ctx, v.svc.Leaves, employeeID, month, year)
		err, count = e, len(items)
		tw = newTable(v.out, "ID", "DATE", "TYPE", "DESCRIPTION")
		for _, l := range items {
			row(tw, l.ID, l.LeaveDate, string(l.LeaveType), deref(l.Description))
		}
	case TabOvertimes:
		items, e := listOf(ctx, v.svc.Overtimes, employeeID, month, year)
		err, count = e, len(items)
		tw = newTable(v.out, "ID", "DATE", "HOURS", "RATE/HOUR", "TOTAL")
		for _, o := range items {
			row(tw, o.ID, o.OvertimeDate, o.Hours.String(), money(o.RatePerHour), money(o.TotalAmount))
		}
	case TabAttendances:
		items, e := listOf(ctx, v.svc.Attendances, employeeID, month, year)
		err, count = e, len(items)
		tw = newTable(v.out, "ID", "DATE", "STATUS", "NOTES")
		for _, a := range items {
			row(tw, a.ID, a.AttendanceDate, string(a.Status), deref(a.Notes))
		}
	case TabFoodExpenses:
		items, e := listOf(ctx, v.svc.FoodExpenses, employeeID, month, year)
		err, count = e, len(items)
		tw = newTable(v.out, "ID", "DATE", "AMOUNT", "DESCRIPTION")
		for _, f := range items {
			row(tw, f.ID, f.ExpenseDate, money(f.Amount), deref(f.Description))
		}
	default:
		return fmt.Errorf("unknown tab %q", tab)
	}

	if err != nil {
		v.notify.Failure(err, "Failed to fetch "+tab.Label())
		return err
	}
	if count == 0 {
		fmt.Fprintf(v.out, "No %s found\n", tab.Label())
		return nil
	}
	return tw.Flush()
}

func listOf[Req, Resp any](ctx context.Context, l *service.Ledger[Req, Resp], employeeID string, month, year int) ([]Resp, error) {
	if month > 0 {
		return l.ListByEmployeeAndMonth(ctx, employeeID, month, year)
	}
	return l.ListByEmployee(ctx, employeeID)
}

func (v *Transactions) AddAdvance(ctx context.Context, employeeID string, f form.Advance) (form.Errors, error) {
	return v.add(TabAdvances, employeeID, f.Validate, func() error {
		_, err := v.svc.Advances.Create(ctx, f.Request(employeeID))
		return err
	})
}

func (v *Transactions) AddLeave(ctx context.Context, employeeID string, f form.Leave) (form.Errors, error) {
	return v.add(TabLeaves, employeeID, f.Validate, func() error {
		_, err := v.svc.Leaves.Create(ctx, f.Request(employeeID))
		return err
	})
}

func (v *Transactions) AddOvertime(ctx context.Context, employeeID string, f form.Overtime) (form.Errors, error) {
	return v.add(TabOvertimes, employeeID, f.Validate, func() error {
		if total, ok := f.Total(); ok {
			fmt.Fprintf(v.out, "Total amount: %s\n", money(total))
		}
		_, err := v.svc.Overtimes.Create(ctx, f.Request(employeeID))
		return err
	})
}

func (v *Transactions) AddAttendance(ctx context.Context, employeeID string, f form.Attendance) (form.Errors, error) {
	return v.add(TabAttendances, employeeID, f.Validate, func() error {
		_, err := v.svc.Attendances.Create(ctx, f.Request(employeeID))
		return err
	})
}

func (v *Transactions) AddFoodExpense(ctx context.Context, employeeID string, f form.FoodExpense) (form.Errors, error) {
	return v.add(TabFoodExpenses, employeeID, f.Validate, func() error {
		_, err := v.svc.FoodExpenses.Create(ctx, f.Request(employeeID))
		return err
	})
}

func (v *Transactions) add(tab Tab, employeeID string, validate func() form.Errors, submit func() error) (form.Errors, error) {
	if employeeID == "" {
		v.notify.Warning("Please select an employee first")
		return nil, ErrNoEmployee
	}
	if errs := validate(); errs.Any() {
		return errs, nil
	}
	if err := submit(); err != nil {
		return submitErrors(v.notify, err, "Operation failed"), err
	}
	v.notify.Success(tab.singular() + " recorded successfully")
	return nil, nil
}

func (v *Transactions) Delete(ctx context.Context, tab Tab, id string) error {
	var err error
	switch tab {
	case TabAdvances:
		err = v.svc.Advances.Delete(ctx, id)
	case TabLeaves:
		err = v.svc.Leaves.Delete(ctx, id)
	case TabOvertimes:
		err = v.svc.Overtimes.Delete(ctx, id)
	case TabAttendances:
		err = v.svc.Attendances.Delete(ctx, id)
	case TabFoodExpenses:
		err = v.svc.FoodExpenses.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown tab %q", tab)
	}
	if err != nil {
		v.notify.Failure(err, "Delete operation failed")
		return err
	}
	v.notify.Success(tab.singular() + " deleted successfully")
	return nil
}
