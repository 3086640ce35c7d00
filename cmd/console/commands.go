package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// formResult turns field errors into the command error so they get printed.
func formResult(errs form.Errors, err error) error {
	if errs.Any() {
		return errs
	}
	return err
}

func newLoginCmd(a *app) *cobra.Command {
	var f form.Login

	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in and store the session token",
		Annotations: map[string]string{publicAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.Password == "" {
				password, err := readPassword(cmd.InOrStdin(), a.out)
				if err != nil {
					return err
				}
				f.Password = password
			}

			route, errs := view.NewLogin(a.svc.Auth, a.notify).Submit(cmd.Context(), f)
			if errs.Any() {
				return errs
			}
			if route != view.RouteDashboard {
				return fmt.Errorf("login failed")
			}
			a.layout.Header()
			return view.NewDashboard(a.svc.Dashboard, a.notify, a.out).Render(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&f.Username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&f.Password, "password", "p", "", "admin password (prompted when omitted)")
	return cmd
}

// readPassword prompts on out. A terminal is read without echo; piped input
// is read up to the first newline.
func readPassword(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Password: ")

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session and forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.layout.Logout(cmd.Context())
			return err
		},
	}
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show headcount and payroll totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.layout.Header()
			return view.NewDashboard(a.svc.Dashboard, a.notify, a.out).Render(cmd.Context())
		},
	}
}

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee"},
		Short:   "Manage employees",
	}
	employees := func() *view.Employees {
		return view.NewEmployees(a.svc.Employees, a.notify, a.out)
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return employees().List(cmd.Context())
		},
	}

	show := &cobra.Command{
		Use:   "show <employee-id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return employees().Show(cmd.Context(), args[0])
		},
	}

	var create form.Employee
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			return formResult(employees().Submit(cmd.Context(), create, ""))
		},
	}
	employeeFlags(createCmd, &create)

	var update form.Employee
	updateCmd := &cobra.Command{
		Use:   "update <employee-id>",
		Short: "Edit an employee; omitted flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.svc.Employees.Get(cmd.Context(), args[0])
			if err != nil {
				a.notify.Failure(err, "Employee not found")
				return err
			}
			f := form.Employee{
				Name:       current.Name,
				Mobile:     current.Mobile,
				BaseSalary: current.BaseSalary.String(),
				PFAmount:   current.PFAmount.String(),
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				f.Name = update.Name
			}
			if flags.Changed("mobile") {
				f.Mobile = update.Mobile
			}
			if flags.Changed("base-salary") {
				f.BaseSalary = update.BaseSalary
			}
			if flags.Changed("pf-amount") {
				f.PFAmount = update.PFAmount
			}
			return formResult(employees().Submit(cmd.Context(), f, args[0]))
		},
	}
	employeeFlags(updateCmd, &update)

	deactivate := &cobra.Command{
		Use:     "deactivate <employee-id>",
		Aliases: []string{"delete"},
		Short:   "Deactivate an employee",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return employees().Deactivate(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, show, createCmd, updateCmd, deactivate)
	return cmd
}

func employeeFlags(cmd *cobra.Command, f *form.Employee) {
	cmd.Flags().StringVar(&f.Name, "name", "", "full name")
	cmd.Flags().StringVar(&f.Mobile, "mobile", "", "10-digit mobile number")
	cmd.Flags().StringVar(&f.BaseSalary, "base-salary", "", "monthly base salary")
	cmd.Flags().StringVar(&f.PFAmount, "pf-amount", "", "monthly PF deduction")
}

func newTransactionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Record and review advances, leaves, overtime, attendance and food expenses",
	}
	for _, tab := range view.Tabs {
		cmd.AddCommand(newTabCmd(a, tab))
	}
	return cmd
}

func newTabCmd(a *app, tab view.Tab) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(tab),
		Short: "Manage " + tab.Label(),
	}
	transactions := func() *view.Transactions {
		return view.NewTransactions(a.svc, a.notify, a.out)
	}

	var (
		employeeID  string
		month, year int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List " + tab.Label() + " for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month > 0 && year == 0 {
				year = time.Now().Year()
			}
			return transactions().Show(cmd.Context(), tab, employeeID, month, year)
		},
	}
	list.Flags().StringVarP(&employeeID, "employee", "e", "", "employee ID")
	list.Flags().IntVar(&month, "month", 0, "restrict to one month (1-12)")
	list.Flags().IntVar(&year, "year", 0, "year for --month (defaults to the current year)")

	add := &cobra.Command{
		Use:   "add",
		Short: "Record an entry in " + tab.Label(),
	}
	add.Flags().StringVarP(&employeeID, "employee", "e", "", "employee ID")
	add.RunE = addRunner(a, tab, add, &employeeID)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transactions().Delete(cmd.Context(), tab, args[0])
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

// addRunner binds the tab's form fields as flags on cmd.
func addRunner(a *app, tab view.Tab, cmd *cobra.Command, employeeID *string) func(*cobra.Command, []string) error {
	v := func() *view.Transactions { return view.NewTransactions(a.svc, a.notify, a.out) }
	flags := cmd.Flags()
	today := time.Now().Format("2006-01-02")

	switch tab {
	case view.TabAdvances:
		var f form.Advance
		flags.StringVar(&f.Amount, "amount", "", "advance amount")
		flags.StringVar(&f.AdvanceDate, "date", today, "date (YYYY-MM-DD)")
		flags.StringVar(&f.Description, "description", "", "optional note")
		return func(cmd *cobra.Command, _ []string) error {
			return formResult(v().AddAdvance(cmd.Context(), *employeeID, f))
		}
	case view.TabLeaves:
		var f form.Leave
		flags.StringVar(&f.LeaveDate, "date", today, "date (YYYY-MM-DD)")
		flags.StringVar(&f.LeaveType, "type", "", "PAID or UNPAID")
		flags.StringVar(&f.Description, "description", "", "optional note")
		return func(cmd *cobra.Command, _ []string) error {
			f.LeaveType = strings.ToUpper(f.LeaveType)
			return formResult(v().AddLeave(cmd.Context(), *employeeID, f))
		}
	case view.TabOvertimes:
		var f form.Overtime
		flags.StringVar(&f.OvertimeDate, "date", today, "date (YYYY-MM-DD)")
		flags.StringVar(&f.Hours, "hours", "", "hours worked")
		flags.StringVar(&f.RatePerHour, "rate", "", "rate per hour")
		return func(cmd *cobra.Command, _ []string) error {
			return formResult(v().AddOvertime(cmd.Context(), *employeeID, f))
		}
	case view.TabAttendances:
		var f form.Attendance
		flags.StringVar(&f.AttendanceDate, "date", today, "date (YYYY-MM-DD)")
		flags.StringVar(&f.Status, "status", "PRESENT", "PRESENT, ABSENT or HALF_DAY")
		flags.StringVar(&f.Notes, "notes", "", "optional note")
		return func(cmd *cobra.Command, _ []string) error {
			f.Status = strings.ToUpper(f.Status)
			return formResult(v().AddAttendance(cmd.Context(), *employeeID, f))
		}
	default:
		var f form.FoodExpense
		flags.StringVar(&f.ExpenseDate, "date", today, "date (YYYY-MM-DD)")
		flags.StringVar(&f.Amount, "amount", "", "expense amount")
		flags.StringVar(&f.Description, "description", "", "optional note")
		return func(cmd *cobra.Command, _ []string) error {
			return formResult(v().AddFoodExpense(cmd.Context(), *employeeID, f))
		}
	}
}

func newSalaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "salary",
		Aliases: []string{"salaries"},
		Short:   "Preview, generate and export salaries",
	}
	salaries := func() *view.Salaries {
		return view.NewSalaries(a.svc.Salaries, a.notify, a.out)
	}
	now := time.Now()

	periodFlags := func(c *cobra.Command, f *form.SalaryPeriod) {
		c.Flags().StringVarP(&f.EmployeeID, "employee", "e", "", "employee ID")
		c.Flags().IntVar(&f.Month, "month", int(now.Month()), "month (1-12)")
		c.Flags().IntVar(&f.Year, "year", now.Year(), "year")
	}

	var previewForm form.SalaryPeriod
	preview := &cobra.Command{
		Use:   "preview",
		Short: "Compute a salary without saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return formResult(salaries().Preview(cmd.Context(), previewForm))
		},
	}
	periodFlags(preview, &previewForm)

	var generateForm form.SalaryPeriod
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate and store a salary, then notify the employee by SMS",
		RunE: func(cmd *cobra.Command, args []string) error {
			return formResult(salaries().Generate(cmd.Context(), generateForm))
		},
	}
	periodFlags(generate, &generateForm)

	var historyEmployee string
	history := &cobra.Command{
		Use:   "history",
		Short: "List generated salaries for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			return salaries().History(cmd.Context(), historyEmployee)
		},
	}
	history.Flags().StringVarP(&historyEmployee, "employee", "e", "", "employee ID")

	sendSMS := &cobra.Command{
		Use:   "send-sms <salary-id>",
		Short: "Resend the salary SMS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return salaries().SendSMS(cmd.Context(), args[0])
		},
	}

	var (
		exportMonth, exportYear int
		exportDir               string
	)
	export := &cobra.Command{
		Use:   "export",
		Short: "Download the monthly salary register as xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				exportDir = wd
			}
			_, err := salaries().Export(cmd.Context(), exportMonth, exportYear, exportDir)
			return err
		},
	}
	export.Flags().IntVar(&exportMonth, "month", int(now.Month()), "month (1-12)")
	export.Flags().IntVar(&exportYear, "year", now.Year(), "year")
	export.Flags().StringVar(&exportDir, "dir", "", "output directory (defaults to the working directory)")

	cmd.AddCommand(preview, generate, history, sendSMS, export)
	return cmd
}
