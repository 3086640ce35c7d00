package view

import (
	"context"
	"fmt"
	"io"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
	"github.com/cmlabs-hris/salary-admin-go/internal/domain/employee"
)

type Employees struct {
	svc    *service.Employees
	notify *Notifier
	out    io.Writer
}

func NewEmployees(svc *service.Employees, notify *Notifier, out io.Writer) *Employees {
	return &Employees{svc: svc, notify: notify, out: out}
}

func (v *Employees) List(ctx context.Context) error {
	employees, err := v.svc.List(ctx)
	if err != nil {
		v.notify.Failure(err, "Failed to fetch employees")
		return err
	}
	if len(employees) == 0 {
		fmt.Fprintln(v.out, "No employees found")
		return nil
	}

	tw := newTable(v.out, "ID", "NAME", "MOBILE", "BASE SALARY", "PF AMOUNT", "STATUS")
	for _, e := range employees {
		row(tw, e.ID, e.Name, e.Mobile, money(e.BaseSalary), money(e.PFAmount), status(e))
	}
	return tw.Flush()
}

func (v *Employees) Show(ctx context.Context, id string) error {
	e, err := v.svc.Get(ctx, id)
	if err != nil {
		v.notify.Failure(err, "Failed to fetch employee")
		return err
	}

	tw := newTable(v.out, "FIELD", "VALUE")
	row(tw, "ID", e.ID)
	row(tw, "Name", e.Name)
	row(tw, "Mobile", e.Mobile)
	row(tw, "Base Salary", money(e.BaseSalary))
	row(tw, "PF Amount", money(e.PFAmount))
	row(tw, "Status", status(e))
	return tw.Flush()
}

// Submit creates an employee, or updates editID when it is set. Client-side
// errors are returned before any request is made.
func (v *Employees) Submit(ctx context.Context, f form.Employee, editID string) (form.Errors, error) {
	if errs := f.Validate(); errs.Any() {
		return errs, nil
	}

	var err error
	if editID != "" {
		_, err = v.svc.Update(ctx, editID, f.Request())
	} else {
		_, err = v.svc.Create(ctx, f.Request())
	}
	if err != nil {
		return submitErrors(v.notify, err, "Operation failed. Please check the form for errors.", form.EmployeeFieldOrder...), err
	}

	if editID != "" {
		v.notify.Success("Employee updated successfully")
	} else {
		v.notify.Success("Employee created successfully")
	}
	return nil, nil
}

func (v *Employees) Deactivate(ctx context.Context, id string) error {
	if err := v.svc.Deactivate(ctx, id); err != nil {
		v.notify.Failure(err, "Failed to deactivate employee")
		return err
	}
	v.notify.Success("Employee deactivated successfully")
	return nil
}

func status(e employee.EmployeeResponse) string {
	if e.Active {
		return "Active"
	}
	return "Inactive"
}
