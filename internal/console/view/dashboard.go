package view

import (
	"context"
	"fmt"
	"io"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
)

type Dashboard struct {
	svc    *service.Dashboard
	notify *Notifier
	out    io.Writer
}

func NewDashboard(svc *service.Dashboard, notify *Notifier, out io.Writer) *Dashboard {
	return &Dashboard{svc: svc, notify: notify, out: out}
}

func (v *Dashboard) Render(ctx context.Context) error {
	d, err := v.svc.Get(ctx)
	if err != nil {
		v.notify.Failure(err, "Failed to fetch dashboard data")
		return err
	}

	tw := newTable(v.out, "METRIC", "VALUE")
	row(tw, "Total Employees", fmt.Sprint(d.TotalEmployees))
	row(tw, "Active Employees", fmt.Sprint(d.ActiveEmployees))
	row(tw, "Total Salary (This Month)", money(d.TotalSalaryThisMonth))
	row(tw, "Total Salary (Last Month)", money(d.TotalSalaryLastMonth))
	row(tw, "Pending Salary Generations", fmt.Sprint(d.PendingSalaryGenerations))
	return tw.Flush()
}
