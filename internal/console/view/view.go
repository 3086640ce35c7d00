// Package view renders console screens and reports outcomes as toasts.
package view

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/api"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
	"github.com/shopspring/decimal"
)

// Route names the screen the console should show next.
type Route string

const (
	RouteNone      Route = ""
	RouteLogin     Route = "login"
	RouteDashboard Route = "dashboard"
)

const LoginPrompt = "Please log in: salary-console login --username <username>"

var (
	ErrLoginRequired = errors.New("login required")
	ErrNoEmployee    = errors.New("no employee selected")
)

// Notifier prints one-line toasts.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Success(msg string) { fmt.Fprintf(n.out, "[success] %s\n", msg) }
func (n *Notifier) Error(msg string)   { fmt.Fprintf(n.out, "[error] %s\n", msg) }
func (n *Notifier) Warning(msg string) { fmt.Fprintf(n.out, "[warning] %s\n", msg) }

// Failure toasts the server's message when there is one, otherwise fallback.
func (n *Notifier) Failure(err error, fallback string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		n.Error(apiErr.Message)
		return
	}
	n.Error(fallback)
}

// Guard blocks every screen but login while no session token is stored.
func Guard(auth *service.Auth) error {
	if !auth.IsAuthenticated() {
		return ErrLoginRequired
	}
	return nil
}

// submitErrors folds a failed submit into the form errors and toasts it.
// Network failures and field-less API errors leave the form untouched.
func submitErrors(n *Notifier, err error, fallback string, order ...string) form.Errors {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.HasFields() {
		errs := form.Errors{}.Merge(apiErr.Fields)
		n.Error(errs.First(order...))
		return errs
	}
	n.Failure(err, fallback)
	return nil
}

func newTable(out io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
