package view

import (
	"context"
	"fmt"
	"io"

	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
)

type Login struct {
	auth   *service.Auth
	notify *Notifier
}

func NewLogin(auth *service.Auth, notify *Notifier) *Login {
	return &Login{auth: auth, notify: notify}
}

// Submit returns field errors without calling the API when the form is incomplete.
func (v *Login) Submit(ctx context.Context, f form.Login) (Route, form.Errors) {
	if errs := f.Validate(); errs.Any() {
		return RouteNone, errs
	}

	if _, err := v.auth.Login(ctx, f.Username, f.Password); err != nil {
		v.notify.Failure(err, "Login failed. Please check your credentials.")
		return RouteLogin, nil
	}

	v.notify.Success("Login successful!")
	return RouteDashboard, nil
}

// Layout carries the chrome shared by every authenticated screen.
type Layout struct {
	auth   *service.Auth
	notify *Notifier
	out    io.Writer
}

func NewLayout(auth *service.Auth, notify *Notifier, out io.Writer) *Layout {
	return &Layout{auth: auth, notify: notify, out: out}
}

func (l *Layout) Header() {
	fmt.Fprintf(l.out, "Employee Salary Management | signed in as %s\n\n", l.auth.Username())
}

// Logout drops the session and sends the user back to the login screen.
func (l *Layout) Logout(ctx context.Context) (Route, error) {
	if err := l.auth.Logout(ctx); err != nil {
		return RouteNone, err
	}
	l.notify.Success("Logged out successfully")
	fmt.Fprintln(l.out, LoginPrompt)
	return RouteLogin, nil
}

// Expired handles a 401 from any screen the same way as an explicit logout.
func (l *Layout) Expired(ctx context.Context) Route {
	l.notify.Warning("Session expired, please log in again")
	if err := l.auth.Logout(ctx); err != nil {
		l.notify.Error("Could not clear the saved session: " + err.Error())
	}
	fmt.Fprintln(l.out, LoginPrompt)
	return RouteLogin
}
