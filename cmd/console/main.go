package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/salary-admin-go/internal/config"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/api"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/form"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/service"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/session"
	"github.com/cmlabs-hris/salary-admin-go/internal/console/view"
	"github.com/spf13/cobra"
)

// publicAnnotation marks commands that run without a stored session.
const publicAnnotation = "public"

// app holds everything a command needs once the root pre-run has wired it.
type app struct {
	cfg    *config.ConsoleConfig
	svc    *service.Services
	notify *view.Notifier
	layout *view.Layout
	out    io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{out: os.Stdout}
	root := newRootCmd(a)

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(a.report(ctx, err))
	}
}

func newRootCmd(a *app) *cobra.Command {
	var apiURL, sessionFile string

	root := &cobra.Command{
		Use:           "salary-console",
		Short:         "Employee salary management console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConsole()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			if sessionFile != "" {
				cfg.SessionFile = sessionFile
			}
			setupLogger(cfg.LogLevel)

			store := session.NewStore(cfg.SessionFile)
			if _, err := store.Load(); err != nil {
				slog.Warn("Ignoring unreadable session file", "path", cfg.SessionFile, "error", err)
			}

			client := api.NewClient(cfg.APIURL, cfg.Timeout, store)
			a.cfg = cfg
			a.svc = service.New(client, store)
			a.notify = view.NewNotifier(a.out)
			a.layout = view.NewLayout(a.svc.Auth, a.notify, a.out)

			if cmd.Annotations[publicAnnotation] != "" {
				return nil
			}
			return view.Guard(a.svc.Auth)
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "REST API base URL (overrides CONSOLE_API_URL)")
	root.PersistentFlags().StringVar(&sessionFile, "session-file", "", "session file path (overrides CONSOLE_SESSION_FILE)")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newDashboardCmd(a),
		newEmployeesCmd(a),
		newTransactionsCmd(a),
		newSalaryCmd(a),
	)
	return root
}

// report prints a failed command's outcome and returns the exit code.
func (a *app) report(ctx context.Context, err error) int {
	var errs form.Errors
	switch {
	case errors.Is(err, view.ErrLoginRequired):
		fmt.Fprintln(a.out, view.LoginPrompt)
	case errors.Is(err, api.ErrUnauthorized) && a.layout != nil:
		a.layout.Expired(ctx)
	case errors.As(err, &errs):
		for _, field := range errs.Fields() {
			fmt.Fprintf(a.out, "  %s: %s\n", field, errs[field])
		}
	case errors.Is(err, api.ErrNetwork):
		fmt.Fprintf(os.Stderr, "Cannot reach the salary API: %v\n", err)
	case errors.Is(err, view.ErrNoEmployee):
	default:
		var apiErr *api.Error
		if !errors.As(err, &apiErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return 1
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
