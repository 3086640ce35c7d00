package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/salary-admin-go/internal/config"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

const appVersion = "v1.0.0"

func NewRouter(
	appConfig config.AppConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	advanceHandler AdvanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	attendanceHandler AttendanceHandler,
	foodExpenseHandler FoodExpenseHandler,
	salaryHandler SalaryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salary-admin"),
		slog.String("version", appVersion),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appConfig.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", authHandler.Logout)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/dashboard", dashboardHandler.GetDashboard)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.ListEmployees)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", employeeHandler.GetEmployee)
						r.Put("/", employeeHandler.UpdateEmployee)
						r.Delete("/", employeeHandler.DeactivateEmployee)
						r.Put("/deactivate", employeeHandler.DeactivateEmployee)
					})
				})

				r.Route("/advances", func(r chi.Router) {
					r.Get("/", advanceHandler.ListAdvances)
					r.Post("/", advanceHandler.CreateAdvance)
					r.Delete("/{id}", advanceHandler.DeleteAdvance)
					r.Get("/employee/{employeeId}", advanceHandler.ListByEmployee)
					r.Get("/employee/{employeeId}/month/{month}/year/{year}", advanceHandler.ListByEmployee)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", leaveHandler.ListLeaves)
					r.Post("/", leaveHandler.CreateLeave)
					r.Delete("/{id}", leaveHandler.DeleteLeave)
					r.Get("/employee/{employeeId}", leaveHandler.ListByEmployee)
					r.Get("/employee/{employeeId}/month/{month}/year/{year}", leaveHandler.ListByEmployee)
				})

				r.Route("/overtimes", func(r chi.Router) {
					r.Get("/", overtimeHandler.ListOvertimes)
					r.Post("/", overtimeHandler.CreateOvertime)
					r.Delete("/{id}", overtimeHandler.DeleteOvertime)
					r.Get("/employee/{employeeId}", overtimeHandler.ListByEmployee)
					r.Get("/employee/{employeeId}/month/{month}/year/{year}", overtimeHandler.ListByEmployee)
				})

				r.Route("/attendances", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListAttendances)
					r.Post("/", attendanceHandler.RecordAttendance)
					r.Delete("/{id}", attendanceHandler.DeleteAttendance)
					r.Get("/employee/{employeeId}", attendanceHandler.ListByEmployee)
					r.Get("/employee/{employeeId}/month/{month}/year/{year}", attendanceHandler.ListByEmployee)
				})

				r.Route("/food-expenses", func(r chi.Router) {
					r.Get("/", foodExpenseHandler.ListFoodExpenses)
					r.Post("/", foodExpenseHandler.RecordFoodExpense)
					r.Delete("/{id}", foodExpenseHandler.DeleteFoodExpense)
					r.Get("/employee/{employeeId}", foodExpenseHandler.ListByEmployee)
					r.Get("/employee/{employeeId}/month/{month}/year/{year}", foodExpenseHandler.ListByEmployee)
				})

				r.Route("/salaries", func(r chi.Router) {
					r.Post("/preview", salaryHandler.PreviewSalary)
					r.Post("/generate", salaryHandler.GenerateSalary)
					r.Get("/export", salaryHandler.ExportSalaryRegister)
					r.Get("/employee/{employeeId}", salaryHandler.GetSalaryHistory)
					r.Post("/{id}/send-sms", salaryHandler.SendSalarySMS)
				})
			})
		})
	})
	return r
}
