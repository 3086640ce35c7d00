package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/config"
	appHTTP "github.com/cmlabs-hris/salary-admin-go/internal/handler/http"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/cache"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/cron"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/sms"
	"github.com/cmlabs-hris/salary-admin-go/internal/repository/postgresql"
	advanceService "github.com/cmlabs-hris/salary-admin-go/internal/service/advance"
	attendanceService "github.com/cmlabs-hris/salary-admin-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/salary-admin-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/salary-admin-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/salary-admin-go/internal/service/employee"
	foodExpenseService "github.com/cmlabs-hris/salary-admin-go/internal/service/foodexpense"
	leaveService "github.com/cmlabs-hris/salary-admin-go/internal/service/leave"
	overtimeService "github.com/cmlabs-hris/salary-admin-go/internal/service/overtime"
	salaryService "github.com/cmlabs-hris/salary-admin-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	setupLogger(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}

	var dashboardCache cache.Cache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis:", err)
		}
		defer rdb.Close()
		dashboardCache = cache.NewRedisCache(rdb)
	} else {
		slog.Info("REDIS_ADDR not set, dashboard caching disabled")
		dashboardCache = cache.NewNoopCache()
	}

	var smsSender sms.Sender
	if cfg.Twilio.Enabled() {
		smsSender = sms.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.PhoneNumber)
	} else {
		slog.Warn("Twilio credentials not set, salary SMS will not be delivered")
		smsSender = sms.NewLogSender()
	}

	transactor := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	foodExpenseRepo := postgresql.NewFoodExpenseRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService, err := serviceAuth.NewAuthService(JWTService, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, dashboardCache)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	foodExpenseSvc := foodExpenseService.NewFoodExpenseService(foodExpenseRepo, employeeRepo)
	salarySvc := salaryService.NewSalaryService(
		transactor,
		salaryRepo,
		employeeRepo,
		overtimeRepo,
		advanceRepo,
		leaveRepo,
		smsSender,
		cfg.Twilio.CountryCode,
		dashboardCache,
	)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, dashboardCache, cfg.Dashboard.CacheTTL)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAdvanceHandler(advanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewOvertimeHandler(overtimeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewFoodExpenseHandler(foodExpenseSvc),
		appHTTP.NewSalaryHandler(salarySvc),
	)

	if cfg.SMSSweep.Enabled {
		scheduler := cron.NewScheduler()
		salaryJobs := cron.NewSalaryJobs(salaryRepo, salarySvc, cfg.SMSSweep.LookbackDays)
		if err := salaryJobs.RegisterJobs(scheduler, cfg.SMSSweep.Schedule); err != nil {
			log.Fatal("Failed to register salary jobs:", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
