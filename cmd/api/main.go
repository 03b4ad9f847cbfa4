package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zenith-hr/workforce-backend-go/internal/config"
	appHTTP "github.com/zenith-hr/workforce-backend-go/internal/handler/http"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/database"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/email"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/sse"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/token"
	"github.com/zenith-hr/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/zenith-hr/workforce-backend-go/internal/service/attendance"
	employeeService "github.com/zenith-hr/workforce-backend-go/internal/service/employee"
	holidayService "github.com/zenith-hr/workforce-backend-go/internal/service/holiday"
	leaveService "github.com/zenith-hr/workforce-backend-go/internal/service/leave"
	notificationService "github.com/zenith-hr/workforce-backend-go/internal/service/notification"
	payrollService "github.com/zenith-hr/workforce-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	tokenSvc := token.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	mailer, err := email.NewService(cfg.SMTP)
	if err != nil {
		slog.Error("failed to initialize email service", "error", err)
		os.Exit(1)
	}

	notifier := notificationService.NewService(notificationRepo, hub, notificationService.Config{})
	defer notifier.Shutdown()

	employeeSvc := employeeService.NewService(employeeRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, notifier, mailer, cfg.Attendance)
	leaveSvc := leaveService.NewService(leaveRepo, employeeRepo, holidayRepo, db, notifier, mailer)
	payrollSvc := payrollService.NewService(payslipRepo, employeeRepo, attendanceRepo, holidayRepo, notifier, mailer)
	holidaySvc := holidayService.NewService(holidayRepo)

	router := appHTTP.NewRouter(
		cfg.App,
		tokenSvc,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewNotificationHandler(notifier, tokenSvc, hub),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
