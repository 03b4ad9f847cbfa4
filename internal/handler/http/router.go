package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/config"
	"github.com/zenith-hr/workforce-backend-go/internal/handler/http/middleware"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/token"
)

func NewRouter(
	cfg config.AppConfig,
	tokenService token.Service,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	holidayHandler HolidayHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		// Stream auth happens in the handler, the token rides the query string
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.AuthRequired(tokenService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.Me)
				r.Get("/{id}", employeeHandler.Get)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/me", attendanceHandler.GetMyAttendance)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/stats", attendanceHandler.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/overview", attendanceHandler.Overview)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/me", leaveHandler.GetMyLeaves)
				r.Get("/balance", leaveHandler.Balance)
				r.Post("/{id}/cancel", leaveHandler.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/decision", leaveHandler.Decide)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/lop", payrollHandler.LossOfPayDays)
				r.Get("/payslips/me", payrollHandler.GetMyPayslips)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePayrollOperator)
					r.Get("/payslips", payrollHandler.List)
					r.Post("/payslips", payrollHandler.Generate)
					r.Post("/payslips/bulk", payrollHandler.BulkGenerate)
					r.Put("/salary/{employeeID}", payrollHandler.UpdateSalary)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/payslips/{id}", payrollHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Patch("/{id}/read", notificationHandler.MarkAsRead)
				r.Patch("/read-all", notificationHandler.MarkAllAsRead)
				r.Get("/stream-token", notificationHandler.GetStreamToken)
			})
		})
	})

	return r
}
