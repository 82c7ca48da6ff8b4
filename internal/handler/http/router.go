package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/protrack-ops/floor-backend-go/internal/config"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/middleware"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Management ManagementHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leader     LeaderHandler
	Production ProductionHandler
	Report     ReportHandler
	Inventory  InventoryHandler
	Schedule   ScheduleHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "protrack-floor"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/management", func(r chi.Router) {
				r.Get("/", h.Management.List)
				r.Get("/director", h.Management.Director)
				r.Put("/{id}", h.Management.Update)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.Roster)
				r.Post("/", h.Employee.Register)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/summary", h.Attendance.Summary)
				r.Put("/", h.Attendance.Set)
			})

			r.Route("/leaders", func(r chi.Router) {
				r.Get("/", h.Leader.List)
				r.Post("/", h.Leader.Create)
				r.Get("/performance", h.Leader.Performance)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Leader.Get)
					r.Put("/", h.Leader.Update)
					r.Delete("/", h.Leader.Delete)
					r.Post("/suspend", h.Leader.Suspend)
					r.Post("/activate", h.Leader.Activate)
					r.Get("/metrics", h.Leader.Metrics)
					r.Post("/portrait", h.Leader.UploadPortrait)
					r.Get("/qrcode", h.Leader.Badge)
				})
			})

			r.Route("/production", func(r chi.Router) {
				r.Get("/", h.Production.List)
				r.Post("/", h.Production.Create)
				r.Get("/{id}", h.Production.Get)
				r.Delete("/", h.Production.Clear)
				r.Delete("/{id}", h.Production.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/production.csv", h.Report.ArchiveCSV)
				r.Get("/production.xlsx", h.Report.ArchiveXLSX)
				r.Route("/share", func(r chi.Router) {
					r.Get("/attendance", h.Report.ShareAttendance)
					r.Get("/production/{id}", h.Report.ShareProduction)
				})
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", h.Inventory.List)
				r.Post("/", h.Inventory.Create)
				r.Put("/{id}", h.Inventory.Update)
				r.Delete("/{id}", h.Inventory.Delete)
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", h.Schedule.Week)
				r.Post("/", h.Schedule.Assign)
				r.Post("/move", h.Schedule.Move)
				r.Get("/share", h.Schedule.Broadcast)
				r.Route("/{date}/{shift}", func(r chi.Router) {
					r.Delete("/", h.Schedule.Unassign)
					r.Get("/reminder", h.Schedule.Reminder)
				})
			})
		})
	})
	return r
}
