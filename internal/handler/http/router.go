package http

import (
	"log/slog"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	statsHandler StatsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Post("/auth/login", authHandler.Login)

	r.Get("/employees", employeeHandler.List)

	// GET /attendance/{id} takes an employee id, DELETE /attendance/{id}
	// a record id. chi requires one wildcard name per position, so both
	// routes share {id}.
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", attendanceHandler.Submit)
		r.Get("/", attendanceHandler.List)
		r.Get("/{id}", attendanceHandler.ListByEmployee)
	})

	r.Get("/attendance-range/{employeeId}/{start}/{end}", attendanceHandler.ListByEmployeeRange)

	r.Get("/stats", statsHandler.Get)

	// Mutating endpoints sit behind the admin token when auth is on.
	r.Group(func(r chi.Router) {
		if cfg.Auth.Required {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
		}
		r.Post("/employees", employeeHandler.Upsert)
		r.Delete("/attendance/{id}", attendanceHandler.Delete)
	})

	return r
}
