package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/config"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/variant"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	LeaveType LeaveTypeHandler
	Variant   VariantHandler
	Role      RoleHandler
	Workflow  WorkflowHandler
	Employee  EmployeeHandler
	Setup     SetupHandler
}

func NewRouter(cfg config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
		// Requires authentication and a company-scoped token
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.Route("/setup", func(r chi.Router) {
				r.Get("/", h.Setup.Status)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/enable", h.Setup.Enable)
					r.Post("/advance", h.Setup.Advance)
					r.Post("/back", h.Setup.Back)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.LeaveType.List)
				r.Get("/{id}", h.LeaveType.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.LeaveType.Create)
					r.Patch("/{id}", h.LeaveType.Update)
					r.Delete("/{id}", h.LeaveType.Delete)
				})
			})

			variantRoutes := func(t variant.Type) func(chi.Router) {
				return func(r chi.Router) {
					r.Get("/", h.Variant.List(t))
					r.Get("/{id}", h.Variant.Get(t))
					r.Get("/{id}/assignments", h.Variant.ListAssignments)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", h.Variant.Create(t))
						r.Patch("/{id}", h.Variant.Update(t))
						r.Delete("/{id}", h.Variant.Delete(t))
					})
				}
			}
			r.Route("/leave-variants", variantRoutes(variant.TypeLeave))
			r.Route("/comp-off-variants", variantRoutes(variant.TypeCompOff))
			r.Route("/pto-variants", variantRoutes(variant.TypePTO))

			r.Route("/employee-assignments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/bulk", h.Variant.BulkAssign)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.With(middleware.AdminOnly).Post("/selection", h.Employee.UpdateSelection)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", h.Role.List)
				r.Get("/{id}", h.Role.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Role.Create)
					r.Post("/defaults", h.Role.SeedDefaults)
					r.Patch("/{id}", h.Role.Update)
					r.Delete("/{id}", h.Role.Delete)
				})
			})

			r.Route("/workflows", func(r chi.Router) {
				r.Get("/", h.Workflow.List)
				r.Get("/{id}", h.Workflow.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Workflow.Create)
					r.Patch("/{id}", h.Workflow.Update)
					r.Delete("/{id}", h.Workflow.Delete)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
