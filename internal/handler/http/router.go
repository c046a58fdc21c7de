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
	"github.com/rnrran/HUBDAM-KP/internal/config"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/handler/http/middleware"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hubdam-kp"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	// Stored profile photos
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserManage))
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
					r.Get("/generate-password", userHandler.GeneratePassword)
					r.Post("/{id}/profile-photo", userHandler.UploadProfilePhoto)
				})

				r.Get("/rank-options", userHandler.RankOptions)

				// Directory entries are not public: actors read their own
				// profile, everyone else's needs user management rights.
				r.With(middleware.RequireSelfOrPermission(user.PermissionUserManage)).
					Get("/{id}", userHandler.Get)

				// Per-user payroll reads; guests are scoped to their own id
				// inside the service.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollViewOwn))
					r.Get("/{id}/payrolls", payrollHandler.UserHistory)
					r.Get("/{id}/payrolls/chart", payrollHandler.UserChart)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollViewAll))
					r.Get("/", payrollHandler.List)
					r.Get("/{id}", payrollHandler.Get)
				})

				// Admin only mutations
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollCreate))
					r.Post("/", payrollHandler.Create)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollEdit))
					r.Put("/{id}", payrollHandler.Update)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollDelete))
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionDashboardView))
				r.Get("/", dashboardHandler.GetDashboard)
			})
		})
	})
	return r
}
