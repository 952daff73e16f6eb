package router

import (
	"clinic/config"
	"clinic/internal/handlers/appointment"
	"clinic/internal/handlers/availability"
	"clinic/internal/handlers/directory"
	"clinic/internal/handlers/health"
	"clinic/transport/http/middleware"
	"clinic/transport/http/response"
	"net/http"

	_ "clinic/docs" //nolint:revive

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health       health.Handler
	Directory    directory.Handler
	Availability availability.Handler
	Appointment  appointment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.AuthRole
	Config         *config.Config
}

// SetupRoutes mounts every route. Recover runs inside AccessLog so a recovered panic still gets
// its access line. Health and swagger stay outside authentication; everything else passes API
// key, JWT, RBAC, identity and the rate limiter in that order.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.RequestID, r.App.Tracing, r.App.AccessLog, r.App.Recover)

	if cfg := r.Config.App.CORS; cfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   cfg.AllowedMethods,
			AllowedHeaders:   cfg.AllowedHeaders,
			AllowCredentials: cfg.AllowCredentials,
			MaxAge:           cfg.MaxAgeSeconds,
		}))
	}

	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.APIKey, r.Auth.Auth, r.Auth.RBAC, r.Auth.Identity, r.App.RateLimit())

		r.DomainHandlers.Directory.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusNotFound, "route not found")
	})
}

func New(
	domainHandlers DomainHandlers,
	app middleware.AppMiddleware,
	auth middleware.AuthRole,
	cfg *config.Config,
) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
		Config:         cfg,
	}
}
