package health

import (
	"clinic/infras/postgres"
	"clinic/transport/http/response"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency.
type Check func(ctx context.Context) error

type Handler struct {
	checks map[string]Check
}

func New(db *postgres.Connection, client *goRedis.Client) Handler {
	return NewWithChecks(map[string]Check{
		"postgres": db.Ping,
		"redis": func(ctx context.Context) error {
			return client.Ping(ctx).Err() //nolint:wrapcheck
		},
	})
}

func NewWithChecks(checks map[string]Check) Handler {
	return Handler{checks: checks}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health/live", handler.Live)
	router.Get("/health/ready", handler.Ready)
}

// Live reports that the process is serving.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Router /health/live [get]
func (handler *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	response.WithSuccess(w, http.StatusOK)
}

// Ready reports whether Postgres and Redis answer.
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health/ready [get]
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for name, check := range handler.checks {
		if err := check(ctx); err != nil {
			log.Error().Err(err).Str("dependency", name).Msg("readiness check failed")

			response.WithUnhealthy(w)

			return
		}
	}

	response.WithSuccess(w, http.StatusOK)
}
