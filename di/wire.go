//go:build wireinject
// +build wireinject

package di

import (
	"clinic/config"
	"clinic/infras/jwt"
	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/infras/redis"
	"clinic/permissions"
	"clinic/shared/cache"
	"clinic/transport/http"
	"clinic/transport/http/middleware"
	"clinic/transport/http/router"

	appointmentRepository "clinic/internal/domains/appointment/repository"
	availabilityService "clinic/internal/domains/availability/service"
	bookingService "clinic/internal/domains/booking/service"
	directoryRepository "clinic/internal/domains/directory/repository"
	directoryService "clinic/internal/domains/directory/service"
	lifecycleService "clinic/internal/domains/lifecycle/service"
	listingRepository "clinic/internal/domains/listing/repository"
	listingService "clinic/internal/domains/listing/service"

	appointmentHandler "clinic/internal/handlers/appointment"
	availabilityHandler "clinic/internal/handlers/availability"
	directoryHandler "clinic/internal/handlers/directory"
	healthHandler "clinic/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	availabilityService.New,
	lifecycleService.New,
	bookingService.New,
)

var directoryDomain = wire.NewSet(
	directoryRepository.New,
	directoryService.New,
)

var listingDomain = wire.NewSet(
	listingRepository.New,
	listingService.New,
)

var domains = wire.NewSet(
	appointmentDomain,
	directoryDomain,
	listingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	directoryHandler.New,
	availabilityHandler.New,
	appointmentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
