//go:build wireinject
// +build wireinject

package di

import (
	"arabina/config"
	"arabina/infras/jwt"
	"arabina/infras/kafka"
	"arabina/infras/otel"
	"arabina/infras/postgres"
	"arabina/infras/redis"
	"arabina/infras/s3"
	"arabina/permissions"
	"arabina/shared/cache"
	"arabina/transport/http"
	"arabina/transport/http/middleware"
	"arabina/transport/http/router"

	"github.com/google/wire"

	authService "arabina/internal/domains/auth/service"
	bookingRepository "arabina/internal/domains/booking/repository"
	bookingService "arabina/internal/domains/booking/service"
	ledgerService "arabina/internal/domains/ledger/service"
	procurementRepository "arabina/internal/domains/procurement/repository"
	procurementService "arabina/internal/domains/procurement/service"
	stockRepository "arabina/internal/domains/stock/repository"
	stockService "arabina/internal/domains/stock/service"
	tenantRepository "arabina/internal/domains/tenant/repository"
	tenantService "arabina/internal/domains/tenant/service"
	userRepository "arabina/internal/domains/user/repository"

	authHandler "arabina/internal/handlers/auth"
	bookingHandler "arabina/internal/handlers/booking"
	ledgerHandler "arabina/internal/handlers/ledger"
	procurementHandler "arabina/internal/handlers/procurement"
	stockHandler "arabina/internal/handlers/stock"
	tenantHandler "arabina/internal/handlers/tenant"
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
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var tenantDomain = wire.NewSet(
	tenantRepository.New,
	tenantService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var procurementDomain = wire.NewSet(
	procurementRepository.New,
	procurementService.New,
)

var stockDomain = wire.NewSet(
	stockRepository.New,
	stockService.New,
)

var domains = wire.NewSet(
	authDomain,
	tenantDomain,
	ledgerDomain,
	bookingDomain,
	procurementDomain,
	stockDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	tenantHandler.New,
	bookingHandler.New,
	ledgerHandler.New,
	procurementHandler.New,
	stockHandler.New,
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
