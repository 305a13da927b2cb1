// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"arabina/config"
	"arabina/infras/jwt"
	"arabina/infras/kafka"
	"arabina/infras/otel"
	"arabina/infras/postgres"
	"arabina/infras/redis"
	"arabina/infras/s3"
	"arabina/internal/domains/auth/service"
	repository3 "arabina/internal/domains/booking/repository"
	service4 "arabina/internal/domains/booking/service"
	service3 "arabina/internal/domains/ledger/service"
	repository4 "arabina/internal/domains/procurement/repository"
	service5 "arabina/internal/domains/procurement/service"
	repository5 "arabina/internal/domains/stock/repository"
	service6 "arabina/internal/domains/stock/service"
	repository2 "arabina/internal/domains/tenant/repository"
	service2 "arabina/internal/domains/tenant/service"
	"arabina/internal/domains/user/repository"
	"arabina/internal/handlers/auth"
	"arabina/internal/handlers/booking"
	"arabina/internal/handlers/ledger"
	"arabina/internal/handlers/procurement"
	"arabina/internal/handlers/stock"
	"arabina/internal/handlers/tenant"
	"arabina/permissions"
	"arabina/shared/cache"
	"arabina/transport/http"
	"arabina/transport/http/middleware"
	"arabina/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	user := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(user, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryTenant := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceTenant := service2.New(repositoryTenant, configConfig, redisCache, otelOtel)
	tenantHandler := tenant.New(serviceTenant, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	repositoryProcurement := repository4.New(connection, otelOtel)
	serviceLedger := service3.New(repositoryTenant, repositoryBooking, repositoryProcurement, configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service4.New(repositoryBooking, repositoryTenant, serviceLedger, configConfig, otelOtel, kafkaClient)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	ledgerHandler := ledger.New(serviceLedger, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceProcurement := service5.New(repositoryProcurement, serviceLedger, configConfig, otelOtel, kafkaClient, s3S3)
	procurementHandler := procurement.New(serviceProcurement, otelOtel)
	repositoryStock := repository5.New(connection, otelOtel)
	serviceStock := service6.New(repositoryStock, configConfig, otelOtel)
	stockHandler := stock.New(serviceStock, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:        handler,
		Tenant:      tenantHandler,
		Booking:     bookingHandler,
		Ledger:      ledgerHandler,
		Procurement: procurementHandler,
		Stock:       stockHandler,
	}
	routerRouter := router.New(domainHandlers)
	app := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, app, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var authDomain = wire.NewSet(repository.New, service.New)

var tenantDomain = wire.NewSet(repository2.New, service2.New)

var ledgerDomain = wire.NewSet(service3.New)

var bookingDomain = wire.NewSet(repository3.New, service4.New)

var procurementDomain = wire.NewSet(repository4.New, service5.New)

var stockDomain = wire.NewSet(repository5.New, service6.New)

var domains = wire.NewSet(
	authDomain,
	tenantDomain,
	ledgerDomain,
	bookingDomain,
	procurementDomain,
	stockDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, tenant.New, booking.New, ledger.New, procurement.New, stock.New, router.New)
