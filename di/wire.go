//go:build wireinject
// +build wireinject

package di

import (
	"deliveryform/config"
	"deliveryform/infras/otel"
	"deliveryform/infras/redis"
	"deliveryform/infras/s3"
	"deliveryform/shared/cache"
	"deliveryform/shared/timezone"
	"deliveryform/transport/http"
	"deliveryform/transport/http/middleware"
	"deliveryform/transport/http/router"

	deliveryRepository "deliveryform/internal/domains/delivery/repository"
	deliveryService "deliveryform/internal/domains/delivery/service"
	"deliveryform/internal/domains/manifest"
	"deliveryform/internal/domains/notification"

	deliveryHandler "deliveryform/internal/handlers/delivery"
	formHandler "deliveryform/internal/handlers/form"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var deliveryDomain = wire.NewSet(
	deliveryRepository.New,
	notification.New,
	deliveryService.New,
)

var domains = wire.NewSet(
	deliveryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	deliveryHandler.New,
	formHandler.New,
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

func InitializeManifest() manifest.Manifest {
	wire.Build(
		configurations,
		otel.New,
		deliveryRepository.New,
		s3.New,
		timezone.GetLocation,
		manifest.New,
	)

	return nil
}
