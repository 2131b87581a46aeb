//go:build wireinject
// +build wireinject

package di

import (
	"caravan/config"
	"caravan/infras/jwt"
	"caravan/infras/kafka"
	"caravan/infras/otel"
	"caravan/infras/postgres"
	"caravan/infras/redis"
	"caravan/permissions"
	"caravan/shared/cache"
	"caravan/transport/http"
	"caravan/transport/http/middleware"
	"caravan/transport/http/router"

	"github.com/google/wire"

	authService "caravan/internal/domains/auth/service"
	catalogRepository "caravan/internal/domains/catalog/repository"
	catalogService "caravan/internal/domains/catalog/service"
	clientRepository "caravan/internal/domains/client/repository"
	clientService "caravan/internal/domains/client/service"
	itineraryRepository "caravan/internal/domains/itinerary/repository"
	itineraryService "caravan/internal/domains/itinerary/service"
	userRepository "caravan/internal/domains/user/repository"
	userService "caravan/internal/domains/user/service"

	authHandler "caravan/internal/handlers/auth"
	catalogHandler "caravan/internal/handlers/catalog"
	clientHandler "caravan/internal/handlers/client"
	itineraryHandler "caravan/internal/handlers/itinerary"
	userHandler "caravan/internal/handlers/user"
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

var userDomain = wire.NewSet(
	userService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewHotel,
	catalogRepository.NewRoomType,
	catalogRepository.NewTransportation,
	catalogRepository.NewSightseeing,
	catalogRepository.NewActivity,
	catalogRepository.NewEntryTicket,
	catalogRepository.NewMeal,
	catalogService.New,
)

var itineraryDomain = wire.NewSet(
	itineraryRepository.New,
	itineraryService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	clientDomain,
	catalogDomain,
	itineraryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	clientHandler.New,
	catalogHandler.New,
	itineraryHandler.New,
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
