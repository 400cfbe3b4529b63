//go:build wireinject
// +build wireinject

package di

import (
	"smeraldo/config"
	"smeraldo/infras/jwt"
	"smeraldo/infras/otel"
	"smeraldo/infras/postgres"
	"smeraldo/infras/redis"
	"smeraldo/shared/cache"
	"smeraldo/transport/http"
	"smeraldo/transport/http/middleware"
	"smeraldo/transport/http/router"

	accountRepository "smeraldo/internal/domains/account/repository"
	attendanceRepository "smeraldo/internal/domains/attendance/repository"
	attendanceService "smeraldo/internal/domains/attendance/service"
	authService "smeraldo/internal/domains/auth/service"
	bookingRepository "smeraldo/internal/domains/booking/repository"
	bookingService "smeraldo/internal/domains/booking/service"
	guestRepository "smeraldo/internal/domains/guest/repository"
	inventoryRepository "smeraldo/internal/domains/inventory/repository"
	inventoryService "smeraldo/internal/domains/inventory/service"
	reportService "smeraldo/internal/domains/report/service"
	roomRepository "smeraldo/internal/domains/room/repository"
	roomService "smeraldo/internal/domains/room/service"
	staffRepository "smeraldo/internal/domains/staff/repository"
	staffService "smeraldo/internal/domains/staff/service"

	attendanceHandler "smeraldo/internal/handlers/attendance"
	authHandler "smeraldo/internal/handlers/auth"
	bookingHandler "smeraldo/internal/handlers/booking"
	inventoryHandler "smeraldo/internal/handlers/inventory"
	reportHandler "smeraldo/internal/handlers/report"
	roomHandler "smeraldo/internal/handlers/room"
	staffHandler "smeraldo/internal/handlers/staff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
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

var staffDomain = wire.NewSet(
	accountRepository.New,
	staffRepository.New,
	staffService.New,
	wire.Bind(new(middleware.ProfileResolver), new(staffService.Staff)),
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewStatusLog,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	guestRepository.New,
	bookingRepository.New,
	bookingService.New,
)

var attendanceDomain = wire.NewSet(
	attendanceRepository.New,
	attendanceService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryRepository.NewMovement,
	inventoryService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	staffDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	attendanceDomain,
	inventoryDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	staffHandler.New,
	attendanceHandler.New,
	inventoryHandler.New,
	reportHandler.New,
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
