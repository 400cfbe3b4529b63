package router

import (
	"smeraldo/internal/handlers/attendance"
	"smeraldo/internal/handlers/auth"
	"smeraldo/internal/handlers/booking"
	"smeraldo/internal/handlers/inventory"
	"smeraldo/internal/handlers/report"
	"smeraldo/internal/handlers/room"
	"smeraldo/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Room       room.Handler
	Booking    booking.Handler
	Staff      staff.Handler
	Attendance attendance.Handler
	Inventory  inventory.Handler
	Report     report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Attendance.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
