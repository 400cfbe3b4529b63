package report

import (
	"net/http"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/report/service"
	"smeraldo/shared/constant"
	"smeraldo/transport/http/middleware"
	"smeraldo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Report
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Report, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticate)
		routerGroup.Use(handler.middleware.RequireRole(constant.RoleManager))

		routerGroup.Get("/", handler.GetDashboard)
	})
}

// GetDashboard assembles the manager dashboard.
// @Summary Get the dashboard
// @Description Retrieve rooms, status counts, occupancy and today's staffing for the current date.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard for the current date"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}
