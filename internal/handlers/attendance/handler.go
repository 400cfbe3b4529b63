package attendance

import (
	"net/http"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/attendance/model/dto"
	"smeraldo/internal/domains/attendance/service"
	"smeraldo/shared/constant"
	"smeraldo/shared/failure"
	"smeraldo/shared/timezone"
	"smeraldo/shared/validator"
	"smeraldo/transport/http/middleware"
	"smeraldo/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Attendance
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Attendance, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/attendance", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticate)
		routerGroup.Use(handler.middleware.RequireRole(constant.RoleReception, constant.RoleManager))

		routerGroup.Post("/", handler.LogAttendance)
		routerGroup.Get("/", handler.GetAttendance)
	})
}

// DateAllowed reports whether the caller's role may log attendance for the
// given date. Reception is limited to the current business-local date;
// managers may log any date.
func DateAllowed(role, logDate, today string) bool {
	switch role {
	case constant.RoleManager:
		return true
	case constant.RoleReception:
		return logDate == today
	default:
		return false
	}
}

// LogAttendance records a shift for a staff member on a date.
// @Summary Log attendance
// @Description Upsert the shift value for a staff member on a date. Reception may only log the current date.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param request body dto.LogAttendanceRequest true "Log Attendance Request"
// @Success 200 {object} response.Message "Attendance logged successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/attendance [post]
// @Security BearerAuth
func (handler *Handler) LogAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LogAttendance")
	defer scope.End()

	req := dto.LogAttendanceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !DateAllowed(role, req.LogDate, timezone.Today()) {
		scope.TraceError(failure.ForbiddenError)
		log.Warn().Str("role", role).Str("logDate", req.LogDate).Msg("attendance date not allowed for role")

		response.WithError(w, failure.ForbiddenError)

		return
	}

	if err := handler.service.Log(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log attendance")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Attendance logged successfully")

	response.WithMessage(w, http.StatusOK, "Attendance logged successfully")
}

// GetAttendance retrieves a month of attendance logs.
// @Summary Get attendance for a month
// @Description Retrieve all attendance logs in the given year and month, oldest first.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.GetAttendanceResponse "Attendance logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/attendance [get]
// @Security BearerAuth
func (handler *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAttendance")
	defer scope.End()

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("year must be a number"))

		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("month must be a number"))

		return
	}

	attendance, err := handler.service.ByMonth(ctx, year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attendance")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Attendance retrieved successfully")

	response.WithJSON(w, http.StatusOK, attendance)
}
