package staff

import (
	"net/http"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/staff/model"
	"smeraldo/internal/domains/staff/model/dto"
	"smeraldo/internal/domains/staff/service"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/validator"
	"smeraldo/transport/http/middleware"
	"smeraldo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Staff
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Staff, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticate)
		routerGroup.Use(handler.middleware.RequireRole(constant.RoleManager))

		routerGroup.Post("/", handler.CreateStaff)
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Get("/{id}", handler.GetStaffByID)
		routerGroup.Patch("/{id}", handler.UpdateStaff)
	})
}

// CreateStaff provisions a staff member with a login.
// @Summary Create a staff member
// @Description Create the login account and the staff profile in one call.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Message "Staff member created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [post]
// @Security BearerAuth
func (handler *Handler) CreateStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateStaffRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff member")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff member created successfully")

	response.WithMessage(writer, http.StatusCreated, "Staff member created successfully")
}

// GetStaff retrieves all staff members.
// @Summary Get all staff members
// @Description Retrieve staff members with optional role and active filters.
// @Tags Staff
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role (manager, reception, housekeeping)"
// @Param is_active query string false "Filter by active flag"
// @Success 200 {object} dto.GetStaffResponse "List of staff members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [get]
// @Security BearerAuth
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	role := r.URL.Query().Get(model.FieldRole)
	isActive := r.URL.Query().Get(model.FieldIsActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if isActive != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    isActive == "true",
			Table:    model.TableName,
		})
	}

	staff, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff members retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// GetStaffByID retrieves a staff member by ID.
// @Summary Get a staff member by ID
// @Description Retrieve a staff member by their unique identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} dto.StaffResponse "Staff member details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	staff, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff member by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// UpdateStaff updates a staff member's profile.
// @Summary Update a staff member
// @Description Update name, role or active flag. Deactivation forces the member out on their next request.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Update Staff Request"
// @Success 200 {object} response.Message "Staff member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff member")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member updated successfully")

	response.WithMessage(w, http.StatusOK, "Staff member updated successfully")
}
