package room

import (
	"net/http"
	"smeraldo/infras/otel"
	bookingDto "smeraldo/internal/domains/booking/model/dto"
	bookingService "smeraldo/internal/domains/booking/service"
	"smeraldo/internal/domains/room/model"
	"smeraldo/internal/domains/room/model/dto"
	"smeraldo/internal/domains/room/service"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/validator"
	"smeraldo/transport/http/middleware"
	"smeraldo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Room
	bookingService bookingService.Booking
	middleware     middleware.AuthRole
	otel           otel.Otel
}

func New(service service.Room, bookingService bookingService.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		middleware:     middleware,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticate)

		// Housekeeping sees the cleaning queue but nothing else here.
		routerGroup.With(handler.middleware.RequireRole(constant.RoleReception, constant.RoleManager, constant.RoleHousekeeping)).
			Get("/needs-cleaning", handler.GetRoomsNeedingCleaning)

		routerGroup.Group(func(desk chi.Router) {
			desk.Use(handler.middleware.RequireRole(constant.RoleReception, constant.RoleManager))

			desk.Get("/", handler.GetRooms)
			desk.Get("/status-counts", handler.GetStatusCounts)
			desk.Get("/{id}", handler.GetRoomByID)
			desk.Get("/{id}/status-logs", handler.GetStatusLogs)
			desk.Post("/{id}/check-in", handler.CheckIn)
			desk.Post("/{id}/check-out", handler.CheckOut)
			desk.Post("/{id}/status", handler.OverrideStatus)
		})

		routerGroup.With(handler.middleware.RequireRole(constant.RoleManager)).
			Post("/", handler.CreateRoom)
	})

	router.Route("/my-rooms", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticate)
		routerGroup.Use(handler.middleware.RequireRole(constant.RoleHousekeeping))

		routerGroup.Get("/", handler.GetRoomsNeedingCleaning)
		routerGroup.Post("/{id}/ready", handler.MarkReady)
	})
}

// CreateRoom registers a new room.
// @Summary Create a new room
// @Description Create a room with number, floor and type. New rooms start available.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms.
// @Summary Get all rooms
// @Description Retrieve rooms with optional status, floor and type filters, ordered by room number.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param floor query string false "Filter by floor"
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} dto.GetRoomsResponse "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	floor := r.URL.Query().Get(model.FieldFloor)
	roomType := r.URL.Query().Get(model.FieldRoomType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if floor != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFloor,
			Operator: gDto.FilterOperatorEq,
			Value:    floor,
			Table:    model.TableName,
		})
	}

	if roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomsNeedingCleaning retrieves rooms waiting on housekeeping.
// @Summary Get rooms needing cleaning
// @Description Retrieve rooms whose status is checking_out_today or being_cleaned, ordered by room number.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetRoomsResponse "List of rooms needing cleaning"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/needs-cleaning [get]
// @Security BearerAuth
func (handler *Handler) GetRoomsNeedingCleaning(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomsNeedingCleaning")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusCheckingOutToday, model.StatusBeingCleaned},
				Table:    model.TableName,
			},
		},
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms needing cleaning")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms needing cleaning retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetStatusCounts tallies rooms by status.
// @Summary Get room status counts
// @Description Count rooms per status for the desk overview.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatusCounts "Per-status room counts"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/status-counts [get]
// @Security BearerAuth
func (handler *Handler) GetStatusCounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusCounts")
	defer scope.End()

	counts, err := handler.service.StatusCounts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room status counts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status counts retrieved successfully")

	response.WithJSON(w, http.StatusOK, counts)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// GetStatusLogs retrieves the audit trail for a room.
// @Summary Get room status logs
// @Description Retrieve the status change history of a room, newest first.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetStatusLogsResponse "Status change history"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status-logs [get]
// @Security BearerAuth
func (handler *Handler) GetStatusLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusLogs")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.StatusLogs(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room status logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// CheckIn checks a confirmed booking into this room.
// @Summary Check a booking into a room
// @Description Check in the referenced booking, marking the room occupied and recording the guest's name.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body bookingDto.RoomCheckInRequest true "Check-in Request"
// @Success 200 {object} response.Message "Checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.RoomCheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	checkIn := bookingDto.CheckInRequest{
		RoomID:    roomID,
		GuestName: req.GuestName,
	}

	if err := handler.bookingService.CheckIn(ctx, req.BookingID, checkIn); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checked in successfully")

	response.WithMessage(w, http.StatusOK, "Checked in successfully")
}

// CheckOut checks the current booking out of this room.
// @Summary Check a booking out of a room
// @Description Check out the referenced booking, sending the room to cleaning.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body bookingDto.RoomCheckOutRequest true "Check-out Request"
// @Success 200 {object} response.Message "Checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.RoomCheckOutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	checkOut := bookingDto.CheckOutRequest{RoomID: roomID}

	if err := handler.bookingService.CheckOut(ctx, req.BookingID, checkOut); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checked out successfully")

	response.WithMessage(w, http.StatusOK, "Checked out successfully")
}

// OverrideStatus sets a room's status directly.
// @Summary Override a room's status
// @Description Set a room to any status, with an optional note for the audit trail.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.OverrideStatusRequest true "Override Status Request"
// @Success 200 {object} response.Message "Room status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status [post]
// @Security BearerAuth
func (handler *Handler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OverrideStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.OverrideStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.OverrideStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to override room status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status updated successfully")

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}

// MarkReady completes cleaning for a room.
// @Summary Mark a room ready
// @Description Move a cleaned room to ready so reception can sell it again.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room marked ready"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/my-rooms/{id}/ready [post]
// @Security BearerAuth
func (handler *Handler) MarkReady(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkReady")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkReady(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark room ready")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room marked ready")

	response.WithMessage(w, http.StatusOK, "Room marked ready")
}
