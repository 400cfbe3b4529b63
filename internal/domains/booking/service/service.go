package service

import (
	"context"
	"fmt"
	"smeraldo/config"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/booking/model"
	"smeraldo/internal/domains/booking/model/dto"
	"smeraldo/internal/domains/booking/repository"
	guestModel "smeraldo/internal/domains/guest/model"
	guestRepo "smeraldo/internal/domains/guest/repository"
	roomModel "smeraldo/internal/domains/room/model"
	roomRepo "smeraldo/internal/domains/room/repository"
	"smeraldo/shared"
	"smeraldo/shared/cache"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/failure"
	"smeraldo/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, bookingID string, req dto.CheckInRequest) error
	CheckOut(ctx context.Context, bookingID string, req dto.CheckOutRequest) error
	Cancel(ctx context.Context, bookingID string) error
}

type serviceImpl struct {
	repo          repository.Booking
	guestRepo     guestRepo.Guest
	roomRepo      roomRepo.Room
	statusLogRepo roomRepo.StatusLog
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Booking, guestRepo guestRepo.Guest, roomRepo roomRepo.Room, statusLogRepo roomRepo.StatusLog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:          repo,
		guestRepo:     guestRepo,
		roomRepo:      roomRepo,
		statusLogRepo: statusLogRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create inserts the guest first, then the booking referencing it, in one
// transaction. The nights count is computed by the store from the two dates.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist")
	}

	guest := req.ToGuestModel(actor)
	booking := req.ToModel(guest.ID, actor, checkIn, checkOut)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking creation")

		return res, fmt.Errorf("failed to begin booking creation: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking creation")
			}
		}
	}()

	if err = s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking creation")

		return res, fmt.Errorf("failed to commit booking creation: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// CheckIn moves a confirmed booking to checked_in and its room to occupied.
// All writes, including the guest name correction and the audit row, commit
// together. Both status updates are conditional on the expected prior state,
// so a concurrent double check-in loses with a conflict instead of applying
// twice.
func (s *serviceImpl) CheckIn(ctx context.Context, bookingID string, req dto.CheckInRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if booking.RoomID != req.RoomID {
		return failure.BadRequestFromString("booking does not belong to this room")
	}

	if booking.Status != model.StatusConfirmed {
		return failure.Conflict("booking is not in confirmed status")
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found")
	}

	if room.Status == roomModel.StatusOccupied {
		return failure.Conflict("room is already occupied")
	}

	// Check-in only on the booking's check-in date, judged in the
	// business-local timezone.
	if timezone.ToAppTime(booking.CheckInDate).Format(constant.DateFormat) != timezone.Today() {
		return failure.BadRequestFromString("check-in is only allowed on the booking's check-in date")
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin check-in")

		return fmt.Errorf("failed to begin check-in: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback check-in")
			}
		}
	}()

	guestMod := map[string]any{
		guestModel.FieldFullName: req.GuestName,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err = s.guestRepo.UpdateTx(ctx, tx, guestMod, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update guest name")

		return fmt.Errorf("failed to update guest name: %w", err)
	}

	if err = s.updateBookingStatusTx(ctx, tx, bookingID, model.StatusConfirmed, model.StatusCheckedIn, actor); err != nil {
		return err
	}

	roomMod := map[string]any{
		roomModel.FieldStatus:           roomModel.StatusOccupied,
		roomModel.FieldCurrentGuestName: req.GuestName,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        actor,
	}

	matched, err := s.roomRepo.UpdateMatchedTx(ctx, tx, roomMod, roomNotOccupiedFilter(req.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	if matched == 0 {
		return failure.Conflict("room is already occupied")
	}

	if err = s.appendStatusLogTx(ctx, tx, req.RoomID, room.Status, roomModel.StatusOccupied, actor); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit check-in")

		return fmt.Errorf("failed to commit check-in: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// CheckOut moves a checked_in booking to checked_out and its occupied room
// to being_cleaned with the guest name cleared.
func (s *serviceImpl) CheckOut(ctx context.Context, bookingID string, req dto.CheckOutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if booking.RoomID != req.RoomID {
		return failure.BadRequestFromString("booking does not belong to this room")
	}

	if booking.Status != model.StatusCheckedIn {
		return failure.Conflict("booking is not checked in")
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found")
	}

	if room.Status != roomModel.StatusOccupied {
		return failure.Conflict("room is not occupied")
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin check-out")

		return fmt.Errorf("failed to begin check-out: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback check-out")
			}
		}
	}()

	if err = s.updateBookingStatusTx(ctx, tx, bookingID, model.StatusCheckedIn, model.StatusCheckedOut, actor); err != nil {
		return err
	}

	roomMod := map[string]any{
		roomModel.FieldStatus:           roomModel.StatusBeingCleaned,
		roomModel.FieldCurrentGuestName: nil,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        actor,
	}

	matched, err := s.roomRepo.UpdateMatchedTx(ctx, tx, roomMod, roomStatusFilter(req.RoomID, roomModel.StatusOccupied))
	if err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	if matched == 0 {
		return failure.Conflict("room is not occupied")
	}

	if err = s.appendStatusLogTx(ctx, tx, req.RoomID, room.Status, roomModel.StatusBeingCleaned, actor); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit check-out")

		return fmt.Errorf("failed to commit check-out: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Cancel voids a booking that has not been checked in yet.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	mod := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	matched, err := s.repo.UpdateMatched(ctx, mod, bookingStatusFilter(bookingID, model.StatusConfirmed))
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if matched == 0 {
		return failure.Conflict("booking is not in confirmed status")
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) updateBookingStatusTx(ctx context.Context, tx *sqlx.Tx, bookingID, expected, next, actor string) error {
	mod := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	matched, err := s.repo.UpdateMatchedTx(ctx, tx, mod, bookingStatusFilter(bookingID, expected))
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if matched == 0 {
		return failure.Conflict(fmt.Sprintf("booking is not in %s status", expected))
	}

	return nil
}

func (s *serviceImpl) appendStatusLogTx(ctx context.Context, tx *sqlx.Tx, roomID, prev, next, actor string) error {
	statusLog := roomModel.StatusLog{
		ID:             uuid.NewString(),
		RoomID:         roomID,
		PreviousStatus: &prev,
		NewStatus:      next,
		ChangedBy:      actor,
		ChangedAt:      timezone.Now(),
	}

	if err := s.statusLogRepo.InsertTx(ctx, tx, statusLog); err != nil {
		log.Error().Err(err).Msg("failed to append room status log")

		return fmt.Errorf("failed to append room status log: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, "room:")
	}()
}

func bookingStatusFilter(bookingID, expectedStatus string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "expected_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    expectedStatus,
				Table:    model.TableName,
			},
		},
	}
}

func roomStatusFilter(roomID, expectedStatus string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				ArgName:  "expected_status",
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    expectedStatus,
				Table:    roomModel.TableName,
			},
		},
	}
}

func roomNotOccupiedFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				ArgName:  "excluded_status",
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    roomModel.StatusOccupied,
				Table:    roomModel.TableName,
			},
		},
	}
}
