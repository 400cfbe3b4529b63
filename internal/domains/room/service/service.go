package service

import (
	"context"
	"fmt"
	"smeraldo/config"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/room/model"
	"smeraldo/internal/domains/room/model/dto"
	"smeraldo/internal/domains/room/repository"
	"smeraldo/shared"
	"smeraldo/shared/cache"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/failure"
	"smeraldo/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	StatusCounts(ctx context.Context) (dto.StatusCounts, error)
	StatusLogs(ctx context.Context, roomID string, params gDto.QueryParams) (dto.GetStatusLogsResponse, error)
	MarkReady(ctx context.Context, roomID string) error
	OverrideStatus(ctx context.Context, roomID string, req dto.OverrideStatusRequest) error
}

type serviceImpl struct {
	repo          repository.Room
	statusLogRepo repository.StatusLog
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Room, statusLogRepo repository.StatusLog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:          repo,
		statusLogRepo: statusLogRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	numberFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    req.RoomNumber,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, numberFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exists {
		return failure.Conflict("room number already exists")
	}

	if err = s.repo.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	// Floor then room number, matching how the desk board is read.
	if req.SortBy == constant.Empty {
		req.SortBy = fmt.Sprintf("%s %s, %s", model.FieldFloor, gDto.SortDirAsc, model.FieldRoomNumber)
		req.SortDir = gDto.SortDirAsc
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found")
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) StatusCounts(ctx context.Context) (res dto.StatusCounts, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StatusCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for status counts")

		return res, fmt.Errorf("failed to get rooms for status counts: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) StatusLogs(ctx context.Context, roomID string, params gDto.QueryParams) (res dto.GetStatusLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StatusLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.StatusLogFieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.StatusLogTableName,
			},
		},
	}

	total, err := s.statusLogRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room status logs")

		return res, fmt.Errorf("failed to count room status logs: %w", err)
	}

	if params.SortBy == constant.Empty {
		params.SortBy = model.StatusLogFieldChangedAt
		params.SortDir = gDto.SortDirDesc
	}

	models, err := s.statusLogRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room status logs")

		return res, fmt.Errorf("failed to get room status logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// MarkReady is the housekeeping action. Any prior status is accepted; the
// guest name is cleared and an audit row is appended.
func (s *serviceImpl) MarkReady(ctx context.Context, roomID string) error {
	return s.transition(ctx, roomID, model.StatusReady, nil)
}

// OverrideStatus forces a room into any of the five statuses. Used for manual
// correction at the desk; still audited.
func (s *serviceImpl) OverrideStatus(ctx context.Context, roomID string, req dto.OverrideStatusRequest) error {
	return s.transition(ctx, roomID, req.Status, req.Notes)
}

// transition moves a room to newStatus with a compare-and-swap on the status
// read at the start, so two concurrent transitions cannot both apply. The
// status update and the audit insert commit together.
func (s *serviceImpl) transition(ctx context.Context, roomID, newStatus string, notes *string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.repo.Get(ctx, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found")
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin room transition")

		return fmt.Errorf("failed to begin room transition: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback room transition")
			}
		}
	}()

	mod := map[string]any{
		model.FieldStatus:        newStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if newStatus != model.StatusOccupied {
		mod[model.FieldCurrentGuestName] = nil
	}

	matched, err := s.repo.UpdateMatchedTx(ctx, tx, mod, statusGuardFilter(roomID, room.Status))
	if err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	if matched == 0 {
		return failure.Conflict("room status changed concurrently, retry")
	}

	prev := room.Status
	statusLog := model.StatusLog{
		ID:             uuid.NewString(),
		RoomID:         roomID,
		PreviousStatus: &prev,
		NewStatus:      newStatus,
		ChangedBy:      actor,
		ChangedAt:      timezone.Now(),
		Notes:          notes,
	}

	if err = s.statusLogRepo.InsertTx(ctx, tx, statusLog); err != nil {
		log.Error().Err(err).Msg("failed to append room status log")

		return fmt.Errorf("failed to append room status log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit room transition")

		return fmt.Errorf("failed to commit room transition: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func statusGuardFilter(roomID, expectedStatus string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
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
