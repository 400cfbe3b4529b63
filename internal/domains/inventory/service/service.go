package service

import (
	"context"
	"fmt"
	"smeraldo/config"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/inventory/model"
	"smeraldo/internal/domains/inventory/model/dto"
	"smeraldo/internal/domains/inventory/repository"
	"smeraldo/shared"
	"smeraldo/shared/cache"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/failure"
	"smeraldo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetItem    = "inventory:get"
	cacheGetAllItem = "inventory:gets"
	cacheCountItem  = "inventory:count"
)

type Inventory interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) error
	GetAllItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetItemsResponse, error)
	CountItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetItem(ctx context.Context, id string) (dto.ItemResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) error
	DeleteItem(ctx context.Context, id string) error
	LowStockItems(ctx context.Context) (dto.GetItemsResponse, error)
	Move(ctx context.Context, req dto.MoveStockRequest) error
	Movements(ctx context.Context, itemID string, params gDto.QueryParams) (dto.GetMovementsResponse, error)
}

type serviceImpl struct {
	repo         repository.Inventory
	movementRepo repository.Movement
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Inventory, movementRepo repository.Movement, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:         repo,
		movementRepo: movementRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateItem(ctx context.Context, req dto.CreateItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create inventory item")

		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAllItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory items")

		return res, nil
	}

	total, err := s.CountItems(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	// Category then name, matching how the storeroom list is read.
	if req.SortBy == constant.Empty {
		req.SortBy = fmt.Sprintf("%s %s, %s", model.FieldCategory, gDto.SortDirAsc, model.FieldName)
		req.SortDir = gDto.SortDirAsc
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory items")

		return res, fmt.Errorf("failed to get inventory items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CountItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetItem(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item")

		return res, fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("inventory item not found")
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inventory item exists")

		return fmt.Errorf("failed to check if inventory item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory item not found")
	}

	if err = s.repo.Update(ctx, req.ToUpdateMap(actor), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update inventory item")

		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inventory item exists")

		return fmt.Errorf("failed to check if inventory item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory item not found")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory item")

		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) LowStockItems(ctx context.Context) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LowStockItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Operator: gDto.FilterPlainQuery,
				Value:    "inventory_items.current_stock <= inventory_items.low_stock_threshold",
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get low stock items")

		return res, fmt.Errorf("failed to get low stock items: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return res, nil
}

// Move records a stock movement and applies its delta to the item in one
// transaction. A stock_out larger than the current stock is refused by the
// conditional update.
func (s *serviceImpl) Move(ctx context.Context, req dto.MoveStockRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Move")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.ItemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inventory item exists")

		return fmt.Errorf("failed to check if inventory item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory item not found")
	}

	movementDate, err := timezone.Parse(constant.DateFormat, req.MovementDate)
	if err != nil {
		return failure.BadRequestFromString("invalid movement_date")
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin stock movement")

		return fmt.Errorf("failed to begin stock movement: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback stock movement")
			}
		}
	}()

	if err = s.movementRepo.InsertTx(ctx, tx, req.ToModel(movementDate, actor)); err != nil {
		log.Error().Err(err).Msg("failed to record stock movement")

		return fmt.Errorf("failed to record stock movement: %w", err)
	}

	matched, err := s.repo.AdjustStockTx(ctx, tx, req.ItemID, req.Delta())
	if err != nil {
		log.Error().Err(err).Msg("failed to adjust stock")

		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	if matched == 0 {
		return failure.Conflict("insufficient stock for movement")
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit stock movement")

		return fmt.Errorf("failed to commit stock movement: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Movements(ctx context.Context, itemID string, params gDto.QueryParams) (res dto.GetMovementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Movements")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.MovementFieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    itemID,
				Table:    model.MovementTableName,
			},
		},
	}

	total, err := s.movementRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stock movements")

		return res, fmt.Errorf("failed to count stock movements: %w", err)
	}

	if params.SortBy == constant.Empty {
		params.SortBy = model.MovementFieldDate
		params.SortDir = gDto.SortDirDesc
	}

	models, err := s.movementRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock movements")

		return res, fmt.Errorf("failed to get stock movements: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetItem)
		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()
}
