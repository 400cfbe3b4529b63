package service

import (
	"context"
	"fmt"
	"smeraldo/config"
	"smeraldo/infras/otel"
	accountModel "smeraldo/internal/domains/account/model"
	accountRepo "smeraldo/internal/domains/account/repository"
	"smeraldo/internal/domains/staff/model"
	"smeraldo/internal/domains/staff/model/dto"
	"smeraldo/internal/domains/staff/repository"
	"smeraldo/shared"
	"smeraldo/shared/cache"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/failure"
	gModel "smeraldo/shared/model"
	"smeraldo/shared/password"
	"smeraldo/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	ProfileByAccountID(ctx context.Context, accountID string) (dto.StaffProfile, error)
	ActiveStaff(ctx context.Context) ([]dto.StaffProfile, error)
}

type serviceImpl struct {
	repo        repository.Staff
	accountRepo accountRepo.Account
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Staff, accountRepo accountRepo.Account, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:        repo,
		accountRepo: accountRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create provisions a login account and its staff profile in one transaction
// so a failed profile insert never leaves an orphaned credential behind.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    accountModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    accountModel.TableName,
			},
		},
	}

	exists, err := s.accountRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if account exists")

		return fmt.Errorf("failed to check if account exists: %w", err)
	}

	if exists {
		return failure.Conflict("email already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.NewString()
	account := accountModel.Account{
		ID:       id,
		Email:    req.Email,
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin staff provisioning transaction")

		return fmt.Errorf("failed to begin staff provisioning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback staff provisioning")
			}
		}
	}()

	if err = s.accountRepo.InsertTx(ctx, tx, account); err != nil {
		log.Error().Err(err).Msg("failed to create account")

		return fmt.Errorf("failed to create account: %w", err)
	}

	if err = s.repo.InsertTx(ctx, tx, req.ToModel(id, actor)); err != nil {
		log.Error().Err(err).Msg("failed to create staff profile")

		return fmt.Errorf("failed to create staff profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit staff provisioning")

		return fmt.Errorf("failed to commit staff provisioning: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("staff member not found")
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff member to cache")
		}
	}()

	return res, nil
}

// Update edits the profile. Deactivation also drops the cached session
// profile so the next request from that account is signed out instead of
// riding the stale cache until it expires.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return failure.NotFound("staff member not found")
	}

	if err = s.repo.Update(ctx, req.ToUpdateMap(actor), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update staff member")

		return fmt.Errorf("failed to update staff member: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(constant.CacheKeyPrefixStaffProfile, id)); err != nil {
			log.Error().Err(err).Msg("failed to drop session profile cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetStaff)
		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()

	return nil
}

// ProfileByAccountID resolves the staff profile behind an account, cache
// first. Missing profile is a not-found failure; an inactive profile is
// returned as-is and the caller decides what that means.
func (s *serviceImpl) ProfileByAccountID(ctx context.Context, accountID string) (res dto.StaffProfile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProfileByAccountID")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyPrefixStaffProfile, accountID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(accountID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up staff profile")

		return res, fmt.Errorf("failed to look up staff profile: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("staff profile not found")
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.ProfileTTL); err != nil {
			log.Error().Err(err).Msg("failed to save session profile to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ActiveStaff(ctx context.Context) (res []dto.StaffProfile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active staff")

		return res, fmt.Errorf("failed to get active staff: %w", err)
	}

	res = make([]dto.StaffProfile, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}
