package service

import (
	"context"
	"fmt"
	"smeraldo/config"
	"smeraldo/infras/jwt"
	"smeraldo/infras/otel"
	accountModel "smeraldo/internal/domains/account/model"
	accountRepo "smeraldo/internal/domains/account/repository"
	"smeraldo/internal/domains/auth/model/dto"
	staffService "smeraldo/internal/domains/staff/service"
	"smeraldo/shared"
	"smeraldo/shared/cache"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/failure"
	"smeraldo/shared/password"
	"smeraldo/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// RoleHomePath maps a staff role to its landing route after login. Unknown
// roles land on the login page.
func RoleHomePath(role string) string {
	switch role {
	case constant.RoleManager:
		return "/dashboard"
	case constant.RoleReception:
		return "/rooms"
	case constant.RoleHousekeeping:
		return "/my-rooms"
	default:
		return constant.LoginPath
	}
}

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, req dto.LogoutRequest) error
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, accountID string) error
}

type serviceImpl struct {
	accountRepo accountRepo.Account
	staff       staffService.Staff
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(accountRepo accountRepo.Account, staff staffService.Staff, cfg *config.Config, redisCache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		accountRepo: accountRepo,
		staff:       staff,
		cfg:         cfg,
		cache:       redisCache,
		otel:        otel,
		jwtService:  jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, err := s.accountRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if account.ID == constant.Empty {
		return res, failure.BadRequestFromString("invalid email or password")
	}

	if err := password.Verify(req.Password, account.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	profile, err := s.staff.ProfileByAccountID(ctx, account.ID)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("login attempt without staff profile")

		return res, failure.BadRequestFromString("no staff profile for this account")
	}

	if !profile.IsActive {
		return res, failure.BadRequestFromString("staff profile is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, account.ID, account.Email, profile.FullName, profile.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, profile.Role, profile.FullName, RoleHomePath(profile.Role))

	return res, nil
}

// Logout revokes the current access token, and the refresh token when the
// client sends it along. Revocation is a denylist entry that lives exactly as
// long as the token itself would have.
func (s *serviceImpl) Logout(ctx context.Context, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	tokenExp, _ := ctx.Value(constant.ContextKeyTokenExp).(time.Time)

	if tokenID == constant.Empty {
		return failure.Unauthorized("no active session")
	}

	if err = s.revoke(ctx, tokenID, tokenExp); err != nil {
		return err
	}

	if req.RefreshToken != constant.Empty {
		claims, validateErr := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
		if validateErr != nil {
			// Already unusable, nothing to revoke.
			return nil
		}

		if err = s.revoke(ctx, claims.TokenID, claims.ExpiresAt.Time); err != nil {
			return err
		}
	}

	return nil
}

// RefreshToken rotates the pair. The spent refresh token is revoked so it
// cannot be replayed for a second rotation.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	if s.isRevoked(ctx, claims.TokenID) {
		return res, failure.Unauthorized("refresh token has been revoked")
	}

	profile, err := s.staff.ProfileByAccountID(ctx, claims.UserID)
	if err != nil {
		log.Warn().Err(err).Str("account_id", claims.UserID).Msg("refresh attempt without staff profile")

		return res, failure.Unauthorized("no staff profile for this account")
	}

	if !profile.IsActive {
		return res, failure.Unauthorized("staff profile is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, claims.UserID, claims.Email, profile.FullName, profile.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err = s.revoke(ctx, claims.TokenID, claims.ExpiresAt.Time); err != nil {
		return res, err
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, accountID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, err := s.accountRepo.Get(ctx, shared.FilterByID(accountID, accountModel.FieldID, accountModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == constant.Empty {
		return failure.NotFound("account not found")
	}

	if err := password.Verify(req.OldPassword, account.Password); err != nil {
		return failure.BadRequestFromString("old password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	mod := map[string]any{
		accountModel.FieldPassword: hashedPassword,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   accountID,
	}

	if err = s.accountRepo.Update(ctx, mod, shared.FilterByID(accountID, accountModel.FieldID, accountModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := int(time.Until(expiresAt).Seconds())
	if ttl <= 0 {
		// Token already expired, denylist entry would be pointless.
		return nil
	}

	key := shared.BuildCacheKey(constant.CacheKeyPrefixTokenDenylist, tokenID)

	if err := s.cache.Save(ctx, key, "revoked", ttl); err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to denylist token")

		return fmt.Errorf("failed to denylist token: %w", err)
	}

	return nil
}

func (s *serviceImpl) isRevoked(ctx context.Context, tokenID string) bool {
	var marker string

	err := s.cache.Get(ctx, shared.BuildCacheKey(constant.CacheKeyPrefixTokenDenylist, tokenID), &marker)

	return err == nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    accountModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    accountModel.TableName,
			},
		},
	}
}
