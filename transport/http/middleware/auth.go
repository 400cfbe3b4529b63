package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"smeraldo/infras/jwt"
	"smeraldo/infras/otel"
	staffDto "smeraldo/internal/domains/staff/model/dto"
	"smeraldo/shared"
	"smeraldo/shared/cache"
	"smeraldo/shared/constant"
	"smeraldo/shared/failure"
	"smeraldo/transport/http/response"
	"time"

	"github.com/rs/zerolog/log"
)

// ProfileResolver looks up the staff profile behind an authenticated account.
// Implemented by the staff service with a short-lived cache in front of the
// store.
type ProfileResolver interface {
	ProfileByAccountID(ctx context.Context, accountID string) (staffDto.StaffProfile, error)
}

// AuthRole authenticates requests and gates them by staff role.
type AuthRole interface {
	Authenticate(http.Handler) http.Handler
	RequireRole(roles ...string) func(http.Handler) http.Handler
}

type authRoleImpl struct {
	jwtService jwt.JWT
	cache      cache.RedisCache
	profiles   ProfileResolver
	otel       otel.Otel
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, redisCache cache.RedisCache, profiles ProfileResolver, otl otel.Otel) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		cache:      redisCache,
		profiles:   profiles,
		otel:       otl,
	}
}

// Authenticate validates the bearer token, rejects revoked tokens, and
// resolves the staff profile once per request. Role and full name ride the
// request context from here on; downstream checks never hit the store again.
//
// A token whose account has no profile row, or whose profile is deactivated,
// is signed out with a reason code so the login screen can explain itself.
func (m *authRoleImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			err := failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if claims.UserID == "" {
			log.Error().Msg("JWT claims: UserID is empty")

			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			return
		}

		if m.isRevoked(ctx, claims.TokenID) {
			err := failure.Unauthorized("Token has been revoked")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		profile, err := m.profiles.ProfileByAccountID(ctx, claims.UserID)
		if err != nil {
			if failure.GetCode(err) == http.StatusNotFound {
				scope.TraceError(err)
				response.WithSignOut(writer, failure.Unauthorized("No staff profile for this account"), constant.SignOutReasonNoProfile)

				return
			}

			log.Error().Err(err).Msg("failed to resolve staff profile")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if !profile.IsActive {
			scope.TraceError(failure.ForbiddenError)
			response.WithSignOut(writer, failure.Unauthorized("Staff profile has been deactivated"), constant.SignOutReasonDeactivated)

			return
		}

		var tokenExp time.Time
		if claims.ExpiresAt != nil {
			tokenExp = claims.ExpiresAt.Time
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, profile.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, profile.FullName)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenExp, tokenExp)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireRole gates a route group by the role resolved during Authenticate.
// When the context carries no role the profile is looked up again, so the
// check holds even on a chain that skipped the resolver. The failure is the
// same for a wrong role and for a missing or deactivated profile.
func (m *authRoleImpl) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
			defer scope.End()

			userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
			if userRole == "" {
				userRole = m.resolveRole(ctx)
			}

			if userRole == "" || !slices.Contains(roles, userRole) {
				err := failure.ForbiddenError
				scope.SetAttributes(map[string]any{
					"user_role":     userRole,
					"allowed_roles": roles,
				})
				scope.TraceError(err)
				response.WithError(writer, err)

				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// resolveRole looks the staff profile up from the authenticated account when
// the context carries no role. Returns empty for a missing or deactivated
// profile so the caller falls through to the forbidden response.
func (m *authRoleImpl) resolveRole(ctx context.Context) string {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return ""
	}

	profile, err := m.profiles.ProfileByAccountID(ctx, userID)
	if err != nil {
		if failure.GetCode(err) != http.StatusNotFound {
			log.Error().Err(err).Msg("failed to resolve staff profile for role check")
		}

		return ""
	}

	if !profile.IsActive {
		return ""
	}

	return profile.Role
}

// isRevoked checks the logout denylist. A cache error other than a miss is
// logged and treated as not revoked.
func (m *authRoleImpl) isRevoked(ctx context.Context, tokenID string) bool {
	if tokenID == "" {
		return false
	}

	var marker string

	err := m.cache.Get(ctx, shared.BuildCacheKey(constant.CacheKeyPrefixTokenDenylist, tokenID), &marker)
	if err == nil {
		return true
	}

	if !errors.Is(err, cache.Nil) {
		log.Error().Err(err).Msg("failed to check token denylist")
	}

	return false
}
