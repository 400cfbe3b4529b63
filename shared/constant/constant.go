package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyUserName  contextKey = "user_full_name"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeyTokenExp  contextKey = "token_exp"
)

// Staff roles matching the staff_role enum in the database.
const (
	RoleManager      = "manager"
	RoleReception    = "reception"
	RoleHousekeeping = "housekeeping"
)

// Sign-out reasons surfaced to the client alongside the login redirect.
const (
	SignOutReasonNoProfile   = "no_profile"
	SignOutReasonDeactivated = "deactivated"
)

// LoginPath is the client-side route unauthenticated requests are pointed at.
const LoginPath = "/login"

// Cache key prefixes. Denylist entries make revoked tokens unusable before
// expiry; profile entries hold the staff role and name behind an account.
const (
	CacheKeyPrefixTokenDenylist = "auth:denylist"
	CacheKeyPrefixStaffProfile  = "auth:profile"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateTimeFormat = time.RFC3339
	// DateFormat is the wire format for calendar dates (check-in,
	// attendance). Always interpreted in the business-local timezone.
	DateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
