package utils

import (
	"time"
)

// Context keys carried across layer boundaries
type ContextKey string

const (
	// RequestIDKey carries the inbound X-Request-ID through business flows
	RequestIDKey ContextKey = "request_id"

	// UserAgentKey carries the caller's User-Agent header
	UserAgentKey ContextKey = "user_agent"

	// IPAddressKey carries the caller's IP address
	IPAddressKey ContextKey = "ip_address"

	// EndpointKey carries the matched route path
	EndpointKey ContextKey = "endpoint"

	// CancelFuncKey carries the request context's cancel func so flows that
	// outlive the handler can release it
	CancelFuncKey ContextKey = "cancel_func"
)

// Token constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Fan-out constants
const (
	// DefaultFollowerPageSize is the page size used when walking a user's follower list
	DefaultFollowerPageSize = 50

	// DefaultNotificationBatchSize is the maximum number of recipients per notification call
	DefaultNotificationBatchSize = 50

	// MaxFollowerPages bounds the follower walk against an upstream that keeps
	// reporting a growing total_pages
	MaxFollowerPages = 10000
)

// Release types accepted by the catalog service
const (
	ReleaseTypeAlbum  = "album"
	ReleaseTypeSingle = "single"
	ReleaseTypeEP     = "ep"
)

// ReleaseDateLayout is the calendar date format accepted for release dates
const ReleaseDateLayout = "2006-01-02"
