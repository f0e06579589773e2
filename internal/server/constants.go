package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// SecurityAlertHighRate is logged while a client stays over its rate limit
const SecurityAlertHighRate = "SECURITY ALERT: Blocking high request rate"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Public path prefixes that bypass authentication and request logging
var PublicPaths = []string{
	"/healthz",
	"/version",
	"/metrics",
}

// Limits
const (
	MaxRequestBodyBytes = 1 << 20
	RateLimitWindow     = 5 * time.Minute
	HighRateLogEvery    = 100
	ReadHeaderTimeout   = 5 * time.Second
	RedactedValue       = "[REDACTED]"
)
