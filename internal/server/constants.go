package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Diagnostics server starting"
	LogMsgServerStopping   = "Diagnostics server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRateLimited      = "Blocking high request rate"
)

// HTTP header names
const (
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// Paths excluded from request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Preview rate limiting
const (
	DefaultPreviewLimit  = 60
	DefaultPreviewWindow = time.Minute
)

const readHeaderTimeout = 5 * time.Second
