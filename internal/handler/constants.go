package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidItemID         = "Invalid item id"
	ErrMsgItemNotFound          = "Item not found"
	ErrMsgScenarioNotFound      = "Scenario not found"
	ErrMsgScenarioNotLoaded     = "No scenario loaded"
	ErrMsgListScenariosFailed   = "Failed to list scenarios"
	ErrMsgPreviewFailed         = "Failed to preview scenario"
)

// Validation messages keyed by validator tag
const (
	ValidationMsgRequired = "This field is required"
	ValidationMsgScenario = "Must contain only lowercase letters, digits and underscores"
	ValidationMsgStrategy = "Unknown strategy"
	ValidationMsgMax      = "Must be at most %s characters"
	ValidationMsgInvalid  = "Invalid value"
	ValidationMsgFormat   = "Invalid request format"
)

// URL and query parameter names
const (
	ParamScenario = "scenario"
	ParamItemID   = "id"
	QueryStrategy = "strategy"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgPreviewFailed   = "Preview failed"
	LogMsgPreviewServed   = "Preview served"
	LogMsgScenariosFailed = "Listing scenarios failed"
	LogMsgNotReady        = "Readiness check failed"
)
