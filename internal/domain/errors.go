package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound  = "item not found"
	ErrMsgInvalidItemID = "invalid item identifier"

	// Draw errors
	ErrMsgNoCandidates           = "no candidates match query"
	ErrMsgInsufficientCandidates = "not enough candidates to draw"

	// Pool errors
	ErrMsgIndexOutOfRange   = "position out of range"
	ErrMsgScenarioNotFound  = "scenario not found"
	ErrMsgScenarioNotLoaded = "no scenario loaded"

	// Strategy errors
	ErrMsgUnknownStrategy = "unknown randomization strategy"
	ErrMsgUnknownContext  = "unknown randomization context"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrInvalidItemID = errors.New(ErrMsgInvalidItemID)

	// ErrNoCandidates means a draw was requested against a query that matches
	// nothing in the catalog. It indicates a malformed or too small catalog,
	// never an ordinary "skip" decision.
	ErrNoCandidates           = errors.New(ErrMsgNoCandidates)
	ErrInsufficientCandidates = errors.New(ErrMsgInsufficientCandidates)

	// Pool errors
	ErrIndexOutOfRange   = errors.New(ErrMsgIndexOutOfRange)
	ErrScenarioNotFound  = errors.New(ErrMsgScenarioNotFound)
	ErrScenarioNotLoaded = errors.New(ErrMsgScenarioNotLoaded)

	// Strategy errors
	ErrUnknownStrategy = errors.New(ErrMsgUnknownStrategy)
	ErrUnknownContext  = errors.New(ErrMsgUnknownContext)
)
