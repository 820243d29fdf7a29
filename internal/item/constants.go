package item

// ==================== Configuration File Names ====================

// Item configuration file names
const (
	// ConfigFileName is the name of the item catalog file
	ConfigFileName = "items.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read item catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse item catalog: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemInvalidID         = "%w: item at index %d has invalid id %q"
	ErrFmtItemEmptyName         = "%w: item '%s' has empty name"
	ErrFmtItemEmptyType         = "%w: item '%s' has empty type"
	ErrFmtItemUnknownCapability = "%w: item '%s' has unknown capability %q"
)
