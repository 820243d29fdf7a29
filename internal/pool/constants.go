package pool

// File extension for scenario pool documents
const poolFileExt = ".yaml"

// Error messages
const (
	ErrMsgReadDirFailed    = "failed to read pool directory: %w"
	ErrMsgReadFileFailed   = "failed to read file: %w"
	ErrMsgParseYAMLFailed  = "failed to parse YAML: %w"
	ErrMsgLoadPoolFailed   = "failed to load pool %s: %w"
	ErrFmtScenarioMismatch = "%w: file %s declares scenario %q"
	ErrFmtInvalidEntry     = "%w: scenario %s entry %d: %w"
	ErrFmtDuplicateScen    = "%w: scenario %s defined twice"
)

// Log messages
const (
	LogMsgDroppedUnknownItem = "Dropping pool entry absent from catalog"
	LogMsgPoolsLoaded        = "Scenario pools loaded"
)

// Log field keys
const (
	LogFieldPosition = "position"
	LogFieldItemID   = "item_id"
	LogFieldDir      = "dir"
	LogFieldCount    = "count"
)
