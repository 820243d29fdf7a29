package bootstrap

// previewSeedSalt derives the preview draw seed from the live one
const previewSeedSalt int64 = 0x5DEECE66D

// Log messages
const (
	LogMsgCatalogReady         = "Item catalog ready"
	LogMsgPoolsReady           = "Scenario pools ready"
	LogMsgServiceReady         = "Randomizer service ready"
	LogMsgScenarioLoadFailed   = "Startup scenario failed to load"
	LogMsgShuttingDownServer   = "Shutting down diagnostics server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgRandomizersDisabled  = "Randomizers disabled"
	LogMsgServerStopped        = "Server stopped"
)

// Error format strings
const (
	ErrFmtLoadCatalog  = "load item catalog: %w"
	ErrFmtLoadPools    = "load scenario pools: %w"
	ErrFmtNewDraw      = "create draw repository: %w"
	ErrFmtNewService   = "create randomizer service: %w"
	ErrFmtLoadScenario = "load scenario %s: %w"
)
