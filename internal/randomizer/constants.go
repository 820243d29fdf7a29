package randomizer

// ============================================================================
// Roll Bands
// ============================================================================

// Action world rolls 0-99 for every slot that is neither weapon nor essential.
const (
	ActionWorldRollSides   = 100
	ActionWorldCoinBelow   = 10
	ActionWorldBlastBelow  = 50
	ActionWorldWeaponBelow = 90
)

// Hard NPC: pistols keep a pistol one time in ten, other weapons roll 0-99.
const (
	HardNPCPistolSides     = 10
	HardNPCWeaponSides     = 100
	HardNPCShotgunBelow    = 45
	HardNPCSMGOrRifleBelow = 90
)

// Chain reaction NPC rolls 0-9 first, then 0-99 for the weapon tier.
const (
	ChainReactionSides        = 10
	ChainReactionCoinBelow    = 4
	ChainReactionBoosterBelow = 8
	ChainReactionTierSides    = 100
	ChainReactionShotgunBelow = 40
	ChainReactionRifleBelow   = 80
)

// TreasureHuntIdolCount is how many treasure slots receive the gold idol
const TreasureHuntIdolCount = 10

// ============================================================================
// Decision Kinds
// ============================================================================

// Decision labels recorded for every randomize call
const (
	DecisionIdentity       = "identity"
	DecisionReplace        = "replace"
	DecisionSkipUnknown    = "skip_unknown"
	DecisionSkipIneligible = "skip_ineligible"
	DecisionQueueExhausted = "queue_exhausted"
	DecisionDrawFailed     = "draw_failed"
	DecisionDisabled       = "disabled"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDecision           = "Randomize decision"
	LogMsgDrawFailed         = "Draw failed, keeping original item"
	LogMsgQueueBuilt         = "World queue built"
	LogMsgInitializeFailed   = "Strategy initialization failed"
	LogMsgScenarioLoaded     = "Scenario loaded"
	LogMsgRandomizerDisabled = "Randomizer disabled"
)

// Log field keys
const (
	LogFieldStrategy   = "strategy"
	LogFieldDecision   = "decision"
	LogFieldSource     = "source"
	LogFieldResult     = "result"
	LogFieldScenario   = "scenario"
	LogFieldContext    = "context"
	LogFieldPoolSize   = "pool_size"
	LogFieldWeapons    = "weapons"
	LogFieldEssentials = "essentials"
	LogFieldRandom     = "random"
	LogFieldError      = "error"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgNilDeps             = "strategy dependencies require a catalog and a draw layer"
	ErrFmtMissingFixedItem    = "%w: %s needs fixed item %s"
	ErrFmtInitializeFailed    = "%s initialize %s: %w"
	ErrFmtUnknownStrategy     = "%w: %q"
	ErrFmtUnknownStrategyHint = "%w: %q (did you mean %q?)"
)
