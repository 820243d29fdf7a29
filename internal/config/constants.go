package config

const (
	// Configuration file paths
	ConfigPathItems = "configs/items.json"
	ConfigPathPools = "configs/pools"
)

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvVersion         = "VERSION"
	EnvItemsPath       = "ITEMS_PATH"
	EnvPoolsDir        = "POOLS_DIR"
	EnvScenario        = "SCENARIO"
	EnvSeed            = "RANDOMIZER_SEED"
	EnvCacheSize       = "DRAW_CACHE_SIZE"
	EnvWorldStrategy   = "WORLD_STRATEGY"
	EnvNPCStrategy     = "NPC_STRATEGY"
	EnvHeroStrategy    = "HERO_STRATEGY"
	EnvStashStrategy   = "STASH_STRATEGY"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultCacheSize   = 128
)
