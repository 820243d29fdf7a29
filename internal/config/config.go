package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	Version     string

	ItemsPath string `validate:"required"`
	PoolsDir  string `validate:"required"`
	// Scenario loaded at startup; empty leaves the service idle until a host loads one
	Scenario string `validate:"omitempty,max=64"`

	// Seed for the shared random engine; 0 seeds from the clock
	Seed      int64
	CacheSize int `validate:"min=1"`

	WorldStrategy string `validate:"required,strategy"`
	NPCStrategy   string `validate:"required,strategy"`
	HeroStrategy  string `validate:"required,strategy"`
	StashStrategy string `validate:"required,strategy"`

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	defaults := randomizer.DefaultKinds()
	cfg := &Config{
		Port:        getEnvAsInt(EnvPort, DefaultPort),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),

		ItemsPath: getEnv(EnvItemsPath, ConfigPathItems),
		PoolsDir:  getEnv(EnvPoolsDir, ConfigPathPools),
		Scenario:  strings.TrimSpace(getEnv(EnvScenario, "")),
		CacheSize: getEnvAsInt(EnvCacheSize, DefaultCacheSize),

		WorldStrategy: getEnv(EnvWorldStrategy, string(defaults[randomizer.ContextWorld])),
		NPCStrategy:   getEnv(EnvNPCStrategy, string(defaults[randomizer.ContextNPC])),
		HeroStrategy:  getEnv(EnvHeroStrategy, string(defaults[randomizer.ContextHero])),
		StashStrategy: getEnv(EnvStashStrategy, string(defaults[randomizer.ContextStash])),

		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, 10*time.Second),
	}

	seed, err := strconv.ParseInt(getEnv(EnvSeed, "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
	}
	cfg.Seed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags, naming every offending field
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Strategies maps every randomization context to its configured kind
func (c *Config) Strategies() map[randomizer.Context]randomizer.Kind {
	parse := func(s string) randomizer.Kind {
		k, _ := randomizer.ParseKind(s)
		return k
	}
	return map[randomizer.Context]randomizer.Kind{
		randomizer.ContextWorld: parse(c.WorldStrategy),
		randomizer.ContextNPC:   parse(c.NPCStrategy),
		randomizer.ContextHero:  parse(c.HeroStrategy),
		randomizer.ContextStash: parse(c.StashStrategy),
	}
}

// Addr returns the diagnostics listen address
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("strategy", validateStrategy)
	return v
}

func validateStrategy(fl validator.FieldLevel) bool {
	return randomizer.IsKind(fl.Field().String())
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
