package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvItemsPath,
	EnvPoolsDir,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("%s is not set - please update your .env file to include this field (expected: %s)", EnvSchemaVersion, ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that are legal but probably unintended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvSeed) != "" && os.Getenv(EnvEnvironment) == "prod" {
		warnings = append(warnings, EnvSeed+" is fixed in production - every session will draw the same items")
	}

	if strings.EqualFold(os.Getenv(EnvWorldStrategy), "identity") {
		warnings = append(warnings, EnvWorldStrategy+" is identity - world items will not be randomized")
	}

	if strings.EqualFold(os.Getenv(EnvWorldStrategy), string(randomizer.KindTreasureHunt)) && os.Getenv(EnvScenario) != "" {
		warnings = append(warnings, fmt.Sprintf("%s is %s - startup fails unless %s has at least %d good treasure slots",
			EnvWorldStrategy, randomizer.KindTreasureHunt, os.Getenv(EnvScenario), randomizer.TreasureHuntIdolCount))
	}

	return warnings, nil
}
