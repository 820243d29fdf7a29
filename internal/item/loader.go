package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateID = errors.New("duplicate item id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"` // inventory category icon
	Capabilities []string `json:"capabilities"`
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	// LoadCatalog loads, validates and builds the catalog in one step.
	LoadCatalog(path string) (*Catalog, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an item catalog JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[domain.ItemID]bool, len(config.Items))
	for i := range config.Items {
		if _, err := validateDef(i, &config.Items[i], seen); err != nil {
			return err
		}
	}

	return nil
}

func (l *itemLoader) LoadCatalog(path string) (*Catalog, error) {
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}

	if err := l.Validate(config); err != nil {
		return nil, err
	}

	catalog, err := BuildCatalog(config)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgCatalogLoaded, "path", path, "version", config.Version, "items", catalog.Len())
	return catalog, nil
}

// BuildCatalog converts validated definitions into an immutable Catalog.
func BuildCatalog(config *Config) (*Catalog, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	items := make([]domain.Item, 0, len(config.Items))
	seen := make(map[domain.ItemID]bool, len(config.Items))
	for i := range config.Items {
		item, err := validateDef(i, &config.Items[i], seen)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return NewCatalog(items), nil
}

func validateDef(index int, def *Def, seen map[domain.ItemID]bool) (domain.Item, error) {
	id, err := domain.ParseItemID(def.ID)
	if err != nil {
		return domain.Item{}, fmt.Errorf(ErrFmtItemInvalidID, ErrInvalidConfig, index, def.ID)
	}

	if seen[id] {
		return domain.Item{}, fmt.Errorf("%w: '%s'", ErrDuplicateID, id)
	}
	seen[id] = true

	if def.Name == "" {
		return domain.Item{}, fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidConfig, id)
	}
	if def.Type == "" {
		return domain.Item{}, fmt.Errorf(ErrFmtItemEmptyType, ErrInvalidConfig, def.Name)
	}

	var caps domain.Capability
	for _, name := range def.Capabilities {
		c, ok := domain.ParseCapability(name)
		if !ok {
			return domain.Item{}, fmt.Errorf(ErrFmtItemUnknownCapability, ErrInvalidConfig, def.Name, name)
		}
		caps |= c
	}

	return domain.Item{
		ID:           id,
		Name:         def.Name,
		Type:         def.Type,
		Capabilities: caps,
	}, nil
}
