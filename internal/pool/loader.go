package pool

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
	"github.com/osse101/ItemRandomizer_Go/internal/validation"
)

// ErrInvalidConfig is returned for pool documents that parse but make no sense
var ErrInvalidConfig = errors.New("invalid pool configuration")

// Definition is one scenario pool document
type Definition struct {
	Scenario    domain.Scenario `json:"scenario"`
	Description string          `json:"description,omitempty"`
	Items       []domain.ItemID `json:"items"`
}

// Loader reads and caches scenario pool documents from a directory,
// one <scenario>.yaml file per scenario.
type Loader struct {
	dir             string
	schemaValidator validation.SchemaValidator

	mu     sync.RWMutex
	defs   map[domain.Scenario]*Definition
	loaded bool
}

// NewLoader creates a new pool loader
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:             dir,
		schemaValidator: validation.NewSchemaValidator(),
		defs:            make(map[domain.Scenario]*Definition),
	}
}

// Load reads every YAML pool document in the directory
func (l *Loader) Load() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked()
}

func (l *Loader) loadLocked() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDirFailed, err)
	}

	defs := make(map[domain.Scenario]*Definition)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), poolFileExt) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), poolFileExt)
		def, err := l.loadFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf(ErrMsgLoadPoolFailed, name, err)
		}
		if string(def.Scenario) != name {
			return fmt.Errorf(ErrFmtScenarioMismatch, ErrInvalidConfig, entry.Name(), def.Scenario)
		}
		if _, dup := defs[def.Scenario]; dup {
			return fmt.Errorf(ErrFmtDuplicateScen, ErrInvalidConfig, def.Scenario)
		}
		defs[def.Scenario] = def
	}

	l.defs = defs
	l.loaded = true
	slog.Info(LogMsgPoolsLoaded, LogFieldDir, l.dir, LogFieldCount, len(defs))
	return nil
}

// loadFile parses a single document, validating its shape before decoding ids
func (l *Loader) loadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseYAMLFailed, err)
	}
	if err := l.schemaValidator.ValidateValue(raw, validation.PoolSchemaPath); err != nil {
		return nil, err
	}

	var doc struct {
		Scenario    string   `yaml:"scenario"`
		Description string   `yaml:"description"`
		Items       []string `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseYAMLFailed, err)
	}

	def := &Definition{
		Scenario:    domain.Scenario(doc.Scenario),
		Description: doc.Description,
		Items:       make([]domain.ItemID, 0, len(doc.Items)),
	}
	for i, s := range doc.Items {
		id, err := domain.ParseItemID(s)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtInvalidEntry, ErrInvalidConfig, doc.Scenario, i, err)
		}
		def.Items = append(def.Items, id)
	}
	return def, nil
}

func (l *Loader) ensureLoaded() error {
	l.mu.RLock()
	loaded := l.loaded
	l.mu.RUnlock()
	if loaded {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return nil
	}
	return l.loadLocked()
}

// Scenarios returns the names of all loaded scenarios, sorted
func (l *Loader) Scenarios() ([]domain.Scenario, error) {
	if err := l.ensureLoaded(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Scenario, 0, len(l.defs))
	for scen := range l.defs {
		out = append(out, scen)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Definition returns the raw document for scen
func (l *Loader) Definition(scen domain.Scenario) (*Definition, error) {
	if err := l.ensureLoaded(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	def, ok := l.defs[scen]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, scen)
	}
	return def, nil
}

// Pool builds the catalog-filtered pool for scen.
func (l *Loader) Pool(scen domain.Scenario, catalog repository.Catalog) (*Pool, error) {
	def, err := l.Definition(scen)
	if err != nil {
		return nil, err
	}
	return New(catalog, def.Items), nil
}
