package randomizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/logger"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
)

// Context is the host callback site an item spawn comes from
type Context string

const (
	ContextWorld Context = "world"
	ContextNPC   Context = "npc"
	ContextHero  Context = "hero"
	ContextStash Context = "stash"
)

// Contexts lists every context in the order they are initialized
func Contexts() []Context {
	return []Context{ContextWorld, ContextNPC, ContextHero, ContextStash}
}

// ParseContext validates a context name
func ParseContext(s string) (Context, error) {
	for _, c := range Contexts() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownContext, s)
}

// DefaultKinds is the strategy line-up used when none is configured
func DefaultKinds() map[Context]Kind {
	return map[Context]Kind{
		ContextWorld: KindDefaultWorld,
		ContextNPC:   KindDefaultNPC,
		ContextHero:  KindDefaultHero,
		ContextStash: KindDefaultStash,
	}
}

// PoolSource provides scenario pools
type PoolSource interface {
	Scenarios() ([]domain.Scenario, error)
	Pool(scen domain.Scenario, catalog repository.Catalog) (*pool.Pool, error)
}

// Service maps host callbacks onto one Randomizer per context.
type Service struct {
	deps  Deps
	pools PoolSource
	kinds map[Context]Kind

	mu          sync.RWMutex
	previewDraw RandomDraw
	randomizers map[Context]*Randomizer
	scenario    domain.Scenario
	sessionID   string
}

// Status is a snapshot of one context's randomizer
type Status struct {
	Context  Context `json:"context"`
	Strategy Kind    `json:"strategy"`
	Enabled  bool    `json:"enabled"`
}

// NewService builds a randomizer for every context. Contexts missing from
// kinds fall back to DefaultKinds.
func NewService(deps Deps, pools PoolSource, kinds map[Context]Kind) (*Service, error) {
	s := &Service{
		deps:        deps,
		pools:       pools,
		kinds:       DefaultKinds(),
		randomizers: make(map[Context]*Randomizer, len(Contexts())),
	}
	for c, k := range kinds {
		if _, err := ParseContext(string(c)); err != nil {
			return nil, err
		}
		s.kinds[c] = k
	}

	s.previewDraw = deps.Draw
	for _, c := range Contexts() {
		strategy, err := New(s.kinds[c], deps)
		if err != nil {
			return nil, fmt.Errorf("%s randomizer: %w", c, err)
		}
		s.randomizers[c] = NewRandomizer(strategy)
	}
	return s, nil
}

// LoadScenario builds the pool for scen and initializes every randomizer with it.
// All contexts are initialized even if one fails; the failures are joined.
func (s *Service) LoadScenario(ctx context.Context, scen domain.Scenario) error {
	p, err := s.pools.Pool(scen, s.deps.Catalog)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenario = scen
	s.sessionID = logger.NewSessionID()
	ctx = logger.WithSessionID(ctx, s.sessionID)

	var errs []error
	for _, c := range Contexts() {
		if err := s.randomizers[c].Initialize(ctx, scen, p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
		}
	}

	logger.FromContext(ctx).Info(LogMsgScenarioLoaded,
		LogFieldScenario, string(scen),
		LogFieldPoolSize, p.Size())
	return errors.Join(errs...)
}

// Randomize forwards one observed item to the randomizer for c.
func (s *Service) Randomize(ctx context.Context, c Context, id domain.ItemID) (domain.ItemID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.randomizers[c]
	if !ok {
		return id, fmt.Errorf("%w: %q", domain.ErrUnknownContext, c)
	}
	if s.sessionID != "" {
		ctx = logger.WithSessionID(ctx, s.sessionID)
	}
	return r.Randomize(ctx, id), nil
}

// Disable suspends substitution for c until the next LoadScenario
func (s *Service) Disable(ctx context.Context, c Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.randomizers[c]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownContext, c)
	}
	r.Disable()
	s.sessionLogger(ctx).Info(LogMsgRandomizerDisabled, LogFieldContext, string(c))
	return nil
}

func (s *Service) DisableAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.sessionLogger(ctx)
	for _, c := range Contexts() {
		s.randomizers[c].Disable()
		log.Info(LogMsgRandomizerDisabled, LogFieldContext, string(c))
	}
}

// sessionLogger tags records with the active session. Callers hold mu.
func (s *Service) sessionLogger(ctx context.Context) *slog.Logger {
	if s.sessionID != "" {
		ctx = logger.WithSessionID(ctx, s.sessionID)
	}
	return logger.FromContext(ctx)
}

// Scenario returns the active scenario, or ErrScenarioNotLoaded
func (s *Service) Scenario() (domain.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.scenario == "" {
		return "", domain.ErrScenarioNotLoaded
	}
	return s.scenario, nil
}

// Status reports every context in initialization order
func (s *Service) Status() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Status, 0, len(s.randomizers))
	for _, c := range Contexts() {
		r := s.randomizers[c]
		out = append(out, Status{Context: c, Strategy: r.Strategy().Name(), Enabled: r.Enabled()})
	}
	return out
}

func (s *Service) Scenarios() ([]domain.Scenario, error) {
	return s.pools.Scenarios()
}

func (s *Service) Catalog() repository.Catalog {
	return s.deps.Catalog
}
