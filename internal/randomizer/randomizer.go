package randomizer

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/logger"
	"github.com/osse101/ItemRandomizer_Go/internal/metrics"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
)

// Randomizer owns one strategy and an enabled flag. While disabled it hands
// every id back without consulting the strategy; the next Initialize
// enables it again.
type Randomizer struct {
	strategy Strategy
	enabled  bool
}

// NewRandomizer takes ownership of strategy. The randomizer starts enabled.
func NewRandomizer(strategy Strategy) *Randomizer {
	return &Randomizer{strategy: strategy, enabled: true}
}

func (r *Randomizer) Randomize(ctx context.Context, id domain.ItemID) domain.ItemID {
	if !r.enabled {
		metrics.RecordDecision(string(r.strategy.Name()), DecisionDisabled)
		return id
	}
	return r.strategy.Randomize(ctx, id)
}

// Initialize re-enables the randomizer and prepares the strategy for scen.
func (r *Randomizer) Initialize(ctx context.Context, scen domain.Scenario, p *pool.Pool) error {
	r.enabled = true

	started := time.Now()
	err := r.strategy.Initialize(ctx, scen, p)
	metrics.RecordInitialization(string(r.strategy.Name()), started, err)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgInitializeFailed,
			LogFieldStrategy, string(r.strategy.Name()),
			LogFieldScenario, string(scen),
			LogFieldError, err)
		return fmt.Errorf(ErrFmtInitializeFailed, r.strategy.Name(), scen, err)
	}
	return nil
}

func (r *Randomizer) Disable() {
	r.enabled = false
}

func (r *Randomizer) Enabled() bool {
	return r.enabled
}

func (r *Randomizer) Strategy() Strategy {
	return r.strategy
}
