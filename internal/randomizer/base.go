package randomizer

import (
	"context"
	"log/slog"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/draw"
	"github.com/osse101/ItemRandomizer_Go/internal/logger"
	"github.com/osse101/ItemRandomizer_Go/internal/metrics"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
)

// base carries what every strategy shares: its name, the catalog, the draw
// layer and decision reporting.
type base struct {
	kind Kind
	Deps
}

func newBase(kind Kind, deps Deps) base {
	return base{kind: kind, Deps: deps}
}

func (b *base) Name() Kind {
	return b.kind
}

// Initialize is a no-op for stateless strategies
func (b *base) Initialize(context.Context, domain.Scenario, *pool.Pool) error {
	return nil
}

// lookup resolves id, reporting a skip when the catalog does not know it.
func (b *base) lookup(ctx context.Context, id domain.ItemID) (*domain.Item, bool) {
	if !b.Catalog.Contains(id) {
		b.decide(ctx, DecisionSkipUnknown, id, id)
		return nil, false
	}
	item, err := b.Catalog.GetItem(id)
	if err != nil {
		b.decide(ctx, DecisionSkipUnknown, id, id)
		return nil, false
	}
	return item, true
}

// drawOr returns a random candidate for q, or src when the draw fails.
func (b *base) drawOr(ctx context.Context, src domain.ItemID, q draw.Query) domain.ItemID {
	id, err := b.Draw.Random(q)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgDrawFailed,
			LogFieldStrategy, string(b.kind),
			LogFieldSource, b.Catalog.Describe(src),
			LogFieldError, err)
		return b.decide(ctx, DecisionDrawFailed, src, src)
	}
	return b.decide(ctx, DecisionReplace, src, id)
}

// decide records one decision and returns result
func (b *base) decide(ctx context.Context, decision string, src, result domain.ItemID) domain.ItemID {
	metrics.RecordDecision(string(b.kind), decision)

	level := slog.LevelDebug
	if decision == DecisionReplace {
		level = slog.LevelInfo
	}
	logger.FromContext(ctx).Log(ctx, level, LogMsgDecision,
		LogFieldStrategy, string(b.kind),
		LogFieldDecision, decision,
		LogFieldSource, b.Catalog.Describe(src),
		LogFieldResult, b.Catalog.Describe(result))
	return result
}
