package randomizer

import (
	"context"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/draw"
)

// inventoryStrategy replaces any known item with one of the same type tag,
// so melee stays melee and keys stay keys.
type inventoryStrategy struct {
	base
	query func(itemType string) draw.Query
	// skipWeapons leaves weapons where they are instead of drawing for them
	skipWeapons bool
}

func (s *inventoryStrategy) Randomize(ctx context.Context, id domain.ItemID) domain.ItemID {
	item, ok := s.lookup(ctx, id)
	if !ok {
		return id
	}
	if s.skipWeapons && item.IsWeapon() {
		return s.decide(ctx, DecisionSkipIneligible, id, id)
	}
	return s.drawOr(ctx, id, s.query(item.Type))
}

func newDefaultHero(deps Deps) Strategy {
	return &inventoryStrategy{base: newBase(KindDefaultHero, deps), query: draw.SameTypeDefaultOrWeapon}
}

// newDefaultStash never hands out a weapon. Stashed weapons stay as they are.
func newDefaultStash(deps Deps) Strategy {
	return &inventoryStrategy{base: newBase(KindDefaultStash, deps), query: draw.SameTypeDefault, skipWeapons: true}
}
