package randomizer

import (
	"context"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/draw"
)

// npcStrategy swaps the weapons NPCs carry. Everything else passes through.
type npcStrategy struct {
	base
	flashToFrag bool
	choose      func(ctx context.Context, item *domain.Item) domain.ItemID
}

func (s *npcStrategy) Randomize(ctx context.Context, id domain.ItemID) domain.ItemID {
	item, ok := s.lookup(ctx, id)
	if !ok {
		return id
	}
	if s.flashToFrag && id == domain.ItemFlashGrenade {
		return s.decide(ctx, DecisionReplace, id, domain.ItemFragGrenade)
	}
	if !item.IsWeapon() {
		return s.decide(ctx, DecisionSkipIneligible, id, id)
	}
	return s.choose(ctx, item)
}

// newDefaultNPC keeps the weapon class: a shotgun stays a shotgun
func newDefaultNPC(deps Deps) Strategy {
	s := &npcStrategy{base: newBase(KindDefaultNPC, deps)}
	s.choose = func(ctx context.Context, item *domain.Item) domain.ItemID {
		return s.drawOr(ctx, item.ID, draw.SameTypeDefaultOrWeapon(item.Type))
	}
	return s
}

func newUnlimitedNPC(deps Deps) Strategy {
	s := &npcStrategy{base: newBase(KindUnlimitedNPC, deps)}
	s.choose = func(ctx context.Context, item *domain.Item) domain.ItemID {
		return s.drawOr(ctx, item.ID, draw.Weapons)
	}
	return s
}

// newUnrestrictedNPC is unlimited_npc without flash grenades.
func newUnrestrictedNPC(deps Deps) Strategy {
	s := &npcStrategy{base: newBase(KindUnrestrictedNPC, deps), flashToFrag: true}
	s.choose = func(ctx context.Context, item *domain.Item) domain.ItemID {
		return s.drawOr(ctx, item.ID, draw.Weapons)
	}
	return s
}

// newHardNPC arms NPCs with heavy fixed weapons
func newHardNPC(deps Deps) Strategy {
	s := &npcStrategy{base: newBase(KindHardNPC, deps), flashToFrag: true}
	s.choose = func(ctx context.Context, item *domain.Item) domain.ItemID {
		return s.decide(ctx, DecisionReplace, item.ID, s.hardWeapon(item))
	}
	return s
}

func (s *npcStrategy) hardWeapon(item *domain.Item) domain.ItemID {
	if item.IsPistol() {
		if s.Draw.Intn(HardNPCPistolSides) == 0 {
			return domain.ItemHardPistol
		}
		return domain.ItemHardSMG
	}

	roll := s.Draw.Intn(HardNPCWeaponSides)
	switch {
	case roll < HardNPCShotgunBelow:
		return domain.ItemHardShotgun
	case roll < HardNPCSMGOrRifleBelow:
		if s.Draw.Intn(2) == 0 {
			return domain.ItemHardSMG
		}
		return domain.ItemHardRifle
	default:
		return domain.ItemHardSniper
	}
}

func newSleepyNPC(deps Deps) Strategy {
	s := &npcStrategy{base: newBase(KindSleepyNPC, deps)}
	s.choose = func(ctx context.Context, item *domain.Item) domain.ItemID {
		return s.decide(ctx, DecisionReplace, item.ID, domain.ItemSedativeCoin)
	}
	return s
}

// newChainReactionNPC mostly hands out sedatives and boosters, sometimes a gun.
// Flash grenades always become boosters.
func newChainReactionNPC(deps Deps) Strategy {
	s := &npcStrategy{base: newBase(KindChainReactionNPC, deps)}
	s.choose = func(ctx context.Context, item *domain.Item) domain.ItemID {
		return s.decide(ctx, DecisionReplace, item.ID, s.chainReaction(item))
	}
	return s
}

func (s *npcStrategy) chainReaction(item *domain.Item) domain.ItemID {
	if item.ID == domain.ItemFlashGrenade {
		return domain.ItemOctaneBooster
	}

	roll := s.Draw.Intn(ChainReactionSides)
	switch {
	case roll < ChainReactionCoinBelow:
		return domain.ItemSedativeCoin
	case roll < ChainReactionBoosterBelow:
		return domain.ItemOctaneBooster
	}

	tier := s.Draw.Intn(ChainReactionTierSides)
	switch {
	case tier < ChainReactionShotgunBelow:
		return s.either(domain.ItemChainShotgun1, domain.ItemChainShotgun2)
	case tier < ChainReactionRifleBelow:
		return s.either(domain.ItemChainRifle1, domain.ItemChainRifle2)
	default:
		return domain.ItemChainSniper
	}
}

func (s *npcStrategy) either(a, b domain.ItemID) domain.ItemID {
	if s.Draw.Intn(2) == 0 {
		return a
	}
	return b
}
