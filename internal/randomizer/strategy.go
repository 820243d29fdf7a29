package randomizer

import (
	"context"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/draw"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
)

// Kind names a randomization strategy
type Kind string

const (
	KindIdentity          Kind = "identity"
	KindDefaultWorld      Kind = "default_world"
	KindOopsAllExplosives Kind = "oops_all_explosives"
	KindTreasureHunt      Kind = "treasure_hunt"
	KindNoItems           Kind = "no_items"
	KindActionWorld       Kind = "action_world"
	KindDefaultNPC        Kind = "default_npc"
	KindUnlimitedNPC      Kind = "unlimited_npc"
	KindUnrestrictedNPC   Kind = "unrestricted_npc"
	KindHardNPC           Kind = "hard_npc"
	KindSleepyNPC         Kind = "sleepy_npc"
	KindChainReactionNPC  Kind = "chain_reaction_npc"
	KindDefaultHero       Kind = "default_hero"
	KindDefaultStash      Kind = "default_stash"
)

// Strategy decides which item replaces an observed one.
//
// Randomize never fails: unknown and ineligible ids come back unchanged, and
// a failed draw is logged and answered with the original id. Initialize is
// called once per scenario before any Randomize call for it.
type Strategy interface {
	Name() Kind
	Initialize(ctx context.Context, scen domain.Scenario, p *pool.Pool) error
	Randomize(ctx context.Context, id domain.ItemID) domain.ItemID
}

// RandomDraw is the part of the draw layer strategies use
type RandomDraw interface {
	Random(q draw.Query) (domain.ItemID, error)
	RandomN(q draw.Query, n int) ([]domain.ItemID, error)
	Intn(n int) int
	Shuffle(ids []domain.ItemID)
}

// Deps are the collaborators every strategy is built with
type Deps struct {
	Catalog repository.Catalog
	Draw    RandomDraw
}

// identityStrategy hands every id back untouched
type identityStrategy struct {
	base
}

func newIdentity(deps Deps) Strategy {
	return &identityStrategy{base: newBase(KindIdentity, deps)}
}

func (s *identityStrategy) Randomize(ctx context.Context, id domain.ItemID) domain.ItemID {
	return s.decide(ctx, DecisionIdentity, id, id)
}
