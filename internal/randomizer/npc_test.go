package randomizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

const trials = 20000

// frequencies counts the answers of n calls of s for id
func frequencies(ctx context.Context, s Strategy, id domain.ItemID, n int) map[domain.ItemID]int {
	counts := make(map[domain.ItemID]int)
	for i := 0; i < n; i++ {
		counts[s.Randomize(ctx, id)]++
	}
	return counts
}

func share(counts map[domain.ItemID]int, id domain.ItemID, n int) float64 {
	return float64(counts[id]) / float64(n)
}

func TestUnknownIDsPassThrough(t *testing.T) {
	ctx := context.Background()

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			deps := projectDeps(t, 21)
			s := mustNew(t, kind, deps)
			require.NoError(t, s.Initialize(ctx, "the_showstopper", showstopperPool(t, deps)))

			for i := 0; i < 5; i++ {
				assert.Equal(t, idUnknown, s.Randomize(ctx, idUnknown))
				assert.Equal(t, domain.NilItemID, s.Randomize(ctx, domain.NilItemID))
			}
		})
	}
}

func TestNPC_NonWeaponsPassThrough(t *testing.T) {
	ctx := context.Background()
	npcKinds := []Kind{KindDefaultNPC, KindUnlimitedNPC, KindUnrestrictedNPC, KindHardNPC, KindSleepyNPC, KindChainReactionNPC}

	for _, kind := range npcKinds {
		t.Run(string(kind), func(t *testing.T) {
			s := mustNew(t, kind, projectDeps(t, 22))
			for _, id := range []domain.ItemID{idKitchenKnife, idKeycard, idRemote, domain.ItemNoItemsCoin} {
				assert.Equal(t, id, s.Randomize(ctx, id))
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	ctx := context.Background()
	s := mustNew(t, KindIdentity, projectDeps(t, 1))
	for _, id := range []domain.ItemID{domain.ItemHardShotgun, idKeycard, idUnknown} {
		assert.Equal(t, id, s.Randomize(ctx, id))
	}
}

func TestDefaultNPC_KeepsType(t *testing.T) {
	ctx := context.Background()
	deps := projectDeps(t, 23)
	s := mustNew(t, KindDefaultNPC, deps)

	for _, id := range []domain.ItemID{domain.ItemHardShotgun, domain.ItemHardPistol, domain.ItemHardSniper, domain.ItemFlashGrenade} {
		src := getItem(t, deps, id)
		for i := 0; i < 50; i++ {
			got := getItem(t, deps, s.Randomize(ctx, id))
			assert.Equal(t, src.Type, got.Type)
			assert.True(t, got.IsWeapon() || got.IsAcceptableDefault())
		}
	}
}

func TestUnlimitedNPC(t *testing.T) {
	ctx := context.Background()
	deps := projectDeps(t, 24)
	s := mustNew(t, KindUnlimitedNPC, deps)

	types := make(map[string]bool)
	for i := 0; i < 500; i++ {
		got := getItem(t, deps, s.Randomize(ctx, domain.ItemHardPistol))
		assert.True(t, got.IsWeapon())
		types[got.Type] = true
	}
	assert.Greater(t, len(types), 1, "weapons cross type lines")
}

func TestUnrestrictedNPC_FlashBecomesFrag(t *testing.T) {
	ctx := context.Background()
	deps := projectDeps(t, 25)
	s := mustNew(t, KindUnrestrictedNPC, deps)

	for i := 0; i < 50; i++ {
		assert.Equal(t, domain.ItemFragGrenade, s.Randomize(ctx, domain.ItemFlashGrenade))
		assert.True(t, getItem(t, deps, s.Randomize(ctx, domain.ItemHardShotgun)).IsWeapon())
	}
}

func TestHardNPC(t *testing.T) {
	ctx := context.Background()
	s := mustNew(t, KindHardNPC, projectDeps(t, 26))

	t.Run("flash becomes frag", func(t *testing.T) {
		assert.Equal(t, domain.ItemFragGrenade, s.Randomize(ctx, domain.ItemFlashGrenade))
	})

	t.Run("pistol bands", func(t *testing.T) {
		counts := frequencies(ctx, s, idBartoli75R, trials)
		assert.Len(t, counts, 2)
		assert.InDelta(t, 0.10, share(counts, domain.ItemHardPistol, trials), 0.015)
		assert.InDelta(t, 0.90, share(counts, domain.ItemHardSMG, trials), 0.015)
	})

	t.Run("weapon bands", func(t *testing.T) {
		counts := frequencies(ctx, s, domain.ItemHardSniper, trials)
		assert.Len(t, counts, 4)
		assert.InDelta(t, 0.45, share(counts, domain.ItemHardShotgun, trials), 0.02)
		assert.InDelta(t, 0.225, share(counts, domain.ItemHardSMG, trials), 0.02)
		assert.InDelta(t, 0.225, share(counts, domain.ItemHardRifle, trials), 0.02)
		assert.InDelta(t, 0.10, share(counts, domain.ItemHardSniper, trials), 0.015)
	})

	t.Run("never hands out flash grenades", func(t *testing.T) {
		tiers := map[domain.ItemID]bool{
			domain.ItemHardShotgun: true, domain.ItemHardSMG: true, domain.ItemHardRifle: true,
			domain.ItemHardSniper: true, domain.ItemHardPistol: true, domain.ItemFragGrenade: true,
		}
		deps := projectDeps(t, 27)
		deps.Catalog.Each(func(it *domain.Item) bool {
			if !it.IsWeapon() {
				return true
			}
			for i := 0; i < 20; i++ {
				got := s.Randomize(ctx, it.ID)
				assert.NotEqual(t, domain.ItemFlashGrenade, got)
				assert.True(t, tiers[got], "%s became %s", it.Name, deps.Catalog.Describe(got))
			}
			return true
		})
	})
}

func TestSleepyNPC(t *testing.T) {
	ctx := context.Background()
	s := mustNew(t, KindSleepyNPC, projectDeps(t, 28))

	for _, id := range []domain.ItemID{domain.ItemHardShotgun, domain.ItemFlashGrenade, domain.ItemHardPistol} {
		assert.Equal(t, domain.ItemSedativeCoin, s.Randomize(ctx, id))
	}
}

func TestChainReactionNPC(t *testing.T) {
	ctx := context.Background()
	s := mustNew(t, KindChainReactionNPC, projectDeps(t, 29))

	t.Run("flash becomes booster", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			assert.Equal(t, domain.ItemOctaneBooster, s.Randomize(ctx, domain.ItemFlashGrenade))
		}
	})

	t.Run("bands", func(t *testing.T) {
		counts := frequencies(ctx, s, domain.ItemHardShotgun, trials)

		assert.InDelta(t, 0.40, share(counts, domain.ItemSedativeCoin, trials), 0.02)
		assert.InDelta(t, 0.40, share(counts, domain.ItemOctaneBooster, trials), 0.02)

		shotguns := share(counts, domain.ItemChainShotgun1, trials) + share(counts, domain.ItemChainShotgun2, trials)
		rifles := share(counts, domain.ItemChainRifle1, trials) + share(counts, domain.ItemChainRifle2, trials)
		assert.InDelta(t, 0.08, shotguns, 0.015)
		assert.InDelta(t, 0.08, rifles, 0.015)
		assert.InDelta(t, 0.04, share(counts, domain.ItemChainSniper, trials), 0.01)
	})
}

func TestDefaultHero(t *testing.T) {
	ctx := context.Background()
	deps := projectDeps(t, 30)
	s := mustNew(t, KindDefaultHero, deps)

	for _, id := range []domain.ItemID{idKitchenKnife, domain.ItemHardPistol, idRemote} {
		src := getItem(t, deps, id)
		for i := 0; i < 30; i++ {
			got := getItem(t, deps, s.Randomize(ctx, id))
			assert.Equal(t, src.Type, got.Type)
			assert.True(t, got.IsAcceptableDefault() || got.IsWeapon())
		}
	}
}

func TestDefaultStash(t *testing.T) {
	ctx := context.Background()
	deps := projectDeps(t, 31)
	s := mustNew(t, KindDefaultStash, deps)

	t.Run("same type defaults only", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			got := getItem(t, deps, s.Randomize(ctx, idRemote))
			assert.Equal(t, "explosives", got.Type)
			assert.True(t, got.IsAcceptableDefault())
			assert.False(t, got.IsWeapon())

			got = getItem(t, deps, s.Randomize(ctx, idKitchenKnife))
			assert.Equal(t, "melee", got.Type)
			assert.False(t, got.IsWeapon())
		}
	})

	t.Run("stashed weapons stay put", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.Equal(t, idBartoli75R, s.Randomize(ctx, idBartoli75R))
			assert.Equal(t, domain.ItemHardSniper, s.Randomize(ctx, domain.ItemHardSniper))
			assert.Equal(t, domain.ItemFlashGrenade, s.Randomize(ctx, domain.ItemFlashGrenade))
		}
	})

	t.Run("failed draw keeps the original", func(t *testing.T) {
		// No acceptable default shares the quest item type.
		assert.Equal(t, domain.ItemGoldIdol, s.Randomize(ctx, domain.ItemGoldIdol))
	})
}
