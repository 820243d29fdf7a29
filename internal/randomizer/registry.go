package randomizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

type factory func(Deps) Strategy

// registration ties a kind to its constructor and the fixed items it hands out.
type registration struct {
	build factory
	fixed []domain.ItemID
}

var registry = map[Kind]registration{
	KindIdentity:          {build: newIdentity},
	KindDefaultWorld:      {build: newDefaultWorld},
	KindOopsAllExplosives: {build: newOopsAllExplosives},
	KindTreasureHunt:      {build: newTreasureHunt, fixed: []domain.ItemID{domain.ItemGoldIdol, domain.ItemBust}},
	KindNoItems:           {build: newNoItems, fixed: []domain.ItemID{domain.ItemNoItemsPistol, domain.ItemNoItemsCoin}},
	KindActionWorld:       {build: newActionWorld},
	KindDefaultNPC:        {build: newDefaultNPC},
	KindUnlimitedNPC:      {build: newUnlimitedNPC},
	KindUnrestrictedNPC:   {build: newUnrestrictedNPC, fixed: []domain.ItemID{domain.ItemFragGrenade}},
	KindHardNPC: {build: newHardNPC, fixed: []domain.ItemID{
		domain.ItemFragGrenade, domain.ItemHardShotgun, domain.ItemHardRifle,
		domain.ItemHardSniper, domain.ItemHardPistol, domain.ItemHardSMG,
	}},
	KindSleepyNPC: {build: newSleepyNPC, fixed: []domain.ItemID{domain.ItemSedativeCoin}},
	KindChainReactionNPC: {build: newChainReactionNPC, fixed: []domain.ItemID{
		domain.ItemOctaneBooster, domain.ItemSedativeCoin, domain.ItemChainShotgun1, domain.ItemChainShotgun2,
		domain.ItemChainRifle1, domain.ItemChainRifle2, domain.ItemChainSniper,
	}},
	KindDefaultHero:  {build: newDefaultHero},
	KindDefaultStash: {build: newDefaultStash},
}

// New builds the strategy registered for kind. Strategies that hand out fixed
// items fail here when the catalog lacks one of them.
func New(kind Kind, deps Deps) (Strategy, error) {
	reg, ok := registry[kind]
	if !ok {
		return nil, unknownKind(string(kind))
	}
	if deps.Catalog == nil || deps.Draw == nil {
		return nil, errors.New(ErrMsgNilDeps)
	}
	for _, id := range reg.fixed {
		if !deps.Catalog.Contains(id) {
			return nil, fmt.Errorf(ErrFmtMissingFixedItem, domain.ErrItemNotFound, kind, id)
		}
	}
	return reg.build(deps), nil
}

// Kinds lists every registered kind, sorted
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ParseKind normalizes s and checks it names a registered strategy.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[kind]; !ok {
		return "", unknownKind(s)
	}
	return kind, nil
}

// IsKind reports whether s names a registered strategy
func IsKind(s string) bool {
	_, err := ParseKind(s)
	return err == nil
}

func unknownKind(s string) error {
	if hint, ok := suggest(s); ok {
		return fmt.Errorf(ErrFmtUnknownStrategyHint, domain.ErrUnknownStrategy, s, hint)
	}
	return fmt.Errorf(ErrFmtUnknownStrategy, domain.ErrUnknownStrategy, s)
}

// suggest returns the closest registered kind within an edit budget scaled to its length.
func suggest(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}

	var best Kind
	bestDist := -1
	for _, k := range Kinds() {
		dist := levenshtein.ComputeDistance(s, string(k))
		if dist > suggestionLimit(len(k)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	return best, bestDist >= 0
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
