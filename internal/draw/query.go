package draw

import (
	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

// Kind identifies a candidate query. Together with an optional type tag it is
// the cache key, so equal intents always share one materialized list.
type Kind string

const (
	KindWeapon                  Kind = "weapon"
	KindExplosive               Kind = "explosive"
	KindCoin                    Kind = "coin"
	KindPistol                  Kind = "pistol"
	KindEssential               Kind = "essential"
	KindAcceptableDefault       Kind = "acceptable_default"
	KindGoodTreasureLocation    Kind = "good_treasure_location"
	KindSameTypeDefaultOrWeapon Kind = "same_type_default_or_weapon"
	KindSameTypeDefault         Kind = "same_type_default"
)

// Query describes a subset of the catalog
type Query struct {
	Kind Kind
	Type string // only used by the same-type kinds
}

// Predefined capability queries
var (
	Weapons               = Query{Kind: KindWeapon}
	Explosives            = Query{Kind: KindExplosive}
	Coins                 = Query{Kind: KindCoin}
	Pistols               = Query{Kind: KindPistol}
	Essentials            = Query{Kind: KindEssential}
	AcceptableDefaults    = Query{Kind: KindAcceptableDefault} // weapons excluded
	GoodTreasureLocations = Query{Kind: KindGoodTreasureLocation}
)

// SameTypeDefaultOrWeapon matches items of the given type that are either
// acceptable defaults or weapons.
func SameTypeDefaultOrWeapon(itemType string) Query {
	return Query{Kind: KindSameTypeDefaultOrWeapon, Type: itemType}
}

// SameTypeDefault matches acceptable default items of the given type.
// Weapons never match, even when flagged as defaults.
func SameTypeDefault(itemType string) Query {
	return Query{Kind: KindSameTypeDefault, Type: itemType}
}

// Matches reports whether item belongs to the query's candidate set
func (q Query) Matches(item *domain.Item) bool {
	switch q.Kind {
	case KindWeapon:
		return item.IsWeapon()
	case KindExplosive:
		return item.IsExplosive()
	case KindCoin:
		return item.IsCoin()
	case KindPistol:
		return item.IsPistol()
	case KindEssential:
		return item.IsEssential()
	case KindAcceptableDefault:
		return item.IsAcceptableDefault() && !item.IsWeapon()
	case KindGoodTreasureLocation:
		return item.IsGoodTreasureLocation()
	case KindSameTypeDefaultOrWeapon:
		return item.Type == q.Type && (item.IsAcceptableDefault() || item.IsWeapon())
	case KindSameTypeDefault:
		return item.Type == q.Type && item.IsAcceptableDefault() && !item.IsWeapon()
	default:
		return false
	}
}

func (q Query) String() string {
	if q.Type == "" {
		return string(q.Kind)
	}
	return string(q.Kind) + "(" + q.Type + ")"
}
