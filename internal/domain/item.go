package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ItemID is the canonical 128-bit identifier of one item definition.
// It is a plain value: comparable, hashable and safe to copy.
type ItemID uuid.UUID

// NilItemID is the all-zeros identifier meaning "no item".
var NilItemID = ItemID(uuid.Nil)

// ParseItemID parses the canonical string form of an item identifier.
func ParseItemID(s string) (ItemID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return NilItemID, fmt.Errorf("%w: %q", ErrInvalidItemID, s)
	}
	return ItemID(u), nil
}

// MustParseItemID is like ParseItemID but panics on malformed input.
// Only use it for compile-time constants.
func MustParseItemID(s string) ItemID {
	id, err := ParseItemID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ItemID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the "no item" sentinel.
func (id ItemID) IsNil() bool {
	return id == NilItemID
}

// MarshalText implements encoding.TextMarshaler
func (id ItemID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ItemID) UnmarshalText(b []byte) error {
	parsed, err := ParseItemID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Capability is a named boolean property of an item used as a selection predicate.
type Capability uint16

const (
	CapabilityWeapon Capability = 1 << iota
	CapabilityEssential
	CapabilityExplosive
	CapabilityCoin
	CapabilityPistol
	CapabilityGoodTreasureLocation
	CapabilityAcceptableDefault
)

var capabilityNames = map[Capability]string{
	CapabilityWeapon:               "weapon",
	CapabilityEssential:            "essential",
	CapabilityExplosive:            "explosive",
	CapabilityCoin:                 "coin",
	CapabilityPistol:               "pistol",
	CapabilityGoodTreasureLocation: "good_treasure_location",
	CapabilityAcceptableDefault:    "acceptable_default",
}

// ParseCapability maps a configuration tag to its Capability.
func ParseCapability(name string) (Capability, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range capabilityNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

func (c Capability) String() string {
	if n, ok := capabilityNames[c]; ok {
		return n
	}
	return fmt.Sprintf("capability(%d)", uint16(c))
}

// Item is the static metadata for one catalog entry.
// Items are owned by the catalog and never mutated after load.
type Item struct {
	ID           ItemID     `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"` // inventory category, used for same-type substitution
	Capabilities Capability `json:"-"`
}

// Has reports whether the item carries every bit of c.
func (i *Item) Has(c Capability) bool {
	return i.Capabilities&c == c
}

func (i *Item) IsWeapon() bool               { return i.Has(CapabilityWeapon) }
func (i *Item) IsEssential() bool            { return i.Has(CapabilityEssential) }
func (i *Item) IsExplosive() bool            { return i.Has(CapabilityExplosive) }
func (i *Item) IsCoin() bool                 { return i.Has(CapabilityCoin) }
func (i *Item) IsPistol() bool               { return i.Has(CapabilityPistol) }
func (i *Item) IsGoodTreasureLocation() bool { return i.Has(CapabilityGoodTreasureLocation) }
func (i *Item) IsAcceptableDefault() bool    { return i.Has(CapabilityAcceptableDefault) }

// CapabilityNames lists the item's capability tags in a stable order.
func (i *Item) CapabilityNames() []string {
	names := make([]string, 0, len(capabilityNames))
	for c := CapabilityWeapon; c <= CapabilityAcceptableDefault; c <<= 1 {
		if i.Has(c) {
			names = append(names, c.String())
		}
	}
	return names
}

func (i *Item) String() string {
	return fmt.Sprintf("%s [%s]", i.Name, i.Type)
}

// Predicate selects items.
type Predicate func(*Item) bool

// Has returns a predicate matching items that carry capability c.
func Has(c Capability) Predicate {
	return func(i *Item) bool { return i.Has(c) }
}
