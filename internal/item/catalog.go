package item

import (
	"fmt"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

// Catalog is the read-only item repository. It is immutable after NewCatalog,
// so anything derived from it (draw caches, pools) never goes stale.
type Catalog struct {
	ids   []domain.ItemID
	items map[domain.ItemID]*domain.Item
}

// NewCatalog builds a catalog from item records, preserving their order.
// Later duplicates of an id are ignored.
func NewCatalog(items []domain.Item) *Catalog {
	c := &Catalog{
		ids:   make([]domain.ItemID, 0, len(items)),
		items: make(map[domain.ItemID]*domain.Item, len(items)),
	}
	for i := range items {
		if _, dup := c.items[items[i].ID]; dup {
			continue
		}
		record := items[i]
		c.ids = append(c.ids, record.ID)
		c.items[record.ID] = &record
	}
	return c
}

// Contains reports whether id is a known entry
func (c *Catalog) Contains(id domain.ItemID) bool {
	_, ok := c.items[id]
	return ok
}

// GetItem returns the record for id. Callers are expected to guard with Contains.
func (c *Catalog) GetItem(id domain.ItemID) (*domain.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// Canonical returns the catalog-owned copy of id.
func (c *Catalog) Canonical(id domain.ItemID) (domain.ItemID, bool) {
	item, ok := c.items[id]
	if !ok {
		return domain.NilItemID, false
	}
	return item.ID, true
}

// IDs returns every known identifier in load order
func (c *Catalog) IDs() []domain.ItemID {
	out := make([]domain.ItemID, len(c.ids))
	copy(out, c.ids)
	return out
}

func (c *Catalog) Len() int {
	return len(c.ids)
}

// Each calls fn for every item in load order until fn returns false.
func (c *Catalog) Each(fn func(*domain.Item) bool) {
	for _, id := range c.ids {
		if !fn(c.items[id]) {
			return
		}
	}
}

// Describe renders id for diagnostics, falling back to the raw identifier.
func (c *Catalog) Describe(id domain.ItemID) string {
	if item, ok := c.items[id]; ok {
		return item.String()
	}
	return id.String()
}
