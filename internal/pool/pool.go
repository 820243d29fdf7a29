package pool

import (
	"fmt"
	"log/slog"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
)

// Pool is the vanilla placement of items for one scenario. Every entry is a
// catalog member, so predicates may always dereference it.
type Pool struct {
	catalog repository.Catalog
	ids     []domain.ItemID
}

// New builds a pool from ids in order, dropping entries the catalog does not know.
func New(catalog repository.Catalog, ids []domain.ItemID) *Pool {
	p := &Pool{
		catalog: catalog,
		ids:     make([]domain.ItemID, 0, len(ids)),
	}
	for i, id := range ids {
		canonical, ok := catalog.Canonical(id)
		if !ok {
			slog.Debug(LogMsgDroppedUnknownItem, LogFieldPosition, i, LogFieldItemID, id.String())
			continue
		}
		p.ids = append(p.ids, canonical)
	}
	return p
}

func (p *Pool) Size() int {
	return len(p.ids)
}

// Get returns every entry matching pred, in pool order
func (p *Pool) Get(pred domain.Predicate) []domain.ItemID {
	var out []domain.ItemID
	for _, id := range p.ids {
		if p.match(id, pred) {
			out = append(out, id)
		}
	}
	return out
}

// Positions returns the 0-based indices of entries matching pred
func (p *Pool) Positions(pred domain.Predicate) []int {
	var out []int
	for i, id := range p.ids {
		if p.match(id, pred) {
			out = append(out, i)
		}
	}
	return out
}

func (p *Pool) Count(pred domain.Predicate) int {
	n := 0
	for _, id := range p.ids {
		if p.match(id, pred) {
			n++
		}
	}
	return n
}

// CountID returns how often id occurs in the pool
func (p *Pool) CountID(id domain.ItemID) int {
	n := 0
	for _, entry := range p.ids {
		if entry == id {
			n++
		}
	}
	return n
}

// IDAt returns the entry at pos, failing with domain.ErrIndexOutOfRange outside [0, Size()).
func (p *Pool) IDAt(pos int) (domain.ItemID, error) {
	if pos < 0 || pos >= len(p.ids) {
		return domain.NilItemID, fmt.Errorf("%w: %d not in [0, %d)", domain.ErrIndexOutOfRange, pos, len(p.ids))
	}
	return p.ids[pos], nil
}

// IDs returns a copy of the entries in pool order
func (p *Pool) IDs() []domain.ItemID {
	out := make([]domain.ItemID, len(p.ids))
	copy(out, p.ids)
	return out
}

// Item returns the catalog record for the entry at pos.
func (p *Pool) Item(pos int) (*domain.Item, error) {
	id, err := p.IDAt(pos)
	if err != nil {
		return nil, err
	}
	return p.catalog.GetItem(id)
}

func (p *Pool) match(id domain.ItemID, pred domain.Predicate) bool {
	item, err := p.catalog.GetItem(id)
	if err != nil {
		return false
	}
	return pred(item)
}
