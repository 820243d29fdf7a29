package repository

import (
	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

// Catalog defines the read-only item repository the randomizer core consumes
type Catalog interface {
	Contains(id domain.ItemID) bool
	// GetItem fails with domain.ErrItemNotFound unless Contains(id) is true.
	GetItem(id domain.ItemID) (*domain.Item, error)
	Canonical(id domain.ItemID) (domain.ItemID, bool)
	IDs() []domain.ItemID
	Len() int
	Each(fn func(*domain.Item) bool)
	Describe(id domain.ItemID) string
}
