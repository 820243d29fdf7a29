package draw

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/metrics"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
)

// Repository draws random identifiers from catalog subsets. It owns the
// shared random engine and a cache of materialized candidate lists. The
// catalog is immutable, so cached lists never go stale.
type Repository struct {
	catalog repository.Catalog

	mu    sync.Mutex
	rng   *rand.Rand
	cache *lru.Cache[Query, []domain.ItemID]
}

// New creates a draw layer over catalog. A zero seed seeds from the clock.
func New(catalog repository.Catalog, seed int64, cacheSize int) (*Repository, error) {
	if catalog == nil {
		return nil, errors.New(ErrMsgNilCatalog)
	}
	if cacheSize <= 0 {
		return nil, errors.New(ErrMsgInvalidCacheSize)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cache, err := lru.New[Query, []domain.ItemID](cacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateCache, err)
	}

	return &Repository{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // G404: game randomness, not security critical
		cache:   cache,
	}, nil
}

// Catalog returns the catalog the draws are made from
func (r *Repository) Catalog() repository.Catalog {
	return r.catalog
}

// Random returns one uniformly chosen candidate for q.
func (r *Repository) Random(q Query) (domain.ItemID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidates := r.candidatesLocked(q)
	if len(candidates) == 0 {
		metrics.DrawFailures.WithLabelValues(string(q.Kind)).Inc()
		return domain.NilItemID, fmt.Errorf("%w: %s", domain.ErrNoCandidates, q)
	}
	return candidates[r.rng.Intn(len(candidates))], nil
}

// RandomN returns n distinct candidates for q, uniform over combinations.
func (r *Repository) RandomN(q Query, n int) ([]domain.ItemID, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d for %s", domain.ErrInsufficientCandidates, n, q)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	candidates := r.candidatesLocked(q)
	if n > len(candidates) {
		metrics.DrawFailures.WithLabelValues(string(q.Kind)).Inc()
		return nil, fmt.Errorf("%w: want %d of %s, have %d", domain.ErrInsufficientCandidates, n, q, len(candidates))
	}

	// Partial Fisher-Yates over a copy; the cached list stays in catalog order.
	work := make([]domain.ItemID, len(candidates))
	copy(work, candidates)
	for i := 0; i < n; i++ {
		j := i + r.rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n:n], nil
}

// AllMatches returns up to n candidates in catalog order. A negative n returns all.
func (r *Repository) AllMatches(q Query, n int) []domain.ItemID {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidates := r.candidatesLocked(q)
	if n < 0 || n > len(candidates) {
		n = len(candidates)
	}
	out := make([]domain.ItemID, n)
	copy(out, candidates[:n])
	return out
}

// Candidates returns a copy of the materialized candidate list for q.
func (r *Repository) Candidates(q Query) []domain.ItemID {
	return r.AllMatches(q, -1)
}

// Intn returns a number in [0, n) from the shared engine. n must be positive.
func (r *Repository) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// Shuffle permutes ids in place with the shared engine.
func (r *Repository) Shuffle(ids []domain.ItemID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// candidatesLocked must be called with r.mu held. The returned slice is shared
// with the cache and must not be modified.
func (r *Repository) candidatesLocked(q Query) []domain.ItemID {
	if cached, ok := r.cache.Get(q); ok {
		metrics.DrawCacheHits.WithLabelValues(string(q.Kind)).Inc()
		return cached
	}
	metrics.DrawCacheMisses.WithLabelValues(string(q.Kind)).Inc()

	var matches []domain.ItemID
	r.catalog.Each(func(item *domain.Item) bool {
		if q.Matches(item) {
			matches = append(matches, item.ID)
		}
		return true
	})
	r.cache.Add(q, matches)
	return matches
}
