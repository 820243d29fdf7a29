package randomizer

import (
	"context"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

// PreviewSlot is one pool position before and after randomization
type PreviewSlot struct {
	Position int           `json:"position"`
	Source   domain.ItemID `json:"source"`
	Result   domain.ItemID `json:"result"`
}

// Preview is what a strategy would do to a scenario's default pool
type Preview struct {
	Scenario domain.Scenario `json:"scenario"`
	Strategy Kind            `json:"strategy"`
	Slots    []PreviewSlot   `json:"slots"`
	Changed  int             `json:"changed"`
}

// UsePreviewDraw gives previews their own draw layer, so preview requests
// do not advance the random stream the live randomizers draw from. Without
// it previews share the live draw layer.
func (s *Service) UsePreviewDraw(d RandomDraw) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewDraw = d
}

// Preview runs a fresh strategy of the given kind over the pool of scen,
// feeding it every pool entry in order. The live randomizers are untouched.
func (s *Service) Preview(ctx context.Context, scen domain.Scenario, kind Kind) (*Preview, error) {
	s.mu.RLock()
	deps := Deps{Catalog: s.deps.Catalog, Draw: s.previewDraw}
	s.mu.RUnlock()

	strategy, err := New(kind, deps)
	if err != nil {
		return nil, err
	}
	p, err := s.pools.Pool(scen, s.deps.Catalog)
	if err != nil {
		return nil, err
	}

	r := NewRandomizer(strategy)
	if err := r.Initialize(ctx, scen, p); err != nil {
		return nil, err
	}

	out := &Preview{Scenario: scen, Strategy: kind, Slots: make([]PreviewSlot, 0, p.Size())}
	for pos, id := range p.IDs() {
		result := r.Randomize(ctx, id)
		if result != id {
			out.Changed++
		}
		out.Slots = append(out.Slots, PreviewSlot{Position: pos, Source: id, Result: result})
	}
	return out, nil
}
