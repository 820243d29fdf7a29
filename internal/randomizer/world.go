package randomizer

import (
	"context"
	"fmt"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/draw"
	"github.com/osse101/ItemRandomizer_Go/internal/logger"
	"github.com/osse101/ItemRandomizer_Go/internal/metrics"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
)

// planFunc computes the replacement for every pool slot, in pool order
type planFunc func(p *pool.Pool) ([]domain.ItemID, error)

// worldStrategy replaces world items in spawn order from a queue planned at
// Initialize. Each Initialize replaces the previous queue.
type worldStrategy struct {
	base
	plan  planFunc
	queue []domain.ItemID
}

func newWorld(kind Kind, deps Deps, plan func(*worldStrategy) planFunc) *worldStrategy {
	w := &worldStrategy{base: newBase(kind, deps)}
	w.plan = plan(w)
	return w
}

func (w *worldStrategy) Initialize(ctx context.Context, scen domain.Scenario, p *pool.Pool) error {
	w.queue = nil
	queue, err := w.plan(p)
	if err != nil {
		metrics.QueueDepth.WithLabelValues(string(w.kind)).Set(0)
		return err
	}
	w.queue = queue
	metrics.QueueDepth.WithLabelValues(string(w.kind)).Set(float64(len(queue)))

	weapons, essentials, fill := countClasses(classify(p))
	logger.FromContext(ctx).Info(LogMsgQueueBuilt,
		LogFieldStrategy, string(w.kind),
		LogFieldScenario, string(scen),
		LogFieldPoolSize, p.Size(),
		LogFieldWeapons, weapons,
		LogFieldEssentials, essentials,
		LogFieldRandom, fill)
	return nil
}

func (w *worldStrategy) Randomize(ctx context.Context, id domain.ItemID) domain.ItemID {
	if !w.Catalog.Contains(id) {
		return w.decide(ctx, DecisionSkipUnknown, id, id)
	}
	if len(w.queue) == 0 {
		return w.decide(ctx, DecisionQueueExhausted, id, id)
	}

	next := w.queue[0]
	w.queue = w.queue[1:]
	metrics.QueueDepth.WithLabelValues(string(w.kind)).Set(float64(len(w.queue)))
	return w.decide(ctx, DecisionReplace, id, next)
}

// Remaining reports how many planned replacements are left
func (w *worldStrategy) Remaining() int {
	return len(w.queue)
}

// slotClass partitions pool positions; weapon takes precedence over essential.
type slotClass int

const (
	slotRemaining slotClass = iota
	slotWeapon
	slotEssential
)

func classify(p *pool.Pool) []slotClass {
	classes := make([]slotClass, p.Size())
	for _, pos := range p.Positions(domain.Has(domain.CapabilityEssential)) {
		classes[pos] = slotEssential
	}
	for _, pos := range p.Positions(domain.Has(domain.CapabilityWeapon)) {
		classes[pos] = slotWeapon
	}
	return classes
}

func countClasses(classes []slotClass) (weapons, essentials, fill int) {
	for _, c := range classes {
		switch c {
		case slotWeapon:
			weapons++
		case slotEssential:
			essentials++
		default:
			fill++
		}
	}
	return weapons, essentials, fill
}

// planShuffled keeps essentials where they are, gives weapon slots distinct
// draws from weaponQuery and fills the remaining slots with distinct draws
// from fillQuery in shuffled order.
func planShuffled(fillQuery, weaponQuery draw.Query) func(*worldStrategy) planFunc {
	return func(w *worldStrategy) planFunc {
		return func(p *pool.Pool) ([]domain.ItemID, error) {
			classes := classify(p)
			weaponCount, _, fillCount := countClasses(classes)

			fill, err := w.Draw.RandomN(fillQuery, fillCount)
			if err != nil {
				return nil, err
			}
			w.Draw.Shuffle(fill)

			weapons, err := w.Draw.RandomN(weaponQuery, weaponCount)
			if err != nil {
				return nil, err
			}

			queue := make([]domain.ItemID, len(classes))
			for pos, c := range classes {
				switch c {
				case slotEssential:
					original, err := p.IDAt(pos)
					if err != nil {
						return nil, err
					}
					queue[pos] = original
				case slotWeapon:
					queue[pos], weapons = weapons[0], weapons[1:]
				default:
					queue[pos], fill = fill[0], fill[1:]
				}
			}
			return queue, nil
		}
	}
}

func newDefaultWorld(deps Deps) Strategy {
	return newWorld(KindDefaultWorld, deps, planShuffled(draw.AcceptableDefaults, draw.Weapons))
}

func newOopsAllExplosives(deps Deps) Strategy {
	return newWorld(KindOopsAllExplosives, deps, planShuffled(draw.Explosives, draw.Explosives))
}

// planTreasureHunt hides the gold idol in distinct good treasure slots and
// turns every other idol into a bust.
func planTreasureHunt(w *worldStrategy) planFunc {
	return func(p *pool.Pool) ([]domain.ItemID, error) {
		candidates := p.Positions(domain.Has(domain.CapabilityGoodTreasureLocation))
		chosen, err := pickDistinct(w.Draw, candidates, TreasureHuntIdolCount)
		if err != nil {
			return nil, err
		}

		queue := p.IDs()
		for pos, id := range queue {
			if id == domain.ItemGoldIdol {
				queue[pos] = domain.ItemBust
			}
		}
		for _, pos := range chosen {
			queue[pos] = domain.ItemGoldIdol
		}
		return queue, nil
	}
}

func newTreasureHunt(deps Deps) Strategy {
	return newWorld(KindTreasureHunt, deps, planTreasureHunt)
}

// planNoItems leaves only pistols in weapon slots and coins everywhere else
// except essentials.
func planNoItems(*worldStrategy) planFunc {
	return func(p *pool.Pool) ([]domain.ItemID, error) {
		queue := p.IDs()
		for pos, c := range classify(p) {
			switch c {
			case slotWeapon:
				queue[pos] = domain.ItemNoItemsPistol
			case slotRemaining:
				queue[pos] = domain.ItemNoItemsCoin
			}
		}
		return queue, nil
	}
}

func newNoItems(deps Deps) Strategy {
	return newWorld(KindNoItems, deps, planNoItems)
}

// planAction rolls every ordinary slot into a coin, an explosive, a weapon or
// the original item.
func planAction(w *worldStrategy) planFunc {
	return func(p *pool.Pool) ([]domain.ItemID, error) {
		queue := p.IDs()
		for pos, c := range classify(p) {
			var q draw.Query
			switch c {
			case slotEssential:
				continue
			case slotWeapon:
				q = draw.Weapons
			default:
				roll := w.Draw.Intn(ActionWorldRollSides)
				switch {
				case roll < ActionWorldCoinBelow:
					q = draw.Coins
				case roll < ActionWorldBlastBelow:
					q = draw.Explosives
				case roll < ActionWorldWeaponBelow:
					q = draw.Weapons
				default:
					continue
				}
			}

			id, err := w.Draw.Random(q)
			if err != nil {
				return nil, err
			}
			queue[pos] = id
		}
		return queue, nil
	}
}

func newActionWorld(deps Deps) Strategy {
	return newWorld(KindActionWorld, deps, planAction)
}

// pickDistinct selects n distinct elements of positions, uniformly.
func pickDistinct(d RandomDraw, positions []int, n int) ([]int, error) {
	if n > len(positions) {
		return nil, insufficient(n, len(positions))
	}
	work := append([]int(nil), positions...)
	for i := 0; i < n; i++ {
		j := i + d.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n], nil
}

func insufficient(want, have int) error {
	return fmt.Errorf("%w: want %d treasure slots, have %d", domain.ErrInsufficientCandidates, want, have)
}
