package randomizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

func TestRandomizer_Delegates(t *testing.T) {
	ctx := context.Background()
	m := new(MockStrategy)
	m.On("Randomize", mock.Anything, idKitchenKnife).Return(idHammer)

	r := NewRandomizer(m)
	assert.True(t, r.Enabled())
	assert.Same(t, m, r.Strategy())
	assert.Equal(t, idHammer, r.Randomize(ctx, idKitchenKnife))
	m.AssertExpectations(t)
}

func TestRandomizer_Disable(t *testing.T) {
	ctx := context.Background()
	m := new(MockStrategy)
	m.On("Name").Return(KindDefaultWorld).Maybe()
	m.On("Initialize", mock.Anything, domain.Scenario("the_showstopper"), mock.Anything).Return(nil)
	m.On("Randomize", mock.Anything, idKitchenKnife).Return(idHammer)

	r := NewRandomizer(m)
	r.Disable()
	assert.False(t, r.Enabled())

	t.Run("identity while disabled", func(t *testing.T) {
		assert.Equal(t, idKitchenKnife, r.Randomize(ctx, idKitchenKnife))
		assert.Equal(t, idUnknown, r.Randomize(ctx, idUnknown))
		m.AssertNotCalled(t, "Randomize", mock.Anything, mock.Anything)
	})

	t.Run("initialize re-enables", func(t *testing.T) {
		require.NoError(t, r.Initialize(ctx, "the_showstopper", nil))
		assert.True(t, r.Enabled())
		assert.Equal(t, idHammer, r.Randomize(ctx, idKitchenKnife))
	})

	m.AssertExpectations(t)
}

func TestRandomizer_InitializeError(t *testing.T) {
	m := new(MockStrategy)
	m.On("Name").Return(KindTreasureHunt)
	m.On("Initialize", mock.Anything, domain.Scenario("tiny"), mock.Anything).Return(domain.ErrInsufficientCandidates)

	r := NewRandomizer(m)
	r.Disable()
	err := r.Initialize(context.Background(), "tiny", nil)

	assert.True(t, errors.Is(err, domain.ErrInsufficientCandidates))
	assert.Contains(t, err.Error(), "treasure_hunt")
	assert.Contains(t, err.Error(), "tiny")
	assert.True(t, r.Enabled(), "initialize enables even when the strategy fails")
}

func TestRandomizer_RealStrategyAfterDisable(t *testing.T) {
	ctx := context.Background()
	deps := projectDeps(t, 11)
	p := showstopperPool(t, deps)

	r := NewRandomizer(mustNew(t, KindSleepyNPC, deps))
	r.Disable()
	assert.Equal(t, domain.ItemHardShotgun, r.Randomize(ctx, domain.ItemHardShotgun))

	require.NoError(t, r.Initialize(ctx, "the_showstopper", p))
	assert.Equal(t, domain.ItemSedativeCoin, r.Randomize(ctx, domain.ItemHardShotgun))
}
