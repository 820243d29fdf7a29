package randomizer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
)

// MockStrategy
type MockStrategy struct {
	mock.Mock
}

func (m *MockStrategy) Name() Kind {
	args := m.Called()
	return args.Get(0).(Kind)
}

func (m *MockStrategy) Initialize(ctx context.Context, scen domain.Scenario, p *pool.Pool) error {
	args := m.Called(ctx, scen, p)
	return args.Error(0)
}

func (m *MockStrategy) Randomize(ctx context.Context, id domain.ItemID) domain.ItemID {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ItemID)
}

// MockPoolSource
type MockPoolSource struct {
	mock.Mock
}

func (m *MockPoolSource) Scenarios() ([]domain.Scenario, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scenario), args.Error(1)
}

func (m *MockPoolSource) Pool(scen domain.Scenario, catalog repository.Catalog) (*pool.Pool, error) {
	args := m.Called(scen, catalog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pool.Pool), args.Error(1)
}
