package handler

import (
	"context"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
)

// RandomizerService is the read-only view of randomizer.Service the
// diagnostics API needs
type RandomizerService interface {
	Scenarios() ([]domain.Scenario, error)
	Scenario() (domain.Scenario, error)
	Status() []randomizer.Status
	Preview(ctx context.Context, scen domain.Scenario, kind randomizer.Kind) (*randomizer.Preview, error)
	Catalog() repository.Catalog
}

// Handler serves the diagnostics endpoints
type Handler struct {
	svc RandomizerService
}

func NewHandler(svc RandomizerService) *Handler {
	return &Handler{svc: svc}
}
