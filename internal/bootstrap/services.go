package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/ItemRandomizer_Go/internal/config"
	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/draw"
	"github.com/osse101/ItemRandomizer_Go/internal/item"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
)

// App holds the wired randomizer components
type App struct {
	Catalog     *item.Catalog
	Draw        *draw.Repository
	PreviewDraw *draw.Repository
	Pools       *pool.Loader
	Service     *randomizer.Service
}

// InitializeApp loads the catalog and pools from cfg and builds the randomizer
// service. When cfg names a startup scenario it is loaded before returning.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, error) {
	catalog, err := item.NewLoader().LoadCatalog(cfg.ItemsPath)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogReady, "items", catalog.Len())

	pools := pool.NewLoader(cfg.PoolsDir)
	if err := pools.Load(); err != nil {
		return nil, fmt.Errorf(ErrFmtLoadPools, err)
	}
	scenarios, err := pools.Scenarios()
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadPools, err)
	}
	slog.Info(LogMsgPoolsReady, "dir", cfg.PoolsDir, "scenarios", len(scenarios))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	repo, err := draw.New(catalog, seed, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtNewDraw, err)
	}

	svc, err := randomizer.NewService(randomizer.Deps{Catalog: catalog, Draw: repo}, pools, cfg.Strategies())
	if err != nil {
		return nil, fmt.Errorf(ErrFmtNewService, err)
	}

	previewSeed := seed ^ previewSeedSalt
	if previewSeed == 0 {
		previewSeed = previewSeedSalt
	}
	previewRepo, err := draw.New(catalog, previewSeed, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtNewDraw, err)
	}
	svc.UsePreviewDraw(previewRepo)
	slog.Info(LogMsgServiceReady, "seed", seed, "strategies", svc.Status())

	if cfg.Scenario != "" {
		scen := domain.Scenario(cfg.Scenario)
		if err := svc.LoadScenario(ctx, scen); err != nil {
			slog.Error(LogMsgScenarioLoadFailed, "scenario", scen, "error", err)
			return nil, fmt.Errorf(ErrFmtLoadScenario, scen, err)
		}
	}

	return &App{Catalog: catalog, Draw: repo, PreviewDraw: previewRepo, Pools: pools, Service: svc}, nil
}
