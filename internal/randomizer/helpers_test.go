package randomizer

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/draw"
	"github.com/osse101/ItemRandomizer_Go/internal/item"
	"github.com/osse101/ItemRandomizer_Go/internal/logger"
	"github.com/osse101/ItemRandomizer_Go/internal/pool"
)

// Items from configs/items.json used across the tests
var (
	idKitchenKnife = domain.MustParseItemID("cad08bec-f72f-4c47-b151-79064388d4eb")
	idScrewdriver  = domain.MustParseItemID("0256b88b-8bf3-4aeb-b94e-ba887b470af1")
	idHammer       = domain.MustParseItemID("50c9b05b-e613-4789-90d2-7379eadaf943")
	idLockpick     = domain.MustParseItemID("5a7bde3d-b006-447f-b77b-c3295fc96c7f")
	idKeycard      = domain.MustParseItemID("19130f23-557c-4f42-a020-bdab09080a3a")
	idRemote       = domain.MustParseItemID("9d956d44-6475-45ef-a2f5-6770832f8dd1")
	idBartoli75R   = domain.MustParseItemID("8dbb5b2a-6e20-4f8e-9001-a6625a1298a1")
	idUnknown      = domain.MustParseItemID("ffffffff-0000-4000-8000-000000000000")
)

var (
	projectCatalogOnce sync.Once
	projectCatalog     *item.Catalog
	projectCatalogErr  error
)

func loadProjectCatalog(t testing.TB) *item.Catalog {
	t.Helper()
	projectCatalogOnce.Do(func() {
		path := filepath.Join("..", "..", "configs", item.ConfigFileName)
		projectCatalog, projectCatalogErr = item.NewLoader().LoadCatalog(path)
	})
	require.NoError(t, projectCatalogErr)
	return projectCatalog
}

func depsFor(t testing.TB, catalog *item.Catalog, seed int64) Deps {
	t.Helper()
	d, err := draw.New(catalog, seed, draw.DefaultCacheSize)
	require.NoError(t, err)
	return Deps{Catalog: catalog, Draw: d}
}

func projectDeps(t testing.TB, seed int64) Deps {
	t.Helper()
	return depsFor(t, loadProjectCatalog(t), seed)
}

func projectPools() *pool.Loader {
	return pool.NewLoader(filepath.Join("..", "..", "configs", "pools"))
}

func showstopperPool(t testing.TB, deps Deps) *pool.Pool {
	t.Helper()
	p, err := projectPools().Pool("the_showstopper", deps.Catalog)
	require.NoError(t, err)
	return p
}

func mustNew(t testing.TB, kind Kind, deps Deps) Strategy {
	t.Helper()
	s, err := New(kind, deps)
	require.NoError(t, err)
	return s
}

func getItem(t testing.TB, deps Deps, id domain.ItemID) *domain.Item {
	t.Helper()
	it, err := deps.Catalog.GetItem(id)
	require.NoError(t, err)
	return it
}

// captureLogs routes the default logger to a JSON buffer until the test ends
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cfg := logger.NewConfig(logger.LogLevelDebug, logger.LogFormatJSON, logger.DefaultServiceName,
		logger.DefaultVersion, logger.EnvironmentTest, false)
	logger.InitLoggerWithWriter(cfg, &buf)
	return &buf
}

// logLines returns the captured records whose message is msg
func logLines(buf *bytes.Buffer, msg string) []string {
	var out []string
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if bytes.Contains(line, []byte(`"msg":"`+msg+`"`)) {
			out = append(out, string(line))
		}
	}
	return out
}
