package item

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"description": "Test items",
			"items": [
				{
					"id": "304fd49f-0624-4691-8506-149a4b16808e",
					"name": "ICA19",
					"type": "pistol",
					"capabilities": ["weapon", "pistol", "acceptable_default"]
				}
			]
		}`
		config, err := loader.Load(createTempFile(t, content))
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Equal(t, "Test items", config.Description)
		require.Len(t, config.Items, 1)
		assert.Equal(t, "ICA19", config.Items[0].Name)
		assert.Equal(t, []string{"weapon", "pistol", "acceptable_default"}, config.Items[0].Capabilities)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read item catalog file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{invalid json}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("unknown capability rejected by schema", func(t *testing.T) {
		content := `{"version": "1.0", "items": [
			{"id": "304fd49f-0624-4691-8506-149a4b16808e", "name": "ICA19", "type": "pistol", "capabilities": ["edible"]}
		]}`
		_, err := loader.Load(createTempFile(t, content))
		assert.Error(t, err)
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		config := &Config{
			Version: "1.0",
			Items: []Def{
				{ID: "304fd49f-0624-4691-8506-149a4b16808e", Name: "ICA19", Type: "pistol", Capabilities: []string{"weapon"}},
			},
		}
		assert.NoError(t, loader.Validate(config))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("empty items", func(t *testing.T) {
		err := loader.Validate(&Config{Version: "1.0", Items: []Def{}})
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		config := &Config{
			Version: "1.0",
			Items: []Def{
				{ID: "304fd49f-0624-4691-8506-149a4b16808e", Name: "First", Type: "pistol"},
				{ID: "304FD49F-0624-4691-8506-149A4B16808E", Name: "Second", Type: "pistol"},
			},
		}
		err := loader.Validate(config)
		assert.True(t, errors.Is(err, ErrDuplicateID))
		assert.Contains(t, err.Error(), "304fd49f-0624-4691-8506-149a4b16808e")
	})

	t.Run("malformed id", func(t *testing.T) {
		config := &Config{Version: "1.0", Items: []Def{{ID: "ica19", Name: "ICA19", Type: "pistol"}}}
		err := loader.Validate(config)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "index 0")
	})

	t.Run("empty type", func(t *testing.T) {
		config := &Config{Version: "1.0", Items: []Def{{ID: "304fd49f-0624-4691-8506-149a4b16808e", Name: "ICA19"}}}
		err := loader.Validate(config)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "empty type")
	})

	t.Run("unknown capability", func(t *testing.T) {
		config := &Config{
			Version: "1.0",
			Items: []Def{
				{ID: "304fd49f-0624-4691-8506-149a4b16808e", Name: "ICA19", Type: "pistol", Capabilities: []string{"shiny"}},
			},
		}
		err := loader.Validate(config)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "shiny")
	})
}

func TestBuildCatalog(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Items: []Def{
			{ID: "304fd49f-0624-4691-8506-149a4b16808e", Name: "ICA19", Type: "pistol", Capabilities: []string{"weapon", "pistol"}},
			{ID: "4b0def3b-7378-494d-b885-92c334f2f8cb", Name: "Gold Idol", Type: "questitem", Capabilities: []string{"essential"}},
		},
	}

	catalog, err := BuildCatalog(config)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	pistol, err := catalog.GetItem(domain.ItemHardPistol)
	require.NoError(t, err)
	assert.True(t, pistol.IsWeapon())
	assert.True(t, pistol.IsPistol())

	idol, err := catalog.GetItem(domain.ItemGoldIdol)
	require.NoError(t, err)
	assert.True(t, idol.IsEssential())
	assert.Equal(t, "questitem", idol.Type)
}

func TestItemLoader_LoadCatalog_ProjectConfig(t *testing.T) {
	// The shipped catalog must always load and cover every fixed substitution target.
	path := filepath.Join("..", "..", "configs", ConfigFileName)

	catalog, err := NewLoader().LoadCatalog(path)
	require.NoError(t, err)

	for _, id := range []domain.ItemID{
		domain.ItemGoldIdol, domain.ItemBust, domain.ItemNoItemsPistol, domain.ItemNoItemsCoin,
		domain.ItemFlashGrenade, domain.ItemFragGrenade, domain.ItemHardShotgun, domain.ItemHardRifle,
		domain.ItemHardSniper, domain.ItemHardPistol, domain.ItemHardSMG, domain.ItemSedativeCoin,
		domain.ItemOctaneBooster, domain.ItemChainShotgun1, domain.ItemChainShotgun2,
		domain.ItemChainRifle1, domain.ItemChainRifle2, domain.ItemChainSniper,
	} {
		assert.True(t, catalog.Contains(id), "catalog missing %s", id)
	}
}
