package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemID(t *testing.T) {
	t.Run("canonical string round trips", func(t *testing.T) {
		id, err := ParseItemID("4b0def3b-7378-494d-b885-92c334f2f8cb")
		require.NoError(t, err)
		assert.Equal(t, "4b0def3b-7378-494d-b885-92c334f2f8cb", id.String())
		assert.Equal(t, ItemGoldIdol, id)
	})

	t.Run("upper case is normalized", func(t *testing.T) {
		id, err := ParseItemID("4B0DEF3B-7378-494D-B885-92C334F2F8CB")
		require.NoError(t, err)
		assert.Equal(t, ItemGoldIdol, id)
	})

	t.Run("malformed string is rejected", func(t *testing.T) {
		_, err := ParseItemID("not-a-uuid")
		assert.True(t, errors.Is(err, ErrInvalidItemID))
	})

	t.Run("all zeros is the nil sentinel", func(t *testing.T) {
		id, err := ParseItemID("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.True(t, id.IsNil())
		assert.False(t, ItemBust.IsNil())
	})
}

func TestItemID_JSON(t *testing.T) {
	var decoded struct {
		ID ItemID `json:"id"`
	}
	err := json.Unmarshal([]byte(`{"id":"a6bcac8b-9772-424e-b2c4-3bdb4da0e349"}`), &decoded)
	require.NoError(t, err)
	assert.Equal(t, ItemBust, decoded.ID)

	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a6bcac8b-9772-424e-b2c4-3bdb4da0e349"}`, string(out))
}

func TestItemCapabilities(t *testing.T) {
	item := &Item{
		ID:           ItemHardPistol,
		Name:         "ICA19",
		Type:         "pistol",
		Capabilities: CapabilityWeapon | CapabilityPistol | CapabilityAcceptableDefault,
	}

	assert.True(t, item.IsWeapon())
	assert.True(t, item.IsPistol())
	assert.True(t, item.IsAcceptableDefault())
	assert.False(t, item.IsEssential())
	assert.False(t, item.IsExplosive())
	assert.Equal(t, []string{"weapon", "pistol", "acceptable_default"}, item.CapabilityNames())
	assert.True(t, Has(CapabilityPistol)(item))
	assert.False(t, Has(CapabilityCoin)(item))
}

func TestParseCapability(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Capability
		ok    bool
	}{
		{"weapon", "weapon", CapabilityWeapon, true},
		{"mixed case with spaces", " Good_Treasure_Location ", CapabilityGoodTreasureLocation, true},
		{"unknown", "edible", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCapability(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
