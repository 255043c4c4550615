package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespacedKey_Normalize(t *testing.T) {
	tests := []struct {
		name string
		a, b NamespacedKey
		want bool
	}{
		{"category marker stripped", ObjectKey("(O)138"), ObjectKey("138"), true},
		{"same key", ObjectKeyInt(158), ObjectKey("158"), true},
		{"different ids", ObjectKey("138"), ObjectKey("139"), false},
		{"different namespace", NamespacedKey{Namespace: "mod", Key: "Object/138"}, ObjectKey("138"), false},
		{"marker without id is kept", ObjectKey("(O)"), ObjectKey("(O)"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestParseKey(t *testing.T) {
	t.Run("bare id is a game object", func(t *testing.T) {
		k, err := ParseKey("(O)138")
		require.NoError(t, err)
		assert.Equal(t, ObjectKey("138"), k)
	})

	t.Run("namespaced", func(t *testing.T) {
		k, err := ParseKey("MyMod:Fish/Sunfish")
		require.NoError(t, err)
		assert.Equal(t, "MyMod", k.Namespace)
		assert.Equal(t, "Fish/Sunfish", k.Key)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseKey("  ")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("missing half", func(t *testing.T) {
		_, err := ParseKey(":138")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestNamespacedKey_ObjectID(t *testing.T) {
	id, ok := ObjectKey("(O)168").ObjectID()
	require.True(t, ok)
	assert.Equal(t, "168", id)
	assert.Equal(t, "(O)168", ObjectKey("168").QualifiedID())

	_, ok = NamespacedKey{Namespace: "mod", Key: "thing"}.ObjectID()
	assert.False(t, ok)
}

func TestNamespacedKey_JSONMapKey(t *testing.T) {
	in := map[NamespacedKey]int{ObjectKey("138"): 1}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"StardewValley:Object/138": 1}`, string(data))

	var out map[NamespacedKey]int
	require.NoError(t, json.Unmarshal([]byte(`{"(O)138": 2}`), &out))
	assert.Equal(t, 2, out[ObjectKey("138")])
}
