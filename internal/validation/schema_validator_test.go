package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_CustomFS(t *testing.T) {
	fsys := fstest.MapFS{
		"person.schema.json": {Data: []byte(`{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"age": {"type": "integer", "minimum": 0}
			},
			"required": ["name"]
		}`)},
	}
	v := NewSchemaValidatorFS(fsys)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"name": "John", "age": 30}`, ""},
		{"optional field omitted", `{"name": "Jane"}`, ""},
		{"missing required field", `{"age": 25}`, "required"},
		{"wrong type", `{"name": "John", "age": "thirty"}`, "/age"},
		{"constraint violation", `{"name": "John", "age": -5}`, "minimum"},
		{"invalid JSON", `{"name": "John", "age": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	err := NewSchemaValidatorFS(fstest.MapFS{}).ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_MissingDataFile(t *testing.T) {
	err := NewSchemaValidator().ValidateFile("nonexistent.json", SchemaContent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{}`), SchemaContent))
	require.NoError(t, v.ValidateBytes([]byte(`{"addFish": []}`), SchemaContent))

	assert.Len(t, v.schemas, 1)
	assert.True(t, v.loaded[SchemaContent])
}

func TestContentSchema(t *testing.T) {
	v := NewSchemaValidator()

	assert.NoError(t, v.ValidateBytes([]byte(`{"addFish": [{"fishKey": "128"}], "setFishTraits": {"128": {"dartFrequency": 80}}}`), SchemaContent))
	assert.Error(t, v.ValidateBytes([]byte(`{"addFishes": []}`), SchemaContent), "unknown top-level key")
	assert.Error(t, v.ValidateBytes([]byte(`{"addFish": {}}`), SchemaContent), "records must be a list")
}

func TestContentSchema_RecordDefinitions(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		ref     string
		data    string
		wantErr bool
	}{
		{"fish ok", DefFish, `{"fishKey": "StardewValley:Object/128", "availability": {"chance": 0.3, "seasons": ["spring", "summer"]}}`, false},
		{"fish without key", DefFish, `{"availability": {}}`, true},
		{"fish negative chance", DefFish, `{"fishKey": "128", "availability": {"chance": -1}}`, true},
		{"trash ok", DefTrash, `{"itemKey": "168", "availability": {"chance": 1, "when": {"!WATER_DEPTH": "3"}}}`, false},
		{"treasure empty keys", DefTreasure, `{"itemKeys": []}`, true},
		{"treasure ok", DefTreasure, `{"itemKeys": ["166"], "minQuantity": 1, "maxQuantity": 3}`, false},
		{"traits bad behavior", DefTraits, `{"dartBehavior": "wiggly"}`, true},
		{"effect ok", DefEffect, `{"target": "treasureChance", "op": "add", "value": 0.05}`, false},
		{"effect bad op", DefEffect, `{"target": "treasureChance", "op": "pow", "value": 2}`, true},
		{"location ok", DefLocation, `{"names": ["BeachNightMarket"], "overrideLocation": "Ocean", "overrideChance": 0.2}`, false},
		{"location chance above one", DefLocation, `{"overrideLocation": "Ocean", "overrideChance": 1.5}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFishingConfigSchema(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()

	good := filepath.Join(dir, "fishing.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"fish": {"chance": {"baseChance": 0.5, "maxChance": 1}, "recatchFrequency": "every:3"},
		"treasure": {"maxTreasureQuantity": 3}
	}`), 0644))
	assert.NoError(t, v.ValidateFile(good, SchemaFishingConfig))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"fish": {"recatchFrequency": "sometimes"}}`), 0644))
	assert.Error(t, v.ValidateFile(bad, SchemaFishingConfig))
}
