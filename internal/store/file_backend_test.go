package store

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/expiration-tracker/internal/model"
)

func TestFileBackend_LoadMissing(t *testing.T) {
	b := NewFileBackend(afero.NewMemMapFs(), "/nowhere/data.json")

	items, err := b.Load()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFileBackend_SaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := NewFileBackend(fs, "/cfg/expiration-tracker/data.json")

	want := []model.Item{
		{ID: "item-1", Name: "Milk", ExpirationTime: "2026-10-24 09:30:15"},
		{ID: "item-2", Name: "Honey", ExpirationTime: "inf"},
	}
	require.NoError(t, b.Save(want))

	got, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	exists, err := afero.Exists(fs, "/cfg/expiration-tracker/data.json"+tempSuffix)
	require.NoError(t, err)
	assert.False(t, exists, "temporary file must not survive a save")
}

func TestFileBackend_SaveEmptyWritesArray(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := NewFileBackend(fs, "/data.json")

	require.NoError(t, b.Save(nil))

	data, err := afero.ReadFile(fs, "/data.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileBackend_LoadLegacyRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	legacy := `[{"name": "Bread", "expiration_time": "2026-10-22 08:00:00"}]`
	require.NoError(t, afero.WriteFile(fs, "/data.json", []byte(legacy), 0o644))

	items, err := NewFileBackend(fs, "/data.json").Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].ID)
	assert.Equal(t, "Bread", items[0].Name)
}

func TestFileBackend_LoadNullIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data.json", []byte("null"), 0o644))

	items, err := NewFileBackend(fs, "/data.json").Load()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFileBackend_LoadCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data.json", []byte("not json"), 0o644))

	_, err := NewFileBackend(fs, "/data.json").Load()
	assert.Error(t, err)
}

func TestFileBackend_SaveReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	previous := []byte(`[{"id":"item-1","name":"Tofu","expiration_time":"inf"}]`)
	require.NoError(t, afero.WriteFile(base, "/data.json", previous, 0o644))

	b := NewFileBackend(afero.NewReadOnlyFs(base), "/data.json")
	err := b.Save([]model.Item{{ID: "item-2", Name: "Kale", ExpirationTime: "inf"}})
	assert.Error(t, err)

	data, err := afero.ReadFile(base, "/data.json")
	require.NoError(t, err)
	assert.Equal(t, previous, data, "a failed save leaves the previous file intact")
}
