package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "store-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := NewSQLiteStore(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	return store
}

func TestNewSQLiteStore(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "store-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Parent directory and database file should have been created
	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "Database file should exist")
}

func TestSQLiteStore_SetGet(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	err := store.Set(ctx, "test:key", payload{Name: "flu season", Count: 7})
	require.NoError(t, err)

	var got payload
	found, err := store.Get(ctx, "test:key", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "flu season", Count: 7}, got)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	var got map[string]int
	found, err := store.Get(context.Background(), "no:such:key", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "counter", 1))
	require.NoError(t, store.Set(ctx, "counter", 2))

	var got int
	found, err := store.Get(ctx, "counter", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, got)
}

func TestSQLiteStore_CorruptValueIsMiss(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()

	// A value whose shape changed between versions should behave as absent.
	require.NoError(t, store.Set(ctx, "legacy", "plain string"))

	var got struct {
		Count int `json:"count"`
	}
	found, err := store.Get(ctx, "legacy", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "doomed", []string{"a", "b"}))
	require.NoError(t, store.Delete(ctx, "doomed"))

	var got []string
	found, err := store.Get(ctx, "doomed", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, "doomed"))
}

func TestSQLiteStore_Persistence(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "store-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "durable", 42))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer second.Close()

	var got int
	found, err := second.Get(ctx, "durable", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, got)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", map[string]int{"x": 1}))

	var got map[string]int
	found, err := store.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]int{"x": 1}, got)

	require.NoError(t, store.Delete(ctx, "key"))
	found, err = store.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
