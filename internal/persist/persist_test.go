package persist_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavola-pos/dashboard/internal/persist"
	"github.com/tavola-pos/dashboard/internal/store"
)

func TestFileBridge_LoadMissingFileMeansNoPriorState(t *testing.T) {
	t.Parallel()

	bridge := persist.NewFileBridge(filepath.Join(t.TempDir(), persist.DefaultFileName))
	snap, err := bridge.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestFileBridge_LoadCorruptBlobMeansNoPriorState(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), persist.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	bridge := persist.NewFileBridge(path)
	snap, err := bridge.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestFileBridge_SaveThenLoadRoundTrips(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 27, 15, 0, 0, 0, time.UTC)
	menu, tables, orders := store.Seed(now)

	path := filepath.Join(t.TempDir(), "state", persist.DefaultFileName)
	bridge := persist.NewFileBridge(path)

	require.NoError(t, bridge.Save(&persist.Snapshot{
		MenuItems: menu,
		Tables:    tables,
		Orders:    orders,
	}))

	snap, err := bridge.Load()
	require.NoError(t, err)
	require.NotNil(t, snap)

	require.Len(t, snap.MenuItems, len(menu))
	assert.Equal(t, menu[0].ID, snap.MenuItems[0].ID)
	assert.True(t, menu[0].Price.Equal(snap.MenuItems[0].Price))
	require.Len(t, snap.Tables, len(tables))
	require.Len(t, snap.Orders, len(orders))
	assert.Equal(t, orders[0].ID, snap.Orders[0].ID)
	assert.True(t, orders[0].CreatedAt.Equal(snap.Orders[0].CreatedAt))
	assert.Equal(t, orders[0].Items, snap.Orders[0].Items)
}

func TestFileBridge_SaveOverwritesWholeBlob(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), persist.DefaultFileName)
	bridge := persist.NewFileBridge(path)

	now := time.Now()
	menu, tables, orders := store.Seed(now)
	require.NoError(t, bridge.Save(&persist.Snapshot{MenuItems: menu, Tables: tables, Orders: orders}))
	require.NoError(t, bridge.Save(&persist.Snapshot{}))

	snap, err := bridge.Load()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Empty(t, snap.MenuItems)
	assert.Empty(t, snap.Orders)
}
