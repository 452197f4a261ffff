package iocache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomapa/gpxscale/schema"
)

func TestCacheStoreManager_GetElevationStore(t *testing.T) {
	mgr := &CacheStoreManager{}
	assert.Nil(t, mgr.GetElevationStore())

	store := &MockCacheStore{}
	mgr.elevation = store
	assert.Same(t, store, mgr.GetElevationStore())
}

func TestInitCaching_RunsOnce(t *testing.T) {
	require.NoError(t, InitCaching(schema.NoneBackend, ""))
	first := Manager.GetElevationStore()
	require.NotNil(t, first)

	// A second call is a no-op and keeps the original store.
	require.NoError(t, InitCaching(schema.SQLiteBackend, "/nonexistent/path.db"))
	assert.Same(t, first, Manager.GetElevationStore())
}

func TestMockCacheManager(t *testing.T) {
	store := &MockCacheStore{}
	mgr := &MockCacheManager{}
	mgr.On("GetElevationStore").Return(store)

	assert.Same(t, store, mgr.GetElevationStore())
	mgr.AssertExpectations(t)
}
