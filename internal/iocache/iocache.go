package iocache

import (
	"sync"

	"github.com/velomapa/gpxscale/internal/contract"
)

// CacheStoreManager manages CacheStore instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	elevation    contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetElevationStore returns the elevation CacheStore.
func (mgr *CacheStoreManager) GetElevationStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.elevation
}
