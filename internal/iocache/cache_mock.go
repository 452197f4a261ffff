package iocache

import (
	"github.com/stretchr/testify/mock"

	"github.com/velomapa/gpxscale/internal/contract"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetElevationStore implements the CacheManager interface.
func (m *MockCacheManager) GetElevationStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(lat, lon float64) (*float64, error) {
	args := m.Called(lat, lon)
	elevation, _ := args.Get(0).(*float64)
	return elevation, args.Error(1)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(lat, lon, elevation float64, timestamp int64) error {
	args := m.Called(lat, lon, elevation, timestamp)
	return args.Error(0)
}

// Entries implements the CacheStore interface.
func (m *MockCacheStore) Entries() ([]contract.CacheEntry, error) {
	args := m.Called()
	entries, _ := args.Get(0).([]contract.CacheEntry)
	return entries, args.Error(1)
}

// Clear implements the CacheStore interface.
func (m *MockCacheStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Status implements the CacheStore interface.
func (m *MockCacheStore) Status() (contract.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(contract.CacheStatus), args.Error(1)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
