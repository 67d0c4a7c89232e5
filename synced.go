package contacthashmap

import (
	"github.com/gostonefire/contacthashmap/hashfunc"
	"sync"
)

// SyncContactHashMap - Wraps a ContactHashMap with a read/write mutex so that it can be shared between goroutines.
// Insert takes the write lock, all other operations take the read lock.
type SyncContactHashMap struct {
	mu  sync.RWMutex
	chm *ContactHashMap
}

// NewSyncContactHashMap - Returns a new synchronized contact hash map, see NewContactHashMap for parameters
func NewSyncContactHashMap(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (syncContactHashMap *SyncContactHashMap, err error) {
	chm, err := NewContactHashMap(capacity, hashAlgorithm)
	if err != nil {
		return
	}

	syncContactHashMap = &SyncContactHashMap{chm: chm}

	return
}

// Capacity - Returns the fixed number of buckets
func (S *SyncContactHashMap) Capacity() int64 {
	return S.chm.Capacity()
}

// Insert - See ContactHashMap.Insert
func (S *SyncContactHashMap) Insert(key, number string) error {
	S.mu.Lock()
	defer S.mu.Unlock()

	return S.chm.Insert(key, number)
}

// Search - See ContactHashMap.Search
func (S *SyncContactHashMap) Search(key string) (Contact, bool) {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.chm.Search(key)
}

// Dump - See ContactHashMap.Dump
func (S *SyncContactHashMap) Dump() []BucketDump {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.chm.Dump()
}

// Stat - See ContactHashMap.Stat
func (S *SyncContactHashMap) Stat(includeDistribution bool) HashMapStat {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.chm.Stat(includeDistribution)
}
