package hashfunc

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - A bucket selection algorithm using xxhash over the key bytes and then applying
// bucket = hash % tableSize. Unlike the internal character sum it is sensitive to character order,
// so anagrams will normally end up in different buckets.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key string) int64 {
	if X.tableSize <= 0 {
		return 0
	}
	return int64(xxhash.Sum64String(key) % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
