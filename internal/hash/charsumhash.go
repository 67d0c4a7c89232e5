package hash

// CharSumHashAlgorithm - The internally used bucket selection algorithm. It sums the code points of every
// character in the key, with no weighting by position, and applies bucket = sum % tableSize.
// Keys made up of the same characters in any order (anagrams) always select the same bucket.
type CharSumHashAlgorithm struct {
	tableSize int64
}

// NewCharSumHashAlgorithm - Returns a pointer to a new CharSumHashAlgorithm instance
func NewCharSumHashAlgorithm(tableSize int64) *CharSumHashAlgorithm {
	ha := &CharSumHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, there is no rounding to a power of 2.
//   - tableSize is the number of buckets the table will address
func (C *CharSumHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
// An empty key sums to 0 and hence always lands in bucket 0.
func (C *CharSumHashAlgorithm) HashFunc1(key string) int64 {
	if C.tableSize <= 0 {
		return 0
	}

	var sum int64
	for _, r := range key {
		sum += int64(r)
	}

	return sum % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CharSumHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
