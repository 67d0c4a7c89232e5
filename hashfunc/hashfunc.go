package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ContactHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new contact hash map. Hence, if a custom hash algorithm is supplied that
	// implements this interface and the instance is already having a table size, it will be overwritten by
	// the capacity that was supplied when creating the contact hash map.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The contact hash map never grows, so an implementation that rounds the table size up to a power of 2
	// or to a prime will be rejected when the hash map is created.
	GetTableSize() int64
}
