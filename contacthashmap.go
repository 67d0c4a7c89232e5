package contacthashmap

import (
	"fmt"
	"github.com/gostonefire/contacthashmap/crt"
	"github.com/gostonefire/contacthashmap/hashfunc"
	"github.com/gostonefire/contacthashmap/internal/hash"
	"github.com/gostonefire/contacthashmap/internal/model"
)

// Contact - A contact record, name paired with a phone number
type Contact = model.Contact

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - LoadFactor is Records divided by the number of buckets
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// ContactHashMap - The main implementation struct.
// It holds a fixed number of buckets where each bucket is the head of a single linked chain of entries.
// A ContactHashMap is not safe for concurrent use, see SyncContactHashMap.
type ContactHashMap struct {
	capacity          int64
	buckets           []*model.Entry
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewContactHashMap - Returns a new contact hash map with a fixed number of buckets.
// The number of buckets never changes, so a capacity that is too low for the number of keys will only
// result in longer chains.
//   - capacity is the number of buckets, it has to be higher than 0 (zero)
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - contactHashMap is a pointer to a ContactHashMap struct
//   - err is of type crt.InvalidCapacity if capacity is not valid, or if the hash algorithm can't address exactly capacity buckets
func NewContactHashMap(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (contactHashMap *ContactHashMap, err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = crt.NewInvalidCapacity(fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", capacity))
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewCharSumHashAlgorithm(capacity)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(capacity)
	}

	if tableSize := hashAlgorithm.GetTableSize(); tableSize != capacity {
		err = crt.NewInvalidCapacity(fmt.Sprintf("hash algorithm addresses %d buckets but capacity is %d", tableSize, capacity))
		return
	}

	contactHashMap = &ContactHashMap{
		capacity:          capacity,
		buckets:           make([]*model.Entry, capacity),
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Capacity - Returns the fixed number of buckets
func (C *ContactHashMap) Capacity() int64 {
	return C.capacity
}

// InternalAlgorithm - Returns true if the internal character sum hash algorithm is used
func (C *ContactHashMap) InternalAlgorithm() bool {
	return C.internalAlgorithm
}

// HashIndex - Returns the bucket number for key.
// With the internal algorithm err is always nil. A custom algorithm returning a bucket number outside
// the table results in an error of type crt.BucketOutOfRange.
func (C *ContactHashMap) HashIndex(key string) (bucketNo int64, err error) {
	bucketNo = C.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= C.capacity {
		err = crt.NewBucketOutOfRange(fmt.Sprintf("hash algorithm returned bucket %d for a table of %d buckets", bucketNo, C.capacity))
	}

	return
}
