package contacthashmap

import (
	"fmt"
	"github.com/gostonefire/contacthashmap/crt"
	"github.com/gostonefire/contacthashmap/internal/chain"
	"github.com/gostonefire/contacthashmap/internal/model"
	"strings"
)

// BucketDump - Contents of one bucket as listed by Dump
//   - Index is the bucket number
//   - Contacts are the records in the bucket chain, from head to tail
type BucketDump struct {
	Index    int64
	Contacts []Contact
}

// String - Renders the bucket as "Index i: Empty" or "Index i: - name: number - name: number"
func (B BucketDump) String() string {
	if len(B.Contacts) == 0 {
		return fmt.Sprintf("Index %d: Empty", B.Index)
	}

	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Index %d:", B.Index)
	for _, c := range B.Contacts {
		_, _ = fmt.Fprintf(&sb, " - %s", c)
	}

	return sb.String()
}

// Insert - Adds a contact for key with the given number, or replaces the contact if key already exists.
// A replaced contact keeps its position in the bucket chain, a new one is appended at the tail.
//   - key is the identifier of a contact, it is also used as the contact name
//   - number is the phone number, its format is not validated
//
// It returns:
//   - err is nil when using the internal hash algorithm, a custom algorithm may cause crt.BucketOutOfRange
func (C *ContactHashMap) Insert(key, number string) (err error) {
	contact := model.NewContact(key, number)

	bucketNo, err := C.HashIndex(key)
	if err != nil {
		err = fmt.Errorf("error while inserting %q: %w", key, err)
		return
	}

	C.buckets[bucketNo], _ = chain.Upsert(C.buckets[bucketNo], key, contact)

	return
}

// Search - Gets the contact that corresponds to the given key.
//   - key is the identifier of a contact
//
// It returns:
//   - contact is the matching contact if found
//   - found is false if no contact is stored for key, this is a normal outcome and not an error
func (C *ContactHashMap) Search(key string) (contact Contact, found bool) {
	bucketNo, err := C.HashIndex(key)
	if err != nil {
		// Insert never stores a key in a bucket outside the table
		return
	}

	entry, found := chain.Find(C.buckets[bucketNo], key)
	if found {
		contact = entry.Value
	}

	return
}

// Dump - Walks through the entire set of buckets in bucket number order and lists the contacts in each.
// It is purely observational and meant for debugging and tests.
func (C *ContactHashMap) Dump() (dump []BucketDump) {
	dump = make([]BucketDump, C.capacity)
	for i := int64(0); i < C.capacity; i++ {
		dump[i].Index = i
		iter := chain.NewRecords(C.buckets[i])
		for iter.HasNext() {
			contact, _ := iter.Next()
			dump[i].Contacts = append(dump[i].Contacts, contact)
		}
	}

	return
}

// DumpLines - Same as Dump but with each bucket rendered as text
func (C *ContactHashMap) DumpLines() (lines []string) {
	dump := C.Dump()
	lines = make([]string, len(dump))
	for i, b := range dump {
		lines[i] = b.String()
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length capacity with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (C *ContactHashMap) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int64, C.capacity)
	}

	for i, head := range C.buckets {
		n := chain.Length(head)
		if n == 0 {
			continue
		}

		hashMapStat.Records += n
		hashMapStat.UsedBuckets++
		if n > hashMapStat.LongestChain {
			hashMapStat.LongestChain = n
		}
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = n
		}
	}

	hashMapStat.LoadFactor = float64(hashMapStat.Records) / float64(C.capacity)

	return
}

// GetBucket - Returns an iterator over the contacts in one bucket, from chain head to tail.
//   - bucketNo is the bucket number, 0 to capacity - 1
//
// It returns:
//   - chainRecords is a pointer to a ChainRecords iterator
//   - err is of type crt.BucketOutOfRange if bucketNo is outside the table
func (C *ContactHashMap) GetBucket(bucketNo int64) (chainRecords *ChainRecords, err error) {
	if bucketNo < 0 || bucketNo >= C.capacity {
		err = crt.NewBucketOutOfRange(fmt.Sprintf("bucket number %d is outside the table of %d buckets", bucketNo, C.capacity))
		return
	}

	chainRecords = newChainRecords(chain.NewRecords(C.buckets[bucketNo]))

	return
}
