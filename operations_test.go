//go:build unit

package contacthashmap

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/gostonefire/contacthashmap/crt"
	"github.com/gostonefire/contacthashmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func newTestMap(t *testing.T, capacity int64) *ContactHashMap {
	chm, err := NewContactHashMap(capacity, nil)
	assert.NoError(t, err, "creates contact hash map")
	return chm
}

func TestContactHashMap_Insert(t *testing.T) {
	t.Run("inserts and finds contacts", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)

		// Execute
		err1 := chm.Insert("John", "909-876-1234")
		err2 := chm.Insert("Rebecca", "111-555-0002")

		// Check
		assert.NoError(t, err1, "insert John")
		assert.NoError(t, err2, "insert Rebecca")

		c, found := chm.Search("John")
		assert.True(t, found, "John found")
		assert.Equal(t, "John: 909-876-1234", c.String(), "correct contact")
		assert.Equal(t, "John", c.Name, "name is key")
	})

	t.Run("updates an existing contact without growing the chain", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)
		assert.NoError(t, chm.Insert("Rebecca", "111-555-0002"), "first insert")
		before := chm.Stat(true)

		// Execute
		err := chm.Insert("Rebecca", "999-444-9999")

		// Check
		assert.NoError(t, err, "update Rebecca")
		c, found := chm.Search("Rebecca")
		assert.True(t, found, "Rebecca found")
		assert.Equal(t, "999-444-9999", c.Number, "number updated")
		after := chm.Stat(true)
		assert.Equal(t, before.BucketDistribution, after.BucketDistribution, "chain length unchanged")
		assert.Equal(t, int64(1), after.Records, "one record")
	})

	t.Run("keeps colliding keys independently retrievable", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)
		amy, _ := chm.HashIndex("Amy")
		may, _ := chm.HashIndex("May")
		assert.Equal(t, amy, may, "Amy and May collide")

		// Execute
		assert.NoError(t, chm.Insert("Amy", "111-222-3333"), "insert Amy")
		assert.NoError(t, chm.Insert("May", "222-333-1111"), "insert May")

		// Check
		c, found := chm.Search("Amy")
		assert.True(t, found, "Amy found")
		assert.Equal(t, "111-222-3333", c.Number, "Amy number")
		c, found = chm.Search("May")
		assert.True(t, found, "May found")
		assert.Equal(t, "222-333-1111", c.Number, "May number")
		assert.Equal(t, int64(2), chm.Stat(false).LongestChain, "both in one chain")
	})

	t.Run("update keeps position in chain", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 1)
		for _, k := range []string{"a", "b", "c"} {
			assert.NoError(t, chm.Insert(k, "1"), "insert %s", k)
		}

		// Execute
		err := chm.Insert("b", "2")

		// Check
		assert.NoError(t, err, "update b")
		assert.Equal(t, []string{"Index 0: - a: 1 - b: 2 - c: 1"}, chm.DumpLines(), "order preserved")
	})

	t.Run("fails on custom algorithm out of range", func(t *testing.T) {
		// Prepare
		chm, err := NewContactHashMap(4, &constantHashAlgorithm{bucketNo: -1})
		assert.NoError(t, err, "creates contact hash map")

		// Execute
		err = chm.Insert("John", "909-876-1234")

		// Check
		assert.ErrorIs(t, err, crt.BucketOutOfRange{}, "correct error")
		_, found := chm.Search("John")
		assert.False(t, found, "nothing stored")
		assert.Equal(t, int64(0), chm.Stat(false).Records, "no records")
	})
}

func TestContactHashMap_Search(t *testing.T) {
	t.Run("reports absent key", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)
		assert.NoError(t, chm.Insert("Amy", "111-222-3333"), "insert Amy")

		// Execute
		c, found := chm.Search("Chris")

		// Check
		assert.False(t, found, "Chris not found")
		assert.Equal(t, Contact{}, c, "zero contact")
	})

	t.Run("reports absent key in empty table", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 3)

		// Execute
		_, found := chm.Search("")

		// Check
		assert.False(t, found, "nothing found")
	})

	t.Run("finds contacts with custom algorithm", func(t *testing.T) {
		// Prepare
		chm, err := NewContactHashMap(10, hashfunc.NewXXHashAlgorithm(10))
		assert.NoError(t, err, "creates contact hash map")
		for i := 0; i < 100; i++ {
			assert.NoError(t, chm.Insert(fmt.Sprintf("key-%d", i), fmt.Sprintf("%03d", i)), "insert %d", i)
		}

		for i := 0; i < 100; i++ {
			// Execute
			c, found := chm.Search(fmt.Sprintf("key-%d", i))

			// Check
			assert.True(t, found, "found %d", i)
			assert.Equal(t, fmt.Sprintf("%03d", i), c.Number, "correct number")
		}
	})
}

func TestContactHashMap_Dump(t *testing.T) {
	t.Run("lists empty buckets", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 3)

		// Execute
		lines := chm.DumpLines()

		// Check
		want := []string{"Index 0: Empty", "Index 1: Empty", "Index 2: Empty"}
		if diff := cmp.Diff(want, lines); diff != "" {
			t.Errorf("dump mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("runs the reference scenario", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)

		// Execute
		assert.NoError(t, chm.Insert("John", "909-876-1234"), "insert John")
		assert.NoError(t, chm.Insert("Rebecca", "111-555-0002"), "insert Rebecca")
		c, found := chm.Search("John")
		assert.True(t, found, "John found")
		assert.Equal(t, "John: 909-876-1234", c.String(), "John contact")

		assert.NoError(t, chm.Insert("Amy", "111-222-3333"), "insert Amy")
		assert.NoError(t, chm.Insert("May", "222-333-1111"), "insert May")
		assert.NoError(t, chm.Insert("Rebecca", "999-444-9999"), "update Rebecca")

		c, found = chm.Search("Rebecca")
		assert.True(t, found, "Rebecca found")
		assert.Equal(t, "Rebecca: 999-444-9999", c.String(), "Rebecca updated")
		_, found = chm.Search("Chris")
		assert.False(t, found, "Chris not found")

		// Check
		want := []BucketDump{
			{Index: 0}, {Index: 1}, {Index: 2}, {Index: 3}, {Index: 4},
			{Index: 5, Contacts: []Contact{{Name: "Amy", Number: "111-222-3333"}, {Name: "May", Number: "222-333-1111"}}},
			{Index: 6},
			{Index: 7, Contacts: []Contact{{Name: "Rebecca", Number: "999-444-9999"}}},
			{Index: 8},
			{Index: 9, Contacts: []Contact{{Name: "John", Number: "909-876-1234"}}},
		}
		if diff := cmp.Diff(want, chm.Dump()); diff != "" {
			t.Errorf("dump mismatch (-want +got):\n%s", diff)
		}

		lines := chm.DumpLines()
		assert.Equal(t, "Index 5: - Amy: 111-222-3333 - May: 222-333-1111", lines[5], "collision chain rendered")
		assert.Equal(t, "Index 7: - Rebecca: 999-444-9999", lines[7], "updated contact rendered")
		assert.Equal(t, "Index 8: Empty", lines[8], "empty bucket rendered")
	})
}

func TestContactHashMap_Stat(t *testing.T) {
	t.Run("produces statistics", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)
		for _, k := range []string{"John", "Rebecca", "Amy", "May"} {
			assert.NoError(t, chm.Insert(k, "0"), "insert %s", k)
		}

		// Execute
		withDist := chm.Stat(true)
		withoutDist := chm.Stat(false)

		// Check
		assert.Equal(t, int64(4), withDist.Records, "correct records")
		assert.Equal(t, int64(3), withDist.UsedBuckets, "correct used buckets")
		assert.Equal(t, int64(2), withDist.LongestChain, "correct longest chain")
		assert.InDelta(t, 0.4, withDist.LoadFactor, 1e-9, "correct load factor")
		assert.Equal(t, []int64{0, 0, 0, 0, 0, 2, 0, 1, 0, 1}, withDist.BucketDistribution, "correct distribution")
		assert.Nil(t, withoutDist.BucketDistribution, "no distribution")
		assert.Equal(t, withDist.Records, withoutDist.Records, "same records")
	})
}

func TestContactHashMap_GetBucket(t *testing.T) {
	t.Run("iterates bucket chain", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)
		assert.NoError(t, chm.Insert("Amy", "111-222-3333"), "insert Amy")
		assert.NoError(t, chm.Insert("May", "222-333-1111"), "insert May")

		// Execute
		iter, err := chm.GetBucket(5)

		// Check
		assert.NoError(t, err, "get bucket")
		var got []string
		for iter.HasNext() {
			c, err := iter.Next()
			assert.NoError(t, err, "next contact")
			got = append(got, c.Name)
		}
		assert.Equal(t, []string{"Amy", "May"}, got, "chain order")

		_, err = iter.Next()
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "exhausted")
	})

	t.Run("fails on bucket outside table", func(t *testing.T) {
		// Prepare
		chm := newTestMap(t, 10)

		for _, bucketNo := range []int64{-1, 10, 11} {
			// Execute
			iter, err := chm.GetBucket(bucketNo)

			// Check
			assert.ErrorIs(t, err, crt.BucketOutOfRange{}, "correct error for %d", bucketNo)
			assert.Nil(t, iter, "no iterator for %d", bucketNo)
		}
	})
}
