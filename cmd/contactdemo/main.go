package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gostonefire/contacthashmap"
	"github.com/gostonefire/contacthashmap/hashfunc"
)

func main() {
	capacity := flag.Int64("capacity", 10, "number of buckets in the contact hash map")
	algorithm := flag.String("hash", "charsum", "bucket selection algorithm, charsum or xxhash")
	flag.Parse()

	var ha hashfunc.HashAlgorithm
	switch *algorithm {
	case "charsum":
	case "xxhash":
		ha = hashfunc.NewXXHashAlgorithm(*capacity)
	default:
		log.Fatalf("unknown hash algorithm %q", *algorithm)
	}

	chm, err := contacthashmap.NewContactHashMap(*capacity, ha)
	if err != nil {
		log.Fatalf("Failed to create contact hash map: %v", err)
	}

	fmt.Println("Initial empty table:")
	printTable(chm)

	fmt.Println("Adding John and Rebecca...")
	mustInsert(chm, "John", "909-876-1234")
	mustInsert(chm, "Rebecca", "111-555-0002")
	printTable(chm)

	fmt.Println("Searching for John:")
	printSearch(chm, "John")

	fmt.Println("Testing collision handling with Amy and May...")
	mustInsert(chm, "Amy", "111-222-3333")
	mustInsert(chm, "May", "222-333-1111")
	printTable(chm)

	fmt.Println("Updating Rebecca's number...")
	mustInsert(chm, "Rebecca", "999-444-9999")
	printTable(chm)

	fmt.Println("Searching for Chris (not in table):")
	printSearch(chm, "Chris")

	stat := chm.Stat(false)
	fmt.Printf("%d records in %d of %d buckets, longest chain %d\n",
		stat.Records, stat.UsedBuckets, chm.Capacity(), stat.LongestChain)
}

func mustInsert(chm *contacthashmap.ContactHashMap, key, number string) {
	if err := chm.Insert(key, number); err != nil {
		log.Fatalf("Failed to insert %s: %v", key, err)
	}
}

func printTable(chm *contacthashmap.ContactHashMap) {
	for _, line := range chm.DumpLines() {
		fmt.Println(line)
	}
	fmt.Println()
}

func printSearch(chm *contacthashmap.ContactHashMap, key string) {
	if contact, found := chm.Search(key); found {
		fmt.Printf("Search result: %s\n\n", contact)
	} else {
		fmt.Printf("Search result: %s not found\n\n", key)
	}
}
