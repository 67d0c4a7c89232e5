package model

import "fmt"

// Contact - Represents one contact record, a name paired with a phone number.
// A Contact is never changed after construction, an update replaces it wholesale.
type Contact struct {
	Name   string
	Number string
}

// NewContact - Returns a new Contact given name and number
func NewContact(name, number string) Contact {
	return Contact{Name: name, Number: number}
}

// String - Renders the contact as "name: number"
func (C Contact) String() string {
	return fmt.Sprintf("%s: %s", C.Name, C.Number)
}

// Entry - Represents one node in a bucket chain
//   - Key is the key the entry was inserted with
//   - Value is the contact stored under Key
//   - Next is the following entry in the same bucket, or nil if this is the tail
type Entry struct {
	Key   string
	Value Contact
	Next  *Entry
}

// NewEntry - Returns a pointer to a new chain tail entry
func NewEntry(key string, value Contact) *Entry {
	return &Entry{Key: key, Value: value}
}
