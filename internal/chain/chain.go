package chain

import "github.com/gostonefire/contacthashmap/internal/model"

// Upsert - Sets value for key in the chain starting at head.
// If an entry with the same key exists its value is replaced and the entry keeps its position, otherwise
// a new entry is appended as the new tail so that chain order is insertion order among distinct keys.
//   - head is the first entry in the chain, nil for an empty bucket
//   - key is the key to set
//   - value is the contact to store under key
//
// It returns:
//   - newHead is the head of the chain after the operation, differs from head only when head was nil
//   - added is true if a new entry was appended, false if an existing entry was updated
func Upsert(head *model.Entry, key string, value model.Contact) (newHead *model.Entry, added bool) {
	if head == nil {
		return model.NewEntry(key, value), true
	}

	current := head
	for {
		if current.Key == key {
			current.Value = value
			return head, false
		}
		if current.Next == nil {
			current.Next = model.NewEntry(key, value)
			return head, true
		}
		current = current.Next
	}
}

// Find - Returns the entry with matching key in the chain starting at head
func Find(head *model.Entry, key string) (entry *model.Entry, found bool) {
	for current := head; current != nil; current = current.Next {
		if current.Key == key {
			return current, true
		}
	}

	return nil, false
}

// Length - Returns number of entries in the chain starting at head
func Length(head *model.Entry) (length int64) {
	for current := head; current != nil; current = current.Next {
		length++
	}

	return
}
