package chain

import (
	"github.com/gostonefire/contacthashmap/crt"
	"github.com/gostonefire/contacthashmap/internal/model"
)

// Records - Is used to iterate over the entries of a chain one by one, from head to tail.
type Records struct {
	current *model.Entry
}

// NewRecords - Returns a pointer to a new Records struct
func NewRecords(head *model.Entry) *Records {
	return &Records{current: head}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.current != nil
}

// Next - Returns record.
// It returns:
//   - record is the contact stored in the next entry.
//   - err is nil or, if there are no more records when calling this function, an error of type crt.NoRecordFound.
func (R *Records) Next() (record model.Contact, err error) {
	if R.current == nil {
		err = crt.NoRecordFound{}
		return
	}

	record = R.current.Value
	R.current = R.current.Next

	return
}
