package contacthashmap

import (
	"github.com/gostonefire/contacthashmap/internal/chain"
)

// ChainRecords - Is used to iterate over the contacts of one bucket one by one.
type ChainRecords struct {
	records *chain.Records
}

// newChainRecords - Returns a pointer to a new ChainRecords struct
func newChainRecords(records *chain.Records) *ChainRecords {
	return &ChainRecords{records: records}
}

// HasNext - Returns true if there are more contacts to be fetched from a call to Next.
func (C *ChainRecords) HasNext() bool {
	return C.records.HasNext()
}

// Next - Returns contact.
// It returns:
//   - contact is the next contact in the bucket chain.
//   - err is nil or, if there are no more contacts when calling this function, an error of type crt.NoRecordFound.
func (C *ChainRecords) Next() (contact Contact, err error) {
	return C.records.Next()
}
